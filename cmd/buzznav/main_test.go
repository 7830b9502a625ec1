package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/buzznav/multistop"
	"github.com/katalvlaran/buzznav/navigator"
)

// writeCampus lays out the one-way square 0→1→2→3 with a building per corner.
func writeCampus(t *testing.T) []string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"adj_list.csv": "src,dst,length\n0,1,100\n1,2,100\n2,3,100\n",
		"node_coordinates.csv": "node_id,x,y\n" +
			"0,-84.3970,33.7760\n1,-84.3970,33.7765\n2,-84.3964,33.7765\n3,-84.3964,33.7760\n",
		"building_mapping.csv": "building_name,node_id\nLibrary,0\nLab,1\nGym,2\nDorm,3\n",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
	}

	return []string{
		"--graph", filepath.Join(dir, "adj_list.csv"),
		"--coords", filepath.Join(dir, "node_coordinates.csv"),
		"--buildings", filepath.Join(dir, "building_mapping.csv"),
		"--log-level", "error",
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	// Dataset flags go first so a test can override any of them.
	full := append([]string{args[0]}, writeCampus(t)...)
	cmd.SetArgs(append(full, args[1:]...))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestRoute_Text(t *testing.T) {
	out, err := run(t, "route", "Library", "Gym", "Dorm")
	require.NoError(t, err)
	assert.Contains(t, out, "Route: Library -> Gym -> Dorm\n")
	assert.Contains(t, out, "Total distance: 300.00 meters\n")
	assert.Contains(t, out, "Path: 0 -> 1 -> 2 -> 3\n")
	assert.Contains(t, out, "  1. Start at Library\n")
	assert.Contains(t, out, "You have reached Dorm\n")
}

func TestRoute_JSON(t *testing.T) {
	out, err := run(t, "route", "--json", "Library", "Dorm")
	require.NoError(t, err)
	var res navigator.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, navigator.StatusSuccess, res.Status)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Path)
}

func TestRoute_Failures(t *testing.T) {
	_, err := run(t, "route", "Library")
	require.Error(t, err, "needs start and end")

	out, err := run(t, "route", "--json", "Dorm", "Library")
	require.ErrorIs(t, err, navigator.ErrNoRouteFound)
	var res navigator.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, navigator.StatusError, res.Status)
}

func TestTour(t *testing.T) {
	out, err := run(t, "tour", "Dorm", "Library", "Lab")
	require.NoError(t, err)
	assert.Contains(t, out, "Route: Library -> Lab -> Dorm\n")

	_, err = run(t, "tour", "--fixed-ends", "Library", "Dorm", "Lab")
	require.ErrorIs(t, err, multistop.ErrStopsUnreachable)

	_, err = run(t, "tour", "--max-stops", "2", "Dorm", "Library", "Lab")
	require.ErrorIs(t, err, multistop.ErrTooManyStops)
}

func TestBuildingsAndCheck(t *testing.T) {
	out, err := run(t, "buildings", "--prefix", "l")
	require.NoError(t, err)
	assert.Equal(t, "Lab\nLibrary\n", out)

	out, err = run(t, "check", "--json")
	require.NoError(t, err)
	var rep navigator.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 4, rep.Nodes)
	assert.Equal(t, "Library", rep.Origin)
	assert.Empty(t, rep.Unreachable)

	out, err = run(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "All buildings reachable")
}

func TestConfigErrors(t *testing.T) {
	_, err := run(t, "check", "--log-level", "chatty")
	require.Error(t, err)

	_, err = run(t, "check", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
