package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/katalvlaran/buzznav/config"
	"github.com/katalvlaran/buzznav/internal/ctxlog"
	"github.com/katalvlaran/buzznav/navigator"
)

// MinTourStops is the fewest buildings /api/navigate-tsp accepts.
const MinTourStops = 2

// shutdownGrace bounds how long Run waits for in-flight requests.
const shutdownGrace = 5 * time.Second

// Server serves one Navigator.
type Server struct {
	nav    *navigator.Navigator
	cfg    config.ServerConfig
	log    *slog.Logger
	engine *gin.Engine
}

// NewServer builds the router. A nil logger uses slog.Default.
func NewServer(nav *navigator.Navigator, cfg config.ServerConfig, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{nav: nav, cfg: cfg, log: log}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("buzznav"))
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	r.Use(requestContext(log))

	api := r.Group("/api")
	api.GET("/buildings", s.handleBuildings)
	api.GET("/navigate", s.handleNavigate)
	api.GET("/navigate-tsp", s.handleTour)
	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.engine = r
	return s
}

// Handler returns the HTTP handler, mainly for tests and embedding.
func (s *Server) Handler() http.Handler { return s.engine }

// Run listens on cfg.Addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", slog.String("addr", s.cfg.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("httpapi: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	s.log.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("httpapi: shutdown: %w", err)
	}

	return nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodOptions}
	cfg.ExposeHeaders = []string{HeaderRequestID}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}

	return cfg
}

func (s *Server) handleBuildings(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.fail(c, http.StatusBadRequest, fmt.Errorf("invalid limit %q", raw))
			return
		}
		limit = n
	}
	names := s.nav.Buildings(c.Query("prefix"), limit)
	if names == nil {
		names = []string{}
	}

	c.JSON(http.StatusOK, names)
}

func (s *Server) handleNavigate(c *gin.Context) {
	start, end := c.Query("start"), c.Query("end")
	if start == "" || end == "" {
		s.fail(c, http.StatusBadRequest, errors.New("missing 'start' or 'end' parameter"))
		return
	}

	res, err := s.nav.Navigate(c.Request.Context(), start, c.QueryArray("via"), end)
	if err != nil {
		s.fail(c, statusFor(err), err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// handleTour reads building1, building2, ... until the first gap.
func (s *Server) handleTour(c *gin.Context) {
	var names []string
	for i := 1; ; i++ {
		name := c.Query("building" + strconv.Itoa(i))
		if name == "" {
			break
		}
		names = append(names, name)
	}
	if len(names) < MinTourStops {
		s.fail(c, http.StatusBadRequest, fmt.Errorf("at least %d buildings required", MinTourStops))
		return
	}

	res, err := s.nav.Tour(c.Request.Context(), names)
	if err != nil {
		s.fail(c, statusFor(err), err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (s *Server) handleHealth(c *gin.Context) {
	g := s.nav.Graph()
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"nodes":     g.NodeCount(),
		"edges":     g.EdgeCount(),
		"buildings": len(s.nav.Buildings("", 0)),
	})
}

func (s *Server) fail(c *gin.Context, code int, err error) {
	if code >= http.StatusInternalServerError {
		ctxlog.FromContext(c.Request.Context()).Error("request failed", slog.String("error", err.Error()))
	}
	c.JSON(code, navigator.Failure(err))
}

// statusFor maps a navigator error to an HTTP status.
func statusFor(err error) int {
	switch navigator.Classify(err) {
	case navigator.OutcomeInvalid:
		return http.StatusBadRequest
	case navigator.OutcomeNotFound:
		return http.StatusNotFound
	case navigator.OutcomeUnreachable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
