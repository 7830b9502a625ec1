// Package loader reads the campus dataset from CSV files.
//
// Files (each with a header row):
//
//	adj_list.csv          src,dst,length       one directed edge per row, metres
//	node_coordinates.csv  node_id,x,y          x = longitude, y = latitude
//	                      node_id,lat,lon      also accepted
//	building_mapping.csv  building_name,node_id
//
// Columns are matched by header name; unknown headers fall back to the
// positional layout above. The graph has max(node id in adj_list)+1 nodes and
// every one of them needs a coordinate row. Malformed rows fail with
// ErrMalformedRow naming the file line.
package loader
