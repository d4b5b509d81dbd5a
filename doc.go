// Package classdijkstra finds shortest driving routes over street maps.
//
// A map is a directed graph whose vertices are intersections (latitude,
// longitude, height and a street label) and whose edges are streets
// weighted by great-circle distance in kilometers. Routes are computed with
// Dijkstra's algorithm and printed as turn-by-turn directions.
//
// Packages:
//
//	geo/        distance between coordinates
//	core/       Graph, Vertex and Edge with thread-safe primitives
//	dijkstra/   single-source shortest paths (scan or heap selection)
//	bfs/, dfs/  reachability and strongly connected components
//	mapfile/    map.dat reader/writer and OpenStreetMap import
//	directions/ text directions and GeoJSON export
//	builder/    synthetic maps for tests, benchmarks and mapgen
//	config/, logging/, server/  ambient stack of the commands
//
// Commands:
//
//	cmd/dijkstra  batch route queries from a map file, or serve them over HTTP
//	cmd/mapgen    generate synthetic map files
package classdijkstra
