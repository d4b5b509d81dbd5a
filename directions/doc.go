// Package directions renders solved routes for people and for maps.
//
// A Writer prints each route as a short block of turn-by-turn lines:
//
//	Path from Washington Ave SE to Church St SE (0.53km)
//	-----------------------
//	Go 0.32km from Washington Ave SE to Oak St SE
//	Go 0.21km from Oak St SE to Church St SE
//
// The same block is written to every destination the Writer was built
// with, typically standard output and an append-only log opened with
// OpenLog. Distances are shown as single-precision kilometers, integral
// values keep a trailing ".0".
//
// Collection gathers routes into a GeoJSON FeatureCollection with one
// LineString per route.
package directions
