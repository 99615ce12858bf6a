// Package mazepath turns PacMann-style tile mazes into weighted directed
// graphs and finds the shortest routes a ghost can take without turning back.
//
// 🚀 What is in the box?
//
//	• Tile grids: Wall / Path / GhostBox tiles with elevations, toroidal wrap
//	• Maze graphs: one vertex per path tile, one edge per step, tunnel edges
//	• Edge weights: climbing costs more than descending, bounded in [0.25, 1.75]
//	• Pathfinding: generic Dijkstra variant that never reverses the last edge
//	• Generation: seeded Wilson mazes with braiding, tunnels and a ghost pen
//	• Chase: pursuers snap targets to vertices and route without U-turns
//	• Viewer: terminal renderer and an interactive maze viewer
//
// Packages:
//
//	tilegrid/     Grid interface, immutable TileGrid, template parsing, components
//	mazegraph/    Build, Graph (arena of vertices & edges), EdgeWeight, ClosestTo
//	pathfinding/  PathInfo, PathTo, ShortestNonBacktrackingPath over any Graph[V, E]
//	mazegen/      Generate, Elevations
//	chase/        Route, NextEdge, Wander, Chase
//	render/       tcell Renderer
//	sound/        chase jingles
//	config/       .env / environment settings for the viewer
//	cmd/mazeview  the viewer
//
// Quick ASCII example (w = wall, p = path), with its graph:
//
//	wwwwww
//	wwwwww       (0,2)──(1,2)──(2,2)   (5,2)
//	pppwwp         └──────── tunnel ──────┘
//	wwwwww
//
//	go run github.com/katalvlaran/mazepath/cmd/mazeview
package mazepath
