// Package render draws mazes, their graphs and chase paths on a tcell screen.
//
// Every tile occupies two terminal cells side by side, which keeps the maze
// roughly square in a typical terminal font: tile (i, j) is drawn at cells
// (2i, j) and (2i+1, j). Graph overlays put a box-drawing junction on the
// left cell of each vertex, chosen from the directions of its outgoing
// edges, and a horizontal stroke on the right cell when the vertex links to
// its right-hand neighbour. Vertices with a tunnel edge use the tunnel style.
//
// Renderer only writes cells; Frame is the one call that also clears and
// shows the screen.
package render
