// Package mazegen generates seeded tile mazes that satisfy the graph
// builder's preconditions.
//
// A maze of W×H blocks is laid out on a grid of (3W+2)×(3H+2) tiles. Block
// (x, y) owns tiles 3x+1..3x+3 × 3y+1..3y+3 and its centre (3x+2, 3y+2) is a
// path tile unless the block is the ghost box. The ghost box is never block
// (0,0), so (2,2) is open in every maze. Corridors join the
// centres of linked blocks. A 2×2 maze with one tunnel row:
//
//	wwwwwwww
//	wwwwwwww
//	pppppppp   <- tunnel row, open through both side borders
//	wwpwwwww
//	wwpwwwww
//	wwppppww
//	wwwwwwww
//	wwwwwwww
//
// Generation steps:
//  1. Tunnel rows are drawn at random (Config.Tunnels of them).
//  2. A uniform spanning tree over the blocks is built with Wilson's
//     algorithm (loop-erased random walks). The optional ghost box block in
//     the middle of the maze is left out of the tree and filled with
//     GhostBox tiles.
//  3. Braiding: each dead-end block is linked to one more neighbour with
//     probability Config.Braiding, adding cycles.
//  4. Tiles are carved and elevations drawn from Elevations.
//
// The traversable tiles of every generated grid form a single component under
// toroidal adjacency.
package mazegen
