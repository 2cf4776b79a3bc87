// Package validate implements Component D: given a net bitmap and a
// target box's face list, it searches every starting cell and starting
// rotation for a fold of the bitmap onto the target's surface, and
// reports either a pass/fail verdict or an integer score summarising how
// far the closest attempt came.
//
// Grounded on lvlath/bfs and lvlath/dfs's traversal option-struct shape
// (WithOnVisit-style hooks), generalised from graph traversal into the
// fold-search walk, and on lvlath/gridgraph's component-walk pattern for
// iterating grid cells.
package validate
