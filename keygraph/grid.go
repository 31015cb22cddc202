package keygraph

// FromGrid builds an undirected lattice graph over the passable cells
// of a rectangular grid. Each passable cell becomes a node keyed by its
// [row, col] coordinate, carrying the cell value as its payload; 4-way
// adjacent passable cells are connected by edges with payload 1 (unit
// step cost).
//
// Impassable cells are absent entirely, so a later Index or Node lookup
// on them reports false. An empty grid yields an empty graph. Rows may
// vary in length; neighbors are checked against their own row.
func FromGrid[V any](grid [][]V, passable func(V) bool) *Graph[[2]int, int, V] {
	g := New[[2]int, int, V]()

	for i, row := range grid {
		for j, cell := range row {
			if !passable(cell) {
				continue
			}
			g.SetNode([2]int{i, j}, cell)

			// Up and left suffice: the symmetric arc comes from Add.
			if i > 0 && j < len(grid[i-1]) && passable(grid[i-1][j]) {
				g.Add([2]int{i, j}, [2]int{i - 1, j}, 1)
			}
			if j > 0 && passable(row[j-1]) {
				g.Add([2]int{i, j}, [2]int{i, j - 1}, 1)
			}
		}
	}

	return g
}
