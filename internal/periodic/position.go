package periodic

// Position is a cell in the periodic-table grid: 18 columns, 7 main rows,
// with the lanthanide and actinide series pulled out into rows 9 and 10.
type Position struct {
	Row int
	Col int
}

// GridRows and GridCols bound the table layout including the f-block rows.
const (
	GridRows = 10
	GridCols = 18
)

// PositionOf resolves the grid cell for an element. Lanthanides occupy
// row 9 and actinides row 10, columns 3-17; everything else sits at its
// (period, group) cell.
func PositionOf(e Element) Position {
	switch e.Category {
	case CategoryLanthanide:
		return Position{Row: 9, Col: 3 + e.AtomicNumber - 57}
	case CategoryActinide:
		return Position{Row: 10, Col: 3 + e.AtomicNumber - 89}
	}
	return Position{Row: e.Period, Col: e.Group}
}

// Grid maps every grid cell to its element's atomic number. Empty cells
// hold zero.
func Grid() [GridRows + 1][GridCols + 1]int {
	var g [GridRows + 1][GridCols + 1]int
	for _, e := range Elements {
		p := PositionOf(e)
		g[p.Row][p.Col] = e.AtomicNumber
	}
	return g
}
