// Package layout computes grid coordinates for the periodic table view.
package layout

import (
	"sort"

	"elemex/internal/elements"
)

// Grid geometry: 18 columns, 7 main-block rows, one spacer row, then the
// lanthanide and actinide overflow rows.
const (
	Columns       = 18
	MainRows      = 7
	LanthanideRow = 9
	ActinideRow   = 10
	Rows          = 10

	// overflowStartCol is the first column of the two overflow rows,
	// aligned under group 3 where the blocks branch off.
	overflowStartCol = 3
)

// Cell is one occupied grid position. Placeholder cells label the
// overflow blocks inside the main grid; everything else carries an
// element number.
type Cell struct {
	Col         int    `json:"col"`
	Row         int    `json:"row"`
	Number      int    `json:"number,omitempty"`
	Label       string `json:"label,omitempty"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

// Grid maps element numbers to cells. Positions with no entry render empty.
type Grid struct {
	Cols  int    `json:"cols"`
	Rows  int    `json:"rows"`
	Cells []Cell `json:"cells"`

	byNumber map[int]Cell
}

// CellFor returns the cell assigned to an element number.
func (g *Grid) CellFor(number int) (Cell, bool) {
	c, ok := g.byNumber[number]
	return c, ok
}

// isLanthanide and isActinide bound the two f-block ranges that leave the
// main grid regardless of any position hints the dataset carries.
func isLanthanide(n int) bool { return n >= 57 && n <= 71 }
func isActinide(n int) bool   { return n >= 89 && n <= 103 }

// Build computes the cell for every element. Main-block placement is
// group -> column, period -> row (1-indexed). Lanthanides and actinides
// fill their dedicated rows in ascending number order, one column per
// element, and the main block gets a labeled placeholder where each
// series branches off.
func Build(ds *elements.Dataset) *Grid {
	g := &Grid{
		Cols:     Columns,
		Rows:     Rows,
		byNumber: make(map[int]Cell, ds.Len()),
	}

	var lanthanides, actinides []elements.Element
	occupied := make(map[[2]int]bool)

	for _, e := range ds.Elements() {
		switch {
		case isLanthanide(e.Number):
			lanthanides = append(lanthanides, e)
		case isActinide(e.Number):
			actinides = append(actinides, e)
		default:
			col, row, ok := mainCell(&e)
			if !ok {
				continue
			}
			key := [2]int{col, row}
			if occupied[key] {
				continue
			}
			occupied[key] = true
			g.place(Cell{Col: col, Row: row, Number: e.Number, Label: e.Symbol})
		}
	}

	if len(lanthanides) > 0 {
		g.Cells = append(g.Cells, Cell{Col: overflowStartCol, Row: 6, Label: "La–Lu", Placeholder: true})
		g.placeSeries(lanthanides, LanthanideRow)
	}
	if len(actinides) > 0 {
		g.Cells = append(g.Cells, Cell{Col: overflowStartCol, Row: 7, Label: "Ac–Lr", Placeholder: true})
		g.placeSeries(actinides, ActinideRow)
	}

	return g
}

// mainCell derives the main-block position for a non-f-block element.
// Elements without a usable group fall back to the dataset's explicit
// xpos/ypos pair when one is present.
func mainCell(e *elements.Element) (col, row int, ok bool) {
	if e.Group >= 1 && e.Group <= Columns && e.Period >= 1 && e.Period <= MainRows {
		return e.Group, e.Period, true
	}
	if e.XPos >= 1 && e.XPos <= Columns && e.YPos >= 1 && e.YPos <= MainRows {
		return e.XPos, e.YPos, true
	}
	return 0, 0, false
}

// placeSeries lays an overflow series out left to right in ascending
// number order.
func (g *Grid) placeSeries(series []elements.Element, row int) {
	sort.Slice(series, func(i, j int) bool { return series[i].Number < series[j].Number })
	for i, e := range series {
		g.place(Cell{Col: overflowStartCol + i, Row: row, Number: e.Number, Label: e.Symbol})
	}
}

func (g *Grid) place(c Cell) {
	g.Cells = append(g.Cells, c)
	g.byNumber[c.Number] = c
}
