package formula

import "sheet/ast"

// RowCol is a (row, col) pair, used for dependency extraction before a
// grid is available to convert it into a flat index.
type RowCol struct {
	Row, Col int
}

// Dependencies walks expr and collects every cell reference and range
// it contains. For a range, the corners are normalised (reordered so
// the first is top-left) before expansion, regardless of whether the
// range would evaluate successfully — the graph must stay sound even
// for formulas that will never successfully evaluate (see
// evaluation-vs-extraction note in the design notes). Duplicates are
// not elided; callers may dedupe via a set.
func Dependencies(expr ast.Expr) []RowCol {
	var out []RowCol
	walk(expr, &out)
	return out
}

func walk(expr ast.Expr, out *[]RowCol) {
	switch e := expr.(type) {
	case *ast.Number:
		// no dependencies
	case *ast.CellRef:
		*out = append(*out, RowCol{e.Row, e.Col})
	case *ast.Binary:
		walk(e.Left, out)
		walk(e.Right, out)
	case *ast.Call:
		if e.Range != nil {
			*out = append(*out, expandRange(e.Range)...)
		}
		if e.Arg != nil {
			walk(e.Arg, out)
		}
	}
}

func expandRange(r *ast.Range) []RowCol {
	startRow, endRow := r.From.Row, r.To.Row
	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	startCol, endCol := r.From.Col, r.To.Col
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}
	var out []RowCol
	for row := startRow; row <= endRow; row++ {
		for col := startCol; col <= endCol; col++ {
			out = append(out, RowCol{row, col})
		}
	}
	return out
}
