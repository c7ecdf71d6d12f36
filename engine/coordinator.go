package engine

import (
	"fmt"

	"sheet/ferr"
	"sheet/formula"
	"sheet/grid"
	"sheet/parser"
)

// AssignByName decodes a spreadsheet-style cell name ("B12") and
// delegates to Assign. A bad name never reaches Assign at all.
func (s *Sheet) AssignByName(name string, formulaText string) string {
	row, col, ok := grid.NameToCoords(name)
	if !ok {
		return "Invalid cell"
	}
	return s.Assign(row, col, formulaText)
}

// Assign parses and installs formulaText into the cell at (row, col),
// rewiring the dependency graph and propagating to dependents.
//
// On rejection the cell's prior formula, value, status and edges are
// left exactly as they were, except for the InvalidRange and
// RefOutOfBounds cases, where the new formula and its edges are kept
// even though the cell could not be evaluated (see the design notes:
// this mirrors an observed, not necessarily intended, original
// behaviour). A reversed range whose rectangle covers the cell itself
// would install a cycle, so it is rejected as "Invalid range" with
// nothing kept.
func (s *Sheet) Assign(row, col int, formulaText string) string {
	g := s.Grid
	if !g.InBounds(row, col) {
		return "Cell out of bounds"
	}
	idx := g.Index(row, col)
	cell := g.Cell(idx)

	expr, perr := parser.Parse(formulaText)
	if perr != nil {
		return "Invalid formula"
	}

	oldFormula := cell.Formula
	oldHasFormula := cell.HasFormula
	oldValue := cell.Value
	oldStatus := cell.Status
	oldDeps := make(map[int]struct{}, len(cell.DependsOn))
	for d := range cell.DependsOn {
		oldDeps[d] = struct{}{}
	}

	rollbackEdges := func() {
		g.ClearForward(idx)
		for d := range oldDeps {
			g.AddEdge(idx, d)
		}
	}

	g.ClearForward(idx)
	for _, rc := range formula.Dependencies(expr) {
		if g.InBounds(rc.Row, rc.Col) {
			g.AddEdge(idx, g.Index(rc.Row, rc.Col))
		}
	}

	if wouldCycle(g, idx) {
		rollbackEdges()
		cell.Formula = oldFormula
		cell.HasFormula = oldHasFormula
		cell.Value = oldValue
		cell.Status = oldStatus
		// A reversed range whose normalised rectangle covers this cell
		// is reported as an invalid range rather than a cycle; the
		// formula is evaluated against the restored grid to tell.
		if _, eerr := formula.Eval(expr, g); eerr != nil && eerr.Kind == ferr.InvalidRange {
			return "Invalid range"
		}
		name := grid.CoordsToName(row, col)
		return fmt.Sprintf("Circular dependency detected in cell %s", name)
	}

	cell.Formula = formulaText
	cell.HasFormula = true

	val, eerr := formula.Eval(expr, g)
	switch {
	case eerr == nil:
		cell.Value = val
		cell.Status = grid.OK
	case eerr.Kind == ferr.DivByZero || eerr.Kind == ferr.DependencyError:
		cell.Value = 0
		cell.Status = grid.ERROR
	case eerr.Kind == ferr.InvalidFormula:
		rollbackEdges()
		cell.Formula = oldFormula
		cell.HasFormula = oldHasFormula
		cell.Value = oldValue
		cell.Status = oldStatus
		return "Invalid formula"
	case eerr.Kind == ferr.InvalidRange:
		// New formula and edges are retained; no recompute runs.
		return "Invalid range"
	case eerr.Kind == ferr.RefOutOfBounds:
		// New formula and edges are retained; no recompute runs.
		return "Unrecognized"
	default:
		rollbackEdges()
		cell.Formula = oldFormula
		cell.HasFormula = oldHasFormula
		cell.Value = oldValue
		cell.Status = oldStatus
		return "Invalid formula"
	}

	if rerr := recomputeFrom(g, idx); rerr != nil {
		s.logger.Printf("recompute from %s aborted: %s", grid.CoordsToName(row, col), ferr.Format(rerr))
	}

	return "ok"
}
