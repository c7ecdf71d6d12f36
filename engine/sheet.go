// Package engine is the assignment coordinator: it orchestrates
// validate → snapshot → rewire → cycle-check → evaluate → propagate
// over a grid.Grid, with rollback on rejection.
package engine

import (
	"log"

	"sheet/grid"
)

// Sheet owns a Grid for the lifetime of the process. The engine
// processes exactly one command at a time to completion before
// accepting the next (see the concurrency model); Sheet itself carries
// no mutex — any serialisation across external callers belongs at the
// transport boundary, not here.
type Sheet struct {
	Grid   *grid.Grid
	logger *log.Logger
}

// NewSheet allocates an R×C sheet with a dense grid store.
func NewSheet(rows, cols int) *Sheet {
	return &Sheet{Grid: grid.New(rows, cols), logger: log.Default()}
}

// SetLogger overrides the sheet's logger (defaults to log.Default()).
func (s *Sheet) SetLogger(l *log.Logger) {
	s.logger = l
}

// Cell is a read-only accessor over (value, status) for REPL glue.
func (s *Sheet) Cell(row, col int) (value int32, status grid.Status, ok bool) {
	if !s.Grid.InBounds(row, col) {
		return 0, grid.OK, false
	}
	c := s.Grid.At(row, col)
	return c.Value, c.Status, true
}
