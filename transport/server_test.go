package transport

import (
	"testing"

	"sheet/engine"
)

func TestSnapshotSkipsEmptyCells(t *testing.T) {
	sheet := engine.NewSheet(3, 3)
	sheet.AssignByName("A1", "5")
	srv := NewServer(sheet, nil)

	snap := srv.snapshot("ok")
	if len(snap.Cells) != 1 {
		t.Fatalf("expected 1 populated cell, got %d: %+v", len(snap.Cells), snap.Cells)
	}
	if snap.Cells[0].Name != "A1" || snap.Cells[0].Value != 5 {
		t.Errorf("got %+v, want A1=5", snap.Cells[0])
	}
}

func TestSnapshotMarksErrorStatus(t *testing.T) {
	sheet := engine.NewSheet(2, 2)
	sheet.AssignByName("A1", "1/0")
	srv := NewServer(sheet, nil)

	snap := srv.snapshot("ok")
	if len(snap.Cells) != 1 || snap.Cells[0].Status != "ERROR" {
		t.Fatalf("got %+v, want one ERROR cell", snap.Cells)
	}
}
