package cmatrix_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/protcorr/pkg/cmatrix"
)

func TestSetGetRoundTrip(t *testing.T) {
	m := cmatrix.New(4)
	m.SetValue(2, 1, 0.75)
	m.SetValue(3, 0, -0.5)
	if got := m.GetValue(2, 1); got != 0.75 {
		t.Errorf("GetValue(2,1) = %v, want 0.75", got)
	}
	if got := m.GetValue(3, 0); got != -0.5 {
		t.Errorf("GetValue(3,0) = %v, want -0.5", got)
	}
	if got := m.GetValue(0, 3); got != 0 {
		t.Errorf("untouched entry = %v, want 0", got)
	}
}

func TestOutOfBoundsReturnsZero(t *testing.T) {
	m := cmatrix.New(3)
	if got := m.GetValue(5, 0); got != 0 {
		t.Errorf("out-of-bounds GetValue = %v, want 0", got)
	}
	m.SetValue(-1, 0, 9) // must not panic
}

func TestSizeReportsDimension(t *testing.T) {
	m := cmatrix.New(7)
	if m.Size() != 7 {
		t.Errorf("Size() = %d, want 7", m.Size())
	}
}

func TestSaveWritesRowsAndColumns(t *testing.T) {
	m := cmatrix.New(2)
	m.SetValue(1, 0, 0.5)
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := m.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if fields := strings.Fields(lines[1]); len(fields) != 2 || fields[0] != "0.5" {
		t.Errorf("row 1 = %q, want it to start with 0.5", lines[1])
	}
}
