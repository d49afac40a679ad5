// Package diag collects the per-genome residue usage table the pipeline
// can dump alongside the correlation matrix, for inspecting whether a
// genome's single-residue composition looks like an outlier before
// trusting its correlation scores. It follows this project's own
// usage-by-site/usage-fraction approach, built on the same dense matrix
// type, but one row per genome rather than one row per alignment column.
package diag

import (
	"fmt"
	"io"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/protcorr/pkg/aa"
	"github.com/andrew-torda/protcorr/pkg/counts"
	"github.com/andrew-torda/protcorr/pkg/signature"
)

// residueLetters is the printable one-letter code for each encoded
// residue index, in the order aa.Encode produces them.
var residueLetters = [aa.Number]byte{
	'A', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'K', 'L',
	'M', 'N', 'P', 'Q', 'R', 'S', 'T', 'V', 'W', 'Y',
}

// Table holds one row of residue-usage fractions per genome.
type Table struct {
	names []string
	mat   *matrix.FMatrix2d
}

// NewTable allocates a usage table for the given genome names, in order.
func NewTable(names []string) *Table {
	return &Table{
		names: names,
		mat:   matrix.NewFMatrix2d(len(names), aa.Number),
	}
}

// Set records genome idx's residue usage, derived from its raw counts.
func (t *Table) Set(idx int, rc *counts.RawCounts) {
	frac := signature.ResidueFractions(rc)
	for a := 0; a < aa.Number; a++ {
		t.mat.Mat[idx][a] = float32(frac[a])
	}
}

// Write prints the table as one line per genome: its name followed by
// each residue's usage fraction, labeled by residue letter on the header
// line.
func (t *Table) Write(w io.Writer) error {
	if _, err := fmt.Fprint(w, "genome"); err != nil {
		return err
	}
	for _, c := range residueLetters {
		if _, err := fmt.Fprintf(w, "\t%c", c); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	for i, name := range t.names {
		if _, err := fmt.Fprint(w, name); err != nil {
			return err
		}
		for a := 0; a < aa.Number; a++ {
			if _, err := fmt.Fprintf(w, "\t%.4f", t.mat.Mat[i][a]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
