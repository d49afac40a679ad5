// Package protcorr wires the genome manifest reader, the three-stage
// pipeline and the progress/diagnostics sinks into the single entry
// point the command line tool calls, in the Mymain-returns-error style
// this project's other command packages use.
package protcorr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/andrew-torda/protcorr/pkg/counts"
	"github.com/andrew-torda/protcorr/pkg/diag"
	"github.com/andrew-torda/protcorr/pkg/listfile"
	"github.com/andrew-torda/protcorr/pkg/pipeline"
	"github.com/andrew-torda/protcorr/pkg/progress"
)

// CmdFlag holds the command line options for a run.
type CmdFlag struct {
	Loaders      int
	Transformers int
	Comparators  int
	QueueCap     int
	Verbose      bool
	DiagFile     string
	OutFile      string
}

// Mymain reads the genome manifest at listPath, resolves each name
// against genomeDir, runs the comparison pipeline and writes the
// resulting correlation matrix to flags.OutFile.
func Mymain(flags *CmdFlag, listPath, genomeDir string) error {
	names, err := listfile.Read(listPath)
	if err != nil {
		return err
	}
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(genomeDir, name)
	}

	start := time.Now()

	total := uint64(len(paths)) * uint64(len(paths)-1) / 2
	bar := &progress.Bar{Label: "correlating", Total: total, Out: os.Stderr}
	var sink pipeline.Progress
	if flags.Verbose {
		sink = bar
	}

	cfg := pipeline.Config{
		Loaders:       flags.Loaders,
		Transformers:  flags.Transformers,
		Comparators:   flags.Comparators,
		QueueCapacity: flags.QueueCap,
	}
	coord := pipeline.New(paths, cfg, sink)

	matrix, err := coord.Run(context.Background())
	if err != nil {
		return fmt.Errorf("protcorr: %w", err)
	}

	if flags.DiagFile != "" {
		if err := writeDiagnostics(flags.DiagFile, names, paths); err != nil {
			return err
		}
	}

	if err := matrix.Save(flags.OutFile); err != nil {
		return fmt.Errorf("protcorr: %w", err)
	}

	bar.ReportElapsed(time.Since(start))
	return nil
}

// writeDiagnostics computes and writes each genome's residue usage
// table. It re-scans every genome file; diagnostics are opt-in and not
// on the hot path the main pipeline optimizes for.
func writeDiagnostics(path string, names, paths []string) error {
	tbl := diag.NewTable(names)
	for i, p := range paths {
		rc, err := counts.CountFile(p)
		if err != nil {
			return fmt.Errorf("protcorr: diagnostics: %w", err)
		}
		tbl.Set(i, rc)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("protcorr: diagnostics: %w", err)
	}
	defer f.Close()
	return tbl.Write(f)
}
