// protcorr compares every pair of genomes listed in a manifest file by
// their amino-acid k-mer usage, and writes the resulting correlation
// matrix to a file.
package main

import (
	"flag"
	"fmt"
	"os"
	"path"
	"runtime"

	"github.com/andrew-torda/protcorr/pkg/protcorr"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

func usage() int {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[options] list.txt genome_dir")
	flag.PrintDefaults()
	return ExitUsageError
}

func main() {
	var flags protcorr.CmdFlag
	flag.IntVar(&flags.Loaders, "loaders", runtime.NumCPU(), "number of genome-loading workers")
	flag.IntVar(&flags.Transformers, "transformers", runtime.NumCPU(), "number of signature-transform workers")
	flag.IntVar(&flags.Comparators, "comparators", runtime.NumCPU(), "number of comparator workers")
	flag.IntVar(&flags.QueueCap, "qcap", 0, "inter-stage queue capacity, 0 picks a default")
	flag.BoolVar(&flags.Verbose, "v", false, "print a progress bar and per-genome/per-pair trace lines to stderr")
	flag.StringVar(&flags.DiagFile, "diag", "", "write per-genome residue usage table to this file")
	flag.StringVar(&flags.OutFile, "o", "correlation_matrix.txt", "output file for the correlation matrix")
	flag.Parse()

	if flag.NArg() != 2 {
		os.Exit(usage())
	}
	listPath := flag.Arg(0)
	genomeDir := flag.Arg(1)

	if err := protcorr.Mymain(&flags, listPath, genomeDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
