// Package counts implements the Counter stage of the pipeline: turning a
// single proteome file into the dense k-mer counts the Transformer needs.
//
// Proteome files are memory-mapped rather than read through a buffered
// io.Reader, the same tactic the wider corpus uses for sequential scans of
// large flat biological files (see github.com/edsrzf/mmap-go usage
// elsewhere in this module's history).
package counts

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/protcorr/pkg/aa"
)

// RawCounts holds the dense per-genome counts produced by scanning one
// proteome file. One, Second and Vector are exclusively owned by the
// Counter that built them until handed to a single Transformer.
type RawCounts struct {
	One        [aa.Number]int64
	Second     []int64 // length aa.M1
	Vector     []int64 // length aa.M
	Total      int64
	TotalL     int64
	Complement int64
}

func newRawCounts() *RawCounts {
	return &RawCounts{
		Second: make([]int64, aa.M1),
		Vector: make([]int64, aa.M),
	}
}

// CountFile opens, memory-maps and scans a proteome file, returning its
// dense k-mer counts. File-open and mmap failures are fatal for the whole
// run, per the pipeline's one-shot batch error model.
func CountFile(path string) (*RawCounts, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("counts: open %s: %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("counts: stat %s: %w", path, err)
	}
	if fi.Size() == 0 {
		return newRawCounts(), nil
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("counts: mmap %s: %w", path, err)
	}
	defer data.Unmap()

	rc, err := countBytes(data)
	if err != nil {
		return nil, fmt.Errorf("counts: %s: %w", path, err)
	}
	return rc, nil
}

// countBytes runs the Counter algorithm over an in-memory proteome buffer.
// It is split out from CountFile so the algorithm itself can be tested
// without touching the filesystem.
func countBytes(data []byte) (*RawCounts, error) {
	rc := newRawCounts()
	n := len(data)
	i := 0

	for i < n {
		if data[i] != '>' {
			i++
			continue
		}
		var err error
		i, err = scanRecord(data, i, rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// scanRecord consumes one FASTA-like record starting at the '>' of its
// header, updates rc in place, and returns the index of the byte following
// the record (either the next '>' or len(data)).
func scanRecord(data []byte, i int, rc *RawCounts) (int, error) {
	n := len(data)

	// Step 1: skip the header line.
	for i < n && data[i] != '\n' {
		i++
	}
	if i < n {
		i++ // consume the newline itself
	}

	// Step 2: the initial (Len-1)-residue window. An unexpected EOF here
	// is treated as end of file, not an error.
	if i+(aa.Len-1) > n {
		return n, nil
	}

	rc.Complement++
	w := 0
	for k := 0; k < aa.Len-1; k++ {
		enc, err := aa.Encode(data[i+k])
		if err != nil {
			return 0, fmt.Errorf("initial window at offset %d: %w", i+k, err)
		}
		rc.One[enc]++
		rc.TotalL++
		w = w*aa.Number + enc
	}
	i += aa.Len - 1
	rc.Second[w]++

	// Step 3: roll over the rest of the record, one residue at a time,
	// skipping line breaks, until the next header or end of file.
	for i < n && data[i] != '>' {
		ch := data[i]
		i++
		if ch == '\n' || ch == '\r' {
			continue
		}
		enc, err := aa.Encode(ch)
		if err != nil {
			return 0, fmt.Errorf("record body at offset %d: %w", i-1, err)
		}
		rc.One[enc]++
		rc.TotalL++
		idx := w*aa.Number + enc
		rc.Vector[idx]++
		rc.Total++
		w = (w % aa.M2) * aa.Number + enc
		rc.Second[w]++
	}
	return i, nil
}
