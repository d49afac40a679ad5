package signature

import (
	"runtime"
	"sync"

	"github.com/andrew-torda/protcorr/pkg/aa"
	"github.com/andrew-torda/protcorr/pkg/counts"
)

// Workers controls how many goroutines share the sweep over [0, M) inside
// Transform. It defaults to the host's CPU count; tests set it to a fixed
// count to exercise the merge logic with more than one worker.
var Workers = runtime.NumCPU()

// ResidueFractions returns each residue's share of a genome's single
// counts, one entry per encoded amino acid. It is exported so diagnostic
// tooling can report the same per-genome usage table that feeds the
// stochastic model, without recomputing it from RawCounts itself.
func ResidueFractions(rc *counts.RawCounts) [aa.Number]float64 {
	var pOne [aa.Number]float64
	if rc.TotalL == 0 {
		return pOne
	}
	for a := 0; a < aa.Number; a++ {
		pOne[a] = float64(rc.One[a]) / float64(rc.TotalL)
	}
	return pOne
}

// Transform consumes a genome's raw counts and produces its sparse
// deviation signature. rc's dense arrays are released as soon as the
// derived probability tables have been computed from them, per the
// pipeline's memory budget.
func Transform(rc *counts.RawCounts) *Signature {
	if rc.TotalL == 0 {
		return &Signature{}
	}

	pOne := ResidueFractions(rc)

	denom := float64(rc.Total + rc.Complement)
	pTwo := make([]float64, aa.M1)
	for s := 0; s < aa.M1; s++ {
		pTwo[s] = float64(rc.Second[s]) / denom
	}

	halfTotal := float64(rc.Total) * 0.5
	vector := rc.Vector

	// The dense vector/second arrays are scratch for this call only; drop
	// the Counter's references once we hold what the sweep needs.
	rc.Second = nil
	rc.Vector = nil

	nWorkers := Workers
	if nWorkers < 1 {
		nWorkers = 1
	}
	if nWorkers > aa.M {
		nWorkers = aa.M
	}
	chunk := (aa.M + nWorkers - 1) / nWorkers

	buffers := make([][]int64, nWorkers)
	values := make([][]float64, nWorkers)
	var wg sync.WaitGroup
	for w := 0; w < nWorkers; w++ {
		start := w * chunk
		end := start + chunk
		if end > aa.M {
			end = aa.M
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			ti, tv := sweep(start, end, pOne[:], pTwo, vector, halfTotal)
			buffers[w] = ti
			values[w] = tv
		}(w, start, end)
	}
	wg.Wait()

	sig := &Signature{}
	for w := 0; w < nWorkers; w++ {
		sig.Ti = append(sig.Ti, buffers[w]...)
		sig.Tv = append(sig.Tv, values[w]...)
	}
	sig.Count = len(sig.Ti)
	return sig
}

// sweep scans index range [start, end) of the M-sized deviation space,
// decomposing each index into its aHi/aLo/bHi/bLo components
// incrementally rather than dividing on every iteration, and returns the
// ascending indices (and values) whose deviation is non-zero.
func sweep(start, end int, pOne []float64, pTwo []float64, vector []int64, halfTotal float64) ([]int64, []float64) {
	aHi := start / aa.Number
	aLo := start % aa.Number
	bHi := start / aa.M1
	bLo := start % aa.M1

	var ti []int64
	var tv []float64
	for i := start; i < end; i++ {
		e := (pTwo[aHi]*pOne[aLo] + pTwo[bLo]*pOne[bHi]) * halfTotal

		if e > aa.Epsilon {
			d := (float64(vector[i]) - e) / e
			if d != 0 {
				ti = append(ti, int64(i))
				tv = append(tv, d)
			}
		}

		aLo++
		if aLo == aa.Number {
			aLo = 0
			aHi++
		}
		bLo++
		if bLo == aa.M1 {
			bLo = 0
			bHi++
		}
	}
	return ti, tv
}
