// Package corr implements the Comparator: the sparse-vector correlation
// walk between two genome signatures.
package corr

import (
	"math"

	"github.com/andrew-torda/protcorr/pkg/signature"
)

// Compare returns the cosine correlation between two signatures: the dot
// product of shared indices, normalized by the Euclidean norm of each
// operand taken over the union of indices present in either. It returns 0
// if either signature is empty.
func Compare(a, b *signature.Signature) float64 {
	if a.Count == 0 || b.Count == 0 {
		return 0
	}

	var dot, nA, nB float64
	p, q := 0, 0
	for p < a.Count && q < b.Count {
		switch {
		case a.Ti[p] < b.Ti[q]:
			v := a.Tv[p]
			nA += v * v
			p++
		case b.Ti[q] < a.Ti[p]:
			v := b.Tv[q]
			nB += v * v
			q++
		default:
			va, vb := a.Tv[p], b.Tv[q]
			nA += va * va
			nB += vb * vb
			dot += va * vb
			p++
			q++
		}
	}
	for ; p < a.Count; p++ {
		v := a.Tv[p]
		nA += v * v
	}
	for ; q < b.Count; q++ {
		v := b.Tv[q]
		nB += v * v
	}

	return dot / (math.Sqrt(nA) * math.Sqrt(nB))
}
