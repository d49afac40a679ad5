package corr_test

import (
	"math"
	"testing"

	"github.com/andrew-torda/protcorr/pkg/corr"
	"github.com/andrew-torda/protcorr/pkg/signature"
)

func sig(ti []int64, tv []float64) *signature.Signature {
	return &signature.Signature{Count: len(ti), Ti: ti, Tv: tv}
}

func TestCompareSelfCorrelationIsOne(t *testing.T) {
	s := sig([]int64{1, 5, 9}, []float64{0.5, -1.2, 3.0})
	got := corr.Compare(s, s)
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("self-correlation = %.12f, want 1.0", got)
	}
}

func TestCompareSymmetric(t *testing.T) {
	a := sig([]int64{1, 2, 9}, []float64{0.5, -1.2, 3.0})
	b := sig([]int64{2, 3, 9}, []float64{2.0, 1.0, -0.5})
	if ab, ba := corr.Compare(a, b), corr.Compare(b, a); ab != ba {
		t.Errorf("Compare(a,b) = %v, Compare(b,a) = %v, want bitwise equal", ab, ba)
	}
}

func TestCompareDisjointIsZero(t *testing.T) {
	a := sig([]int64{1, 2, 3}, []float64{1, 1, 1})
	b := sig([]int64{4, 5, 6}, []float64{1, 1, 1})
	if got := corr.Compare(a, b); got != 0 {
		t.Errorf("disjoint correlation = %v, want 0", got)
	}
}

func TestCompareBoundedRange(t *testing.T) {
	a := sig([]int64{1, 2, 3, 10}, []float64{3, -2, 5, -1})
	b := sig([]int64{2, 3, 4, 10}, []float64{-4, 1, 2, 9})
	got := corr.Compare(a, b)
	if got < -1-1e-9 || got > 1+1e-9 {
		t.Errorf("correlation %v out of [-1, 1]", got)
	}
}

func TestCompareEmptySignatureIsZero(t *testing.T) {
	empty := sig(nil, nil)
	nonEmpty := sig([]int64{1}, []float64{1})
	if got := corr.Compare(empty, nonEmpty); got != 0 {
		t.Errorf("Compare with an empty signature = %v, want 0", got)
	}
}
