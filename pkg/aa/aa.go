// Package aa holds the compile-time constants of the amino-acid alphabet
// and k-mer geometry shared by the counting, transform and comparison
// stages of the pipeline.
package aa

// Number is the size of the encoded amino-acid alphabet.
const Number = 20

// Len is the k-mer length the pipeline counts and scores.
const Len = 6

// M2, M1 and M are the sizes of the dense arrays a genome's counts live
// in: M2 = Number^(Len-2), M1 = Number^(Len-1), M = Number^Len.
const (
	M2 = 160_000
	M1 = 3_200_000
	M  = 64_000_000
)

// Epsilon is the smallest stochastic expectation treated as non-zero.
const Epsilon = 1e-10
