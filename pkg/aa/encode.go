package aa

import "fmt"

// code maps 'A'..'Z' (by index ch-'A') to a residue in [0, Number), or -1
// for the two letters that have no residue code ('J' and 'O'); several
// letters share a code, e.g. 'B' and 'D' both map to 2.
var code = [26]int8{
	0, 2, 1, 2, 3, 4, 5, 6, 7, -1, 8, 9, 10, 11, -1,
	12, 13, 14, 15, 16, 1, 17, 18, 5, 19, 3,
}

// ErrSkipResidue is returned by Encode for a letter whose code table entry
// is the -1 sentinel: 'J' and 'O' are not valid amino acid one-letter
// codes.
type ErrSkipResidue struct {
	Ch byte
}

func (e ErrSkipResidue) Error() string {
	return fmt.Sprintf("residue %q has no valid encoding (J/O are not amino acids)", e.Ch)
}

// Encode maps an uppercase ASCII letter to a residue index in [0, Number).
// Callers must have already filtered out non-letter bytes such as '\n' and
// '\r'.
func Encode(ch byte) (int, error) {
	if ch < 'A' || ch > 'Z' {
		return 0, fmt.Errorf("encode: byte %q is not an uppercase letter", ch)
	}
	v := code[ch-'A']
	if v < 0 {
		return 0, ErrSkipResidue{Ch: ch}
	}
	return int(v), nil
}
