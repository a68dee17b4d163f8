// package codex32 is an implementation of the checksum core of the
// [codex32] scheme for checksummed, bech32-alphabet-encoded BIP32
// master seeds. [BIP-93] describes the scheme in detail.
//
// This package implements GF(32) arithmetic, the streaming checksum
// engine, and the checksummed-string facade. It does not implement
// Shamir secret-sharing reconstruction or BIP32 key derivation; those
// are callers' concerns, built on top of a valid String.
//
// [codex32]: https://secretcodex32.com/
// [BIP-93]: https://bips.dev/93/
package codex32

import (
	"fmt"
	"strings"
)

// String is a codex32 string, containing a valid checksum.
type String struct {
	s string
}

const (
	shortCodeMaxLength = 93
	longCodeMinLength  = 96
	longCodeMaxLength  = 124
	shortChecksumLen   = 13
	longChecksumLen    = 15
)

// New constructs a codex32 string from an already-checksummed string.
// It dispatches on total length to the short or long checksum variant,
// feeds the HRP and data through the matching engine, and requires the
// residue to come out valid.
func New(s string) (String, error) {
	check, err := engineForLength(len(s))
	if err != nil {
		return String{}, err
	}
	hrp, data := SplitHRP(s)
	if err := check.InputHRP(hrp); err != nil {
		return String{}, fmt.Errorf("codex32: %w", err)
	}
	if err := check.InputData(data); err != nil {
		return String{}, fmt.Errorf("codex32: %w", err)
	}
	if !check.IsValid() {
		return String{}, fmt.Errorf("codex32: %w", &InvalidChecksumError{Variant: check.Variant(), String: s})
	}
	return String{s}, nil
}

// FromUnchecksummedString constructs a codex32 string by computing and
// appending a checksum to s, which must not already carry one.
//
// Per the reference behaviour, the short checksum engine is selected
// whenever s (before the checksum is appended) fits within the short
// length budget, and also when it only fits within the long budget:
// the length test's "long" branch exists but both branches select the
// short engine. This is preserved verbatim rather than corrected; see
// DESIGN.md. Inputs longer than the long budget are rejected with an
// InvalidLengthError.
func FromUnchecksummedString(s string) (String, error) {
	var clen int
	var check *ChecksumEngine
	switch {
	case len(s) <= shortCodeMaxLength-shortChecksumLen:
		clen, check = shortChecksumLen, NewShortChecksum()
	case len(s) <= longCodeMaxLength-longChecksumLen:
		clen, check = longChecksumLen, NewShortChecksum()
	default:
		return String{}, fmt.Errorf("codex32: %w", &InvalidLengthError{Length: len(s)})
	}

	hrp, data := SplitHRP(s)
	if err := check.InputHRP(hrp); err != nil {
		return String{}, fmt.Errorf("codex32: %w", err)
	}
	if err := check.InputData(data); err != nil {
		return String{}, fmt.Errorf("codex32: %w", err)
	}
	check.InputTarget()

	b := new(strings.Builder)
	b.Grow(len(s) + clen)
	b.WriteString(s)
	for _, c := range check.Residue() {
		b.WriteByte(c.Char())
	}
	return String{b.String()}, nil
}

// String returns the codex32 string verbatim.
func (s String) String() string {
	return s.s
}

// HRP returns the human-readable prefix of s: everything before the
// rightmost '1' separator.
func (s String) HRP() string {
	hrp, _ := SplitHRP(s.s)
	return hrp
}

// SplitHRP splits s into its human-readable prefix and data part at the
// rightmost '1'. If no '1' occurs, the HRP is empty and the entire
// string is data; the separator itself is part of neither half.
func SplitHRP(s string) (hrp, data string) {
	i := strings.LastIndexByte(s, '1')
	if i < 0 {
		return "", s
	}
	return s[:i], s[i+1:]
}

// engineForLength picks the short or long checksum engine for a string
// of the given total length, per the permitted length ranges. Lengths
// 94 and 95 fall in neither range (see DESIGN.md Open Questions).
func engineForLength(n int) (*ChecksumEngine, error) {
	switch {
	case n > 0 && n < 94:
		return NewShortChecksum(), nil
	case n > longCodeMinLength-1 && n < 125:
		return NewLongChecksum(), nil
	default:
		return nil, fmt.Errorf("codex32: %w", &InvalidLengthError{Length: n})
	}
}
