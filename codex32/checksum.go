package codex32

import (
	"slices"
)

// ChecksumEngine consumes one GF(32) character at a time, and maintains
// a residue modulo a fixed generator polynomial. It implements the
// streaming BCH-style checksum used by both codex32 variants.
//
// An engine is mutated in place by its Input* methods. Use Clone before
// feeding synthetic input you want to discard afterwards (as the
// correction-table generator does, probing many candidate error
// patterns from the same HRP-primed starting state).
type ChecksumEngine struct {
	variant   string
	_case     charCase
	generator []Fe
	residue   []Fe
	target    []Fe
}

type charCase int

const (
	noCase charCase = iota
	lowerCase
	upperCase
)

// NewShortChecksum constructs an engine which computes the normal
// codex32 checksum (used by strings up to 93 characters).
func NewShortChecksum() *ChecksumEngine {
	return &ChecksumEngine{
		variant: "short",
		generator: []Fe{
			FeE, FeM, Fe3, FeG, FeQ, FeE,
			FeE, FeE, FeL, FeM, FeC, FeS,
			FeS,
		},
		residue: []Fe{
			FeQ, FeQ, FeQ, FeQ, FeQ, FeQ,
			FeQ, FeQ, FeQ, FeQ, FeQ, FeQ,
			FeP,
		},
		target: []Fe{
			FeS, FeE, FeC, FeR, FeE, FeT,
			FeS, FeH, FeA, FeR, FeE, Fe3,
			Fe2,
		},
	}
}

// NewLongChecksum constructs an engine which computes the "long"
// codex32 checksum (used by strings from 96 to 124 characters).
func NewLongChecksum() *ChecksumEngine {
	return &ChecksumEngine{
		variant: "long",
		generator: []Fe{
			Fe0, Fe2, FeE, Fe6, FeF, FeE,
			Fe4, FeX, FeH, Fe4, FeX, Fe9,
			FeK, FeY, FeH,
		},
		residue: []Fe{
			FeQ, FeQ, FeQ, FeQ, FeQ, FeQ,
			FeQ, FeQ, FeQ, FeQ, FeQ, FeQ,
			FeQ, FeQ, FeP,
		},
		target: []Fe{
			FeS, FeE, FeC, FeR, FeE, FeT,
			FeS, FeH, FeA, FeR, FeE, Fe3,
			Fe2, FeE, FeX,
		},
	}
}

// Clone returns an independent copy of the engine. Feeding input to the
// copy does not affect the original.
func (e *ChecksumEngine) Clone() *ChecksumEngine {
	return &ChecksumEngine{
		variant:   e.variant,
		_case:     e._case,
		generator: e.generator, // never mutated in place
		residue:   slices.Clone(e.residue),
		target:    e.target, // never mutated in place
	}
}

// Variant reports which checksum ("short" or "long") this engine computes.
func (e *ChecksumEngine) Variant() string {
	return e.variant
}

// IsValid reports whether the residue matches the target value for the
// checksum.
func (e *ChecksumEngine) IsValid() bool {
	return slices.Equal(e.residue, e.target)
}

// Residue returns a copy of the engine's current residue, e.g. for
// error correction or for the correction-table generator's syndrome
// bookkeeping.
func (e *ChecksumEngine) Residue() []Fe {
	return slices.Clone(e.residue)
}

// ForceResidueToZero sets the residue to all zeros, discarding the
// initial-state constant P the constructors set up. This lets the
// correction-table generator compute the syndrome contribution of
// synthetic errors in isolation from the initial state and target; it
// has no use outside that generator.
func (e *ChecksumEngine) ForceResidueToZero() {
	for i := range e.residue {
		e.residue[i] = FeQ
	}
}

// InputHRP feeds the characters of a human-readable prefix into the
// engine. The HRP separator '1' is not itself fed; callers feed data
// immediately afterwards.
func (e *ChecksumEngine) InputHRP(hrp string) error {
	for _, c := range hrp {
		if c > 127 {
			return &InvalidCharError{Char: c}
		}
		if !e.setCase(c) {
			return &InvalidCaseError{Expected: e.observedCase(), Char: c}
		}
		hi, err := FeFromInt(int(toLowerASCII(c)) >> 5)
		if err != nil {
			return err
		}
		e.InputFe(hi)
	}
	e.InputFe(FeQ)
	for _, c := range hrp {
		lo, err := FeFromInt(int(toLowerASCII(c)) & 0x1f)
		if err != nil {
			return err
		}
		e.InputFe(lo)
	}
	return nil
}

// InputChar feeds a single data character into the engine.
func (e *ChecksumEngine) InputChar(c rune) error {
	elem, err := FeFromChar(c)
	if err != nil {
		return err
	}
	if !e.setCase(c) {
		return &InvalidCaseError{Expected: e.observedCase(), Char: c}
	}
	e.InputFe(elem)
	return nil
}

// InputData feeds an entire string into the engine, treating every
// character as data (never as HRP).
func (e *ChecksumEngine) InputData(s string) error {
	for _, c := range s {
		if err := e.InputChar(c); err != nil {
			return err
		}
	}
	return nil
}

// InputTarget feeds the engine's own target residue as trailing input.
// Used when constructing a fresh checksum: running the target through
// the engine after the payload turns the running residue into the
// checksum that, appended to the payload, makes the whole string valid.
func (e *ChecksumEngine) InputTarget() {
	for _, t := range e.target {
		e.InputFe(t)
	}
}

// setCase sets the case according to c. It returns false if c's case is
// inconsistent with the case already established by an earlier
// character. Digits never constrain case.
func (e *ChecksumEngine) setCase(c rune) bool {
	if c < 0 || c > 127 {
		return false
	}
	if '0' <= c && c <= '9' {
		return true
	}
	isLower := c == toLowerASCII(c)
	switch {
	case e._case == lowerCase && isLower, e._case == upperCase && !isLower:
		return true
	case e._case == noCase:
		if isLower {
			e._case = lowerCase
		} else {
			e._case = upperCase
		}
		return true
	}
	return false
}

func (e *ChecksumEngine) observedCase() Case {
	if e._case == upperCase {
		return Upper
	}
	return Lower
}

// InputFe adds a single GF(32) element to the checksum engine. This is
// where the real magic happens: a step of polynomial long division of
// the input stream by the generator, over GF(32).
//
// The residue is stored with index 0 holding the coefficient that is
// about to roll out of the window (the one multiplied against the
// generator this step) and the new input landing at the far end; the
// shift below therefore walks indices downward. This is the mirror
// image of treating index 0 as the constant term, and is equivalent to
// it as long as the generator and target tables are read in the same
// convention (verified against the translation-wheel and BIP test
// vectors).
func (e *ChecksumEngine) InputFe(elem Fe) {
	n := len(e.residue)
	xn := e.residue[0]
	for i := 1; i < n; i++ {
		e.residue[i-1] = e.residue[i]
	}
	e.residue[n-1] = elem
	for i, r := range e.residue {
		e.residue[i] = r.Add(e.generator[i].Mul(xn))
	}
}
