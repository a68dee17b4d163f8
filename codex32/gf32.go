package codex32

import "iter"

// Field Implementation
//
// Implements GF(32) arithmetic, defined and encoded as in [BIP-0173] "bech32".
//
// [BIP-0173]: https://bips.dev/173/

// Alphabet is the bech32 alphabet: the numeric value of a character is
// its index in this string.
const Alphabet = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// logTbl is a logarithm table of each bech32 element, as a power of alpha = Z.
//
// Includes Q as 0 but this is false; you need to exclude Q because
// it has no discrete log. If we could have a 1-indexed array that
// would panic on a 0 index that would be better.
var logTbl = [32]uint8{
	0, 0, 1, 14, 2, 28, 15, 22,
	3, 5, 29, 26, 16, 7, 23, 11,
	4, 25, 6, 10, 30, 13, 27, 21,
	17, 18, 8, 19, 24, 9, 12, 20,
}

// invLogTbl maps of powers of 2 to the numeric value of the element.
var invLogTbl = [31]Fe{
	1, 2, 4, 8, 16, 9, 18, 13,
	26, 29, 19, 15, 30, 21, 3, 6,
	12, 24, 25, 27, 31, 23, 7, 14,
	28, 17, 11, 22, 5, 10, 20,
}

// charsLowerTbl maps from numeric value to bech32 character.
var charsLowerTbl = [32]byte{
	'q', 'p', 'z', 'r', 'y', '9', 'x', '8', //  +0
	'g', 'f', '2', 't', 'v', 'd', 'w', '0', //  +8
	's', '3', 'j', 'n', '5', '4', 'k', 'h', // +16
	'c', 'e', '6', 'm', 'u', 'a', '7', 'l', // +24
}

// invCharsTbl maps from bech32 character (either case) to numeric value.
var invCharsTbl = [128]int8{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	15, -1, 10, 17, 21, 20, 26, 30, 7, 5, -1, -1, -1, -1, -1, -1,
	-1, 29, -1, 24, 13, 25, 9, 8, 23, -1, 18, 22, 31, 27, 19, -1,
	1, 0, 3, 16, 11, 28, 12, 14, 6, 4, 2, -1, -1, -1, -1, -1,
	-1, 29, -1, 24, 13, 25, 9, 8, 23, -1, 18, 22, 31, 27, 19, -1,
	1, 0, 3, 16, 11, 28, 12, 14, 6, 4, 2, -1, -1, -1, -1, -1,
}

// Fe is an element of GF(32). The zero value is Q, the additive
// identity. Values are always in [0, 32); constructors that cannot
// guarantee this fail with an error rather than truncate.
type Fe uint8

// Named elements, in alphabet order. Digit-led character names ("9",
// "2", ...) get an Fe prefix since Go identifiers cannot start with a
// digit.
const (
	FeQ Fe = iota // additive identity
	FeP           // multiplicative identity
	FeZ
	FeR
	FeY
	Fe9
	FeX
	Fe8
	FeG
	FeF
	Fe2
	FeT
	FeV
	FeD
	FeW
	Fe0
	FeS
	Fe3
	FeJ
	FeN
	Fe5
	Fe4
	FeK
	FeH
	FeC
	FeE
	Fe6
	FeM
	FeU
	FeA
	Fe7
	FeL
)

func (e Fe) Add(e2 Fe) Fe {
	return e ^ e2
}

func (e Fe) Sub(e2 Fe) Fe {
	// Subtraction is the same as addition in a char-2 field.
	return e.Add(e2)
}

func (e Fe) Mul(e2 Fe) Fe {
	if e == FeQ || e2 == FeQ {
		return FeQ
	}
	log1 := uint16(logTbl[e])
	log2 := uint16(logTbl[e2])
	return invLogTbl[(log1+log2)%31]
}

// Div divides e by e2. Dividing by FeQ is a programmer error, not a
// representable runtime condition: it panics rather than returning a
// silently-wrong value.
func (e Fe) Div(e2 Fe) Fe {
	if e == FeQ {
		return FeQ
	}
	if e2 == FeQ {
		panic("codex32: division by zero in GF(32)")
	}
	log1 := uint16(logTbl[e])
	log2 := uint16(logTbl[e2])
	return invLogTbl[(31+log1-log2)%31]
}

// FeFromInt converts an integer to a field element.
func FeFromInt(i int) (Fe, error) {
	if i < 0 || i > 255 {
		return 0, ErrNotAByte
	}
	if i >= 32 {
		return 0, &InvalidByteError{Byte: i}
	}
	return Fe(i), nil
}

// FeFromChar converts a bech32 character, either case, to a field element.
func FeFromChar(c rune) (Fe, error) {
	if c < 0 || int(c) >= len(invCharsTbl) {
		return 0, &InvalidCharError{Char: c}
	}
	e := invCharsTbl[c]
	if e == -1 {
		return 0, &InvalidCharError{Char: c}
	}
	return Fe(e), nil
}

// FeFromCharCase converts c as FeFromChar does, additionally requiring
// that its case match want.
func FeFromCharCase(c rune, want Case) (Fe, error) {
	e, err := FeFromChar(c)
	if err != nil {
		return 0, err
	}
	isLower := c == toLowerASCII(c)
	if (isLower && want == Lower) || (!isLower && want == Upper) {
		return e, nil
	}
	return 0, &InvalidCaseError{Expected: want, Char: c}
}

// FeFromString decodes a single bech32 character given as a one-rune string.
func FeFromString(s string) (Fe, error) {
	rs := []rune(s)
	switch len(rs) {
	case 0:
		return 0, ErrEmptyString
	case 1:
		return FeFromChar(rs[0])
	default:
		return 0, &ExtraCharError{Char: rs[1]}
	}
}

// Char converts the field element to a lowercase bech32 character.
// Indexing is fine as we have e in [0, 32) as an invariant.
func (e Fe) Char() byte {
	return charsLowerTbl[e]
}

// CharCase converts the field element to a bech32 character in the
// requested case.
func (e Fe) CharCase(c Case) byte {
	ch := e.Char()
	if c == Upper {
		return byte(toUpperASCII(rune(ch)))
	}
	return ch
}

func (e Fe) String() string {
	return string(rune(e.Char()))
}

// NonZeroValues iterates the 31 nonzero elements of GF(32) in ascending
// numeric order: the alphabet of possible error diffs used by the
// correction-table generator.
func NonZeroValues() iter.Seq[Fe] {
	return func(yield func(Fe) bool) {
		for i := Fe(1); i < 32; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

func toLowerASCII(c rune) rune {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func toUpperASCII(c rune) rune {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
