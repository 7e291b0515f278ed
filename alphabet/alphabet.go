// Package alphabet maps non-negative integers to strings in a bijective
// base-N numeral system, where N is the size of an ordered set of
// characters.
//
// With the alphabet "abc", indices 0, 1, 2 map to "a", "b", "c", then 3
// maps to "aa" and so on. Every index has exactly one string and every
// string over the alphabet has exactly one index, which makes the output
// usable as short collision-free identifiers.
package alphabet

import (
	"math"
	"slices"
	"unicode/utf8"
)

// An Alphabet is an ordered, duplicate-free sequence of characters. The
// position of a character is its digit value. The zero value is an empty
// alphabet.
//
// An Alphabet is immutable once built and may be shared between goroutines.
type Alphabet struct {
	chars []rune
	index map[rune]int
}

// New builds an alphabet from chars, keeping their order. It fails with a
// *CharError wrapping ErrDuplicateChar for the first character that appears
// twice, or ErrInvalidChar for a rune that is not a Unicode scalar value.
func New(chars []rune) (Alphabet, error) {
	a := Alphabet{chars: slices.Clone(chars)}
	if err := a.Verify(nil); err != nil {
		return Alphabet{}, err
	}
	a.index = make(map[rune]int, len(a.chars))
	for i, c := range a.chars {
		a.index[c] = i
	}
	return a, nil
}

// From builds an alphabet from the characters of s, in order.
func From(s string) (Alphabet, error) {
	return New([]rune(s))
}

// MustFrom is like From but panics if s is not a valid alphabet.
func MustFrom(s string) Alphabet {
	a, err := From(s)
	if err != nil {
		panic("alphabet: MustFrom(" + s + "): " + err.Error())
	}
	return a
}

// Len returns the number of characters, the base of the numeral system.
func (a Alphabet) Len() int { return len(a.chars) }

// At returns the character for digit value i. It panics if i is out of
// range.
func (a Alphabet) At(i int) rune { return a.chars[i] }

// Chars returns a copy of the characters in order.
func (a Alphabet) Chars() []rune { return slices.Clone(a.chars) }

// String returns the characters of the alphabet as a string.
func (a Alphabet) String() string { return string(a.chars) }

// Contains reports whether r is a member of this alphabet.
func (a Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// Equal reports whether a and b hold the same characters in the same order.
func (a Alphabet) Equal(b Alphabet) bool {
	return slices.Equal(a.chars, b.chars)
}

// Verify checks that every character is a Unicode scalar value, that none
// appears twice and, when restriction is not nil, that every character is
// also in restriction. The first violation in order is returned; for a
// single character the duplicate check comes before the subset check.
func (a Alphabet) Verify(restriction *Alphabet) error {
	var allowed map[rune]struct{}
	if restriction != nil {
		allowed = make(map[rune]struct{}, len(restriction.chars))
		for _, c := range restriction.chars {
			allowed[c] = struct{}{}
		}
	}

	seen := make(map[rune]struct{}, len(a.chars))
	for _, c := range a.chars {
		if !utf8.ValidRune(c) {
			return charError(ErrInvalidChar, c)
		}
		if _, dup := seen[c]; dup {
			return charError(ErrDuplicateChar, c)
		}
		if allowed != nil {
			if _, ok := allowed[c]; !ok {
				return charError(ErrNotSubset, c)
			}
		}
		seen[c] = struct{}{}
	}
	return nil
}

// Generate returns the strings for the count consecutive indices starting
// at start, in order. A count of zero or less yields an empty slice.
func (a Alphabet) Generate(start, count int64) ([]string, error) {
	if len(a.chars) == 0 {
		return nil, ErrEmpty
	}
	if start < 0 {
		return nil, ErrNegativeIndex
	}
	if count <= 0 {
		return []string{}, nil
	}
	if count-1 > math.MaxInt64-start {
		return nil, ErrIndexOverflow
	}

	result := make([]string, 0, count)
	var buf []rune
	for i := int64(0); i < count; i++ {
		var s string
		s, buf = a.encode(start+i, buf)
		result = append(result, s)
	}
	return result, nil
}

// Encode returns the string for index i.
func (a Alphabet) Encode(i int64) (string, error) {
	if len(a.chars) == 0 {
		return "", ErrEmpty
	}
	if i < 0 {
		return "", ErrNegativeIndex
	}
	s, _ := a.encode(i, nil)
	return s, nil
}

// encode reuses buf between calls and returns it for the next one.
func (a Alphabet) encode(idx int64, buf []rune) (string, []rune) {
	base := int64(len(a.chars))
	buf = buf[:0]
	for cur := idx; cur >= 0; {
		rem := cur % base
		buf = append(buf, a.chars[rem])
		cur = (cur-rem)/base - 1
	}
	slices.Reverse(buf)
	return string(buf), buf
}

// Decode returns the index of s, the inverse of Encode.
func (a Alphabet) Decode(s string) (int64, error) {
	if len(a.chars) == 0 {
		return 0, ErrEmpty
	}
	if s == "" {
		return 0, ErrEmptyString
	}

	base := uint64(len(a.chars))
	var v uint64
	for _, c := range s {
		d, ok := a.index[c]
		if !ok {
			return 0, charError(ErrUnknownChar, c)
		}
		step := uint64(d) + 1
		if v > (math.MaxUint64-step)/base {
			return 0, ErrIndexOverflow
		}
		v = v*base + step
	}
	if v-1 > math.MaxInt64 {
		return 0, ErrIndexOverflow
	}
	return int64(v - 1), nil
}

// MarshalText encodes the alphabet as its characters in order.
func (a Alphabet) MarshalText() ([]byte, error) {
	return []byte(string(a.chars)), nil
}

// UnmarshalText decodes an alphabet written by MarshalText. The result is
// validated the same way as From.
func (a *Alphabet) UnmarshalText(text []byte) error {
	parsed, err := From(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
