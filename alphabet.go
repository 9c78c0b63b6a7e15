// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package onetimepad

import "fmt"

// DefaultAlphabet is the default 95 symbol alphabet, covering printable
// ASCII except control characters. The ordering is part of the encode and
// decode contract: both sides of a conversation must agree on the alphabet
// byte-for-byte.
const DefaultAlphabet = " 1234567890!@#$%^&*()`~-_=+abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ[]{}\\|;:'\",.<>/?"

// Alphabet is an ordered sequence of distinct symbols defining the index
// space of the cipher. The first symbol is numbered 0, and the numeric
// representation increases with the symbol position. If a symbol occurs
// more than once, the first occurrence wins. An Alphabet is immutable
// once constructed.
type Alphabet struct {
	symbols []rune
	indices map[rune]int
}

// NewAlphabet constructs an Alphabet from the ordered symbols in s.
func NewAlphabet(s string) (*Alphabet, error) {
	if s == "" {
		return nil, ErrEmptyAlphabet
	}

	symbols := []rune(s)
	indices := make(map[rune]int, len(symbols))
	for i, ch := range symbols {
		if _, ok := indices[ch]; !ok {
			indices[ch] = i
		}
	}

	return &Alphabet{
		symbols: symbols,
		indices: indices,
	}, nil
}

// Len returns the number of symbols in the alphabet.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// IndexOf returns the zero-based index of the first occurrence of symbol.
func (a *Alphabet) IndexOf(symbol rune) (int, error) {
	idx, ok := a.indices[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrCharacterNotInAlphabet, symbol)
	}

	return idx, nil
}

// SymbolAt returns the symbol at index modulo the alphabet length, so
// arithmetic past the end of the alphabet wraps instead of indexing out
// of bounds. The index must be non-negative.
func (a *Alphabet) SymbolAt(index int) rune {
	return a.symbols[index%len(a.symbols)]
}

// String returns the alphabet as its ordered symbol string.
func (a *Alphabet) String() string {
	return string(a.symbols)
}
