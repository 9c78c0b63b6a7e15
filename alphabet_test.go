package onetimepad

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultAlphabet(t *testing.T) {
	require := require.New(t)

	a, err := NewAlphabet(DefaultAlphabet)
	require.NoError(err, "NewAlphabet()")
	require.Equal(95, a.Len(), "Len() - printable ASCII minus control characters")
	require.Equal(DefaultAlphabet, a.String(), "String()")

	idx, err := a.IndexOf(' ')
	require.NoError(err, "IndexOf(' ')")
	require.Equal(0, idx, "IndexOf(' ') - first symbol")

	idx, err = a.IndexOf('?')
	require.NoError(err, "IndexOf('?')")
	require.Equal(94, idx, "IndexOf('?') - last symbol")
}

func TestAlphabetIndexOf(t *testing.T) {
	require := require.New(t)

	a, err := NewAlphabet("ABCDE")
	require.NoError(err, "NewAlphabet()")

	idx, err := a.IndexOf('C')
	require.NoError(err, "IndexOf('C')")
	require.Equal(2, idx, "IndexOf('C')")

	_, err = a.IndexOf('x')
	require.ErrorIs(err, ErrCharacterNotInAlphabet, "IndexOf('x') - absent symbol")
	require.Contains(err.Error(), "'x'", "IndexOf('x') - offending symbol")
}

func TestAlphabetSymbolAt(t *testing.T) {
	require := require.New(t)

	a, err := NewAlphabet("ABCDE")
	require.NoError(err, "NewAlphabet()")
	require.Equal('D', a.SymbolAt(3), "SymbolAt(3)")
	require.Equal('A', a.SymbolAt(5), "SymbolAt(5) - wraps modulo the length")
	require.Equal('C', a.SymbolAt(12), "SymbolAt(12) - wraps modulo the length")
}

func TestAlphabetDuplicates(t *testing.T) {
	require := require.New(t)

	// Duplicate symbols resolve to the first occurrence.
	a, err := NewAlphabet("ABA")
	require.NoError(err, "NewAlphabet()")

	idx, err := a.IndexOf('A')
	require.NoError(err, "IndexOf('A')")
	require.Equal(0, idx, "IndexOf('A') - first occurrence wins")
}
