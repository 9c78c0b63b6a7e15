// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

// Package onetimepad implements a one time pad style substitution cipher
// over a configurable finite alphabet.
package onetimepad

import (
	"errors"
	"strings"
	"unicode/utf8"

	"gitlab.com/yawning/onetimepad.git/internal/entropy"
)

var (
	// ErrPadBufferNotLongEnough is the error returned when the pad buffer
	// has fewer queued indices than the input has symbols. Append more
	// characters with PushToPad or GeneratePad, or use a shorter input.
	ErrPadBufferNotLongEnough = errors.New("onetimepad: pad buffer not long enough for the input")

	// ErrCharacterNotInAlphabet is the error returned when an input
	// character has no index in the configured alphabet. The offending
	// character is attached to the returned error.
	ErrCharacterNotInAlphabet = errors.New("onetimepad: character not in alphabet")

	// ErrEmptyAlphabet is the error returned when constructing an alphabet
	// from an empty symbol sequence.
	ErrEmptyAlphabet = errors.New("onetimepad: alphabet must contain at least one symbol")
)

// Source is a uniform random index source used by GeneratePad. The default
// source is not suitable for cryptographic use; callers that need a secure
// pad must provide their own via SetSource.
type Source interface {
	// Name returns the name of the source.
	Name() string

	// Intn returns a uniformly distributed index in [0, n).
	Intn(n int) int
}

// EncodingResult is the result of an Encode call.
type EncodingResult struct {
	// CipherText is the cipher text produced by the encoding operation.
	CipherText string

	// Pad is the pad text consumed by the encoding operation.
	Pad string
}

// OneTimePad holds the state of a one time pad: an alphabet and a FIFO
// buffer of pad indices, consumed front-first by Encode and Decode. Pad
// material is single-use; an operation that fails leaves the buffer
// exactly as it was.
//
// A OneTimePad is not safe for concurrent use. Callers that share an
// instance across goroutines must serialize every operation behind a
// single lock, as all of them read and mutate the shared buffer.
type OneTimePad struct {
	alphabet  *Alphabet
	padBuffer []int
	source    Source
}

// New creates a new OneTimePad instance with the default alphabet.
func New() *OneTimePad {
	otp, err := NewWithAlphabet(DefaultAlphabet)
	if err != nil {
		panic(err) // DefaultAlphabet is never empty.
	}

	return otp
}

// NewWithAlphabet creates a new OneTimePad instance with a custom alphabet.
func NewWithAlphabet(alphabet string) (*OneTimePad, error) {
	a, err := NewAlphabet(alphabet)
	if err != nil {
		return nil, err
	}

	return &OneTimePad{
		alphabet: a,
		source:   entropy.Source,
	}, nil
}

// Alphabet returns the alphabet in use.
func (otp *OneTimePad) Alphabet() *Alphabet {
	return otp.alphabet
}

// SetSource replaces the random index source used by GeneratePad.
func (otp *OneTimePad) SetSource(src Source) {
	otp.source = src
}

// PadLen returns the number of queued pad indices.
func (otp *OneTimePad) PadLen() int {
	return len(otp.padBuffer)
}

// PushToPad appends the alphabet indices of text to the end of the pad
// buffer, preserving order. If any character is not in the alphabet a
// ErrCharacterNotInAlphabet is returned and the buffer is left unmodified,
// so a partial push never occurs.
func (otp *OneTimePad) PushToPad(text string) error {
	// Resolve the whole input before touching the buffer.
	indices, err := otp.resolve(text)
	if err != nil {
		return err
	}

	otp.padBuffer = append(otp.padBuffer, indices...)

	return nil
}

// GeneratePad appends size random indices to the pad buffer, drawn from
// the configured Source. The generated pad is not guaranteed to be secure.
func (otp *OneTimePad) GeneratePad(size int) {
	for i := 0; i < size; i++ {
		otp.padBuffer = append(otp.padBuffer, otp.source.Intn(otp.alphabet.Len()))
	}
}

// ClearPad empties the pad buffer completely.
func (otp *OneTimePad) ClearPad() {
	otp.padBuffer = otp.padBuffer[:0]
}

// Encode encodes plain text to cipher text, consuming one pad index per
// input symbol.
//
// The following requirements must be met for this to succeed:
//   - The pad buffer must contain at least as many indices as the input
//     has symbols, otherwise a ErrPadBufferNotLongEnough is returned.
//   - Every input character must be in the alphabet, otherwise a
//     ErrCharacterNotInAlphabet is returned.
//
// In the event that an error is returned, the pad will not have been
// changed.
func (otp *OneTimePad) Encode(plainText string) (*EncodingResult, error) {
	indices, err := otp.resolveBounded(plainText)
	if err != nil {
		return nil, err
	}

	size := otp.alphabet.Len()

	var cipherText, pad strings.Builder
	for _, v := range indices {
		p := otp.popFront()

		c := v - p
		if c < 0 {
			c += size
		}

		cipherText.WriteRune(otp.alphabet.SymbolAt(c))
		pad.WriteRune(otp.alphabet.SymbolAt(p))
	}

	return &EncodingResult{
		CipherText: cipherText.String(),
		Pad:        pad.String(),
	}, nil
}

// Decode decodes cipher text back to plain text, consuming one pad index
// per input symbol. Decoding is the exact modular inverse of Encode: the
// cipher text produced by Encode, decoded against the pad it consumed,
// reproduces the original plain text.
//
// The requirements and the no-mutation-on-failure guarantee are the same
// as for Encode.
func (otp *OneTimePad) Decode(cipherText string) (string, error) {
	indices, err := otp.resolveBounded(cipherText)
	if err != nil {
		return "", err
	}

	size := otp.alphabet.Len()

	var plainText strings.Builder
	for _, v := range indices {
		p := otp.popFront()
		plainText.WriteRune(otp.alphabet.SymbolAt((v + p) % size))
	}

	return plainText.String(), nil
}

// resolve maps text to alphabet indices without mutating any state.
func (otp *OneTimePad) resolve(text string) ([]int, error) {
	indices := make([]int, 0, len(text))
	for _, ch := range text {
		idx, err := otp.alphabet.IndexOf(ch)
		if err != nil {
			return nil, err
		}

		indices = append(indices, idx)
	}

	return indices, nil
}

// resolveBounded checks the Encode/Decode preconditions, in order: the
// buffer length check first, then full input validation. The pad buffer
// is not consumed until both passes succeed.
func (otp *OneTimePad) resolveBounded(text string) ([]int, error) {
	if len(otp.padBuffer) < utf8.RuneCountInString(text) {
		return nil, ErrPadBufferNotLongEnough
	}

	return otp.resolve(text)
}

func (otp *OneTimePad) popFront() int {
	p := otp.padBuffer[0]
	otp.padBuffer = otp.padBuffer[1:]

	return p
}
