// Package encoder turns domain strings into fixed-length integer sequences
// understood by the DGA classifier.
//
// The vocabulary must be identical to the one used when the classifier was
// trained. A mismatch does not fail; it silently corrupts every prediction.
package encoder

import (
	"errors"
	"fmt"
	"unicode"
)

// ReservedCode is used both for characters outside the vocabulary and for
// padding short sequences.
const ReservedCode int32 = 0

// DefaultAlphabet lists the characters known to the reference model, in code
// order: the character at index i is encoded as i+1.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789-._"

// ErrInvalidAlphabet is returned when an alphabet cannot form a vocabulary.
var ErrInvalidAlphabet = errors.New("invalid alphabet")

// Vocabulary is an immutable mapping from characters to integer codes. It is
// safe for concurrent use.
type Vocabulary struct {
	codes    map[rune]int32
	alphabet string
}

// NewVocabulary builds a vocabulary from alphabet. The character at index i
// maps to code i+1; code 0 is reserved. Empty alphabets and duplicate or
// upper-case characters are rejected since encoding lowercases its input.
func NewVocabulary(alphabet string) (*Vocabulary, error) {
	if alphabet == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidAlphabet)
	}

	codes := make(map[rune]int32, len(alphabet))
	code := ReservedCode
	for _, r := range alphabet {
		if _, ok := codes[r]; ok {
			return nil, fmt.Errorf("%w: duplicate character %q", ErrInvalidAlphabet, r)
		}
		if unicode.ToLower(r) != r {
			return nil, fmt.Errorf("%w: upper-case character %q", ErrInvalidAlphabet, r)
		}
		code++
		codes[r] = code
	}

	return &Vocabulary{codes: codes, alphabet: alphabet}, nil
}

// DefaultVocabulary returns the vocabulary of the reference model.
func DefaultVocabulary() *Vocabulary {
	v, err := NewVocabulary(DefaultAlphabet)
	if err != nil {
		panic(err)
	}

	return v
}

// Code returns the code for r, or ReservedCode when r is unknown.
func (v *Vocabulary) Code(r rune) int32 {
	if c, ok := v.codes[r]; ok {
		return c
	}

	return ReservedCode
}

// Size returns the number of distinct codes including the reserved one.
func (v *Vocabulary) Size() int {
	return len(v.codes) + 1
}

// Alphabet returns the alphabet the vocabulary was built from.
func (v *Vocabulary) Alphabet() string {
	return v.alphabet
}
