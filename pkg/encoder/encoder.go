package encoder

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultLength is the sequence length the reference model was trained with.
const DefaultLength = 82

// Padding selects on which side short sequences are filled with ReservedCode.
// It must match the preprocessing used at training time.
type Padding string

const (
	// PadLeft places padding before the characters (Keras "pre" padding).
	PadLeft Padding = "left"
	// PadRight places padding after the characters.
	PadRight Padding = "right"
)

// ErrInvalidLength is returned for non-positive sequence lengths.
var ErrInvalidLength = errors.New("sequence length must be positive")

// ParsePadding converts a configuration value to a Padding. An empty value
// selects PadLeft.
func ParsePadding(s string) (Padding, error) {
	switch p := Padding(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PadLeft, nil
	case PadLeft, PadRight:
		return p, nil
	default:
		return "", fmt.Errorf("unknown padding %q", s)
	}
}

// Sequence is the fixed-length encoding of one domain.
type Sequence []int32

// Batch is an ordered collection of sequences, index-aligned with the domains
// it was built from. All sequences have the same length.
type Batch []Sequence

// Len returns the common length of the batch's sequences, or 0 for an empty
// batch.
func (b Batch) Len() int {
	if len(b) == 0 {
		return 0
	}

	return len(b[0])
}

// Rectangular reports whether every sequence has the same length.
func (b Batch) Rectangular() bool {
	for i := range b {
		if len(b[i]) != len(b[0]) {
			return false
		}
	}

	return true
}

// Encoder maps domains to fixed-length sequences. It holds no mutable state
// and is safe for concurrent use.
type Encoder struct {
	vocab   *Vocabulary
	length  int
	padding Padding
}

// New creates an Encoder producing sequences of exactly length codes.
func New(vocab *Vocabulary, length int, padding Padding) (*Encoder, error) {
	if vocab == nil {
		return nil, errors.New("vocabulary is required")
	}
	if length <= 0 {
		return nil, ErrInvalidLength
	}
	if padding != PadLeft && padding != PadRight {
		return nil, fmt.Errorf("unknown padding %q", padding)
	}

	return &Encoder{vocab: vocab, length: length, padding: padding}, nil
}

// Length returns the fixed sequence length.
func (e *Encoder) Length() int {
	return e.length
}

// Encode lowercases domain, keeps its first Length() characters and maps each
// of them through the vocabulary. Unknown characters map to ReservedCode and
// short domains are padded with it. Any input, including the empty string,
// yields a sequence of exactly Length() codes.
func (e *Encoder) Encode(domain string) Sequence {
	codes := make([]int32, 0, e.length)
	for _, r := range strings.ToLower(domain) {
		if len(codes) == e.length {
			break
		}
		codes = append(codes, e.vocab.Code(r))
	}

	seq := make(Sequence, e.length)
	offset := 0
	if e.padding == PadLeft {
		offset = e.length - len(codes)
	}
	copy(seq[offset:], codes)

	return seq
}

// EncodeAll encodes every domain, preserving order and duplicates.
func (e *Encoder) EncodeAll(domains []string) Batch {
	batch := make(Batch, len(domains))
	for i, d := range domains {
		batch[i] = e.Encode(d)
	}

	return batch
}
