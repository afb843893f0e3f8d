package predictor

import (
	"bufio"
	"dgaintel/pkg/domain"
	"fmt"
	"math"
	"os"
	"strconv"
)

// displayDecimals is the number of fractional digits kept in rounded output.
const displayDecimals = 5

// Output is the closed set of shapes a prediction can be returned as.
type Output interface {
	isOutput()
}

// Sentence is the human-readable verdict for one domain.
type Sentence string

// Sentences holds one Sentence per domain in input order.
type Sentences []string

// Probability is the DGA probability of a single domain.
type Probability float64

// DomainProbability pairs a domain with its rounded probability.
type DomainProbability struct {
	Domain      string  `json:"domain"`
	Probability float64 `json:"probability"`
}

// Pairs holds one DomainProbability per domain in input order.
type Pairs []DomainProbability

// Probabilities holds full-precision probabilities in input order.
type Probabilities []float64

func (Sentence) isOutput()      {}
func (Sentences) isOutput()     {}
func (Probability) isOutput()   {}
func (Pairs) isOutput()         {}
func (Probabilities) isOutput() {}

// Round rounds p to the display precision.
func Round(p float64) float64 {
	scale := math.Pow10(displayDecimals)

	return math.Round(p*scale) / scale
}

// Render formats a prediction as "<domain> is <verdict> with probability <p>"
// with p shown to five fractional digits.
func Render(p domain.Prediction) string {
	return fmt.Sprintf("%s is %s with probability %.*f", p.Domain, p.Verdict(), displayDecimals, p.Probability)
}

// RenderFull is Render with the shortest representation that round-trips p.
func RenderFull(p domain.Prediction) string {
	return p.Domain + " is " + p.Verdict() + " with probability " + strconv.FormatFloat(p.Probability, 'g', -1, 64)
}

func renderOutput(shape Shape, predictions []domain.Prediction) Output {
	if shape == ShapeSingle {
		return Sentence(Render(predictions[0]))
	}

	out := make(Sentences, len(predictions))
	for i, p := range predictions {
		out[i] = Render(p)
	}

	return out
}

func probabilityOutput(shape Shape, predictions []domain.Prediction, raw bool) Output {
	if shape == ShapeSingle {
		p := predictions[0].Probability
		if !raw {
			p = Round(p)
		}

		return Probability(p)
	}

	if raw {
		out := make(Probabilities, len(predictions))
		for i, p := range predictions {
			out[i] = p.Probability
		}

		return out
	}

	out := make(Pairs, len(predictions))
	for i, p := range predictions {
		out[i] = DomainProbability{Domain: p.Domain, Probability: Round(p.Probability)}
	}

	return out
}

// WriteSentences writes one full-precision sentence per prediction to path,
// truncating any existing file.
func WriteSentences(path string, predictions []domain.Prediction) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("could not close output file: %w", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, p := range predictions {
		if _, err := w.WriteString(RenderFull(p) + "\n"); err != nil {
			return fmt.Errorf("could not write output file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("could not write output file: %w", err)
	}

	return nil
}
