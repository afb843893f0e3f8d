package domain

// Threshold is the probability at or above which a domain is considered
// algorithmically generated. It is fixed and not configurable.
const Threshold = 0.5

// Prediction pairs a domain with the probability, emitted by the classifier,
// that it was produced by a domain generation algorithm.
type Prediction struct {
	// Domain is the domain string exactly as supplied by the caller.
	Domain string `json:"domain"`
	// Probability is the classifier output in [0, 1].
	Probability float64 `json:"probability"`
	// DGA is true when Probability >= Threshold.
	DGA bool `json:"dga"`
}

// NewPrediction builds a Prediction applying the fixed decision threshold.
func NewPrediction(domain string, probability float64) Prediction {
	return Prediction{
		Domain:      domain,
		Probability: probability,
		DGA:         IsDGA(probability),
	}
}

// IsDGA applies the decision threshold to p.
func IsDGA(p float64) bool {
	return p >= Threshold
}

// Verdict returns the human-readable label for the prediction.
func (p Prediction) Verdict() string {
	if p.DGA {
		return "DGA"
	}

	return "genuine"
}
