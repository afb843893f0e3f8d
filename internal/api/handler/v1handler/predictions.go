package v1handler

import (
	"dgaintel/internal/predictor"
	"dgaintel/pkg/serrors"
	"net/http"
)

// CreatePrediction classifies the request input and returns probabilities:
// a number for a single domain, domain/probability pairs for a list, or bare
// probabilities when raw is set.
func (h *Handler) CreatePrediction(w http.ResponseWriter, r *http.Request) {
	req, err := h.predictionRequest(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	out, err := h.deps.Predictor.PredictProbability(r.Context(), req.Input, predictor.ProbabilityOptions{
		Raw: req.Raw,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, encodeResult(out))
}

// CreateRendering classifies the request input and returns one sentence per
// domain.
func (h *Handler) CreateRendering(w http.ResponseWriter, r *http.Request) {
	req, err := h.predictionRequest(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	out, err := h.deps.Predictor.PredictAndRender(r.Context(), req.Input, predictor.RenderOptions{})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, encodeResult(out))
}

func (h *Handler) predictionRequest(r *http.Request) (predictionRequest, error) {
	if h.deps.Predictor == nil {
		return predictionRequest{}, serrors.With(serrors.ErrModelUnavailable, "predictor is not configured")
	}

	b, err := readBody(r)
	if err != nil {
		return predictionRequest{}, err
	}

	return decodePredictionRequest(b)
}
