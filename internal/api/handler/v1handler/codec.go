package v1handler

import (
	"dgaintel/internal/predictor"
	"dgaintel/pkg/domain"
	"dgaintel/pkg/serrors"
	"io"
	"net/http"
	"time"

	"github.com/go-faster/jx"
)

// predictionRequest is the body of /v1/predictions and /v1/renderings.
type predictionRequest struct {
	Input predictor.Input
	Raw   bool
}

// jobRequest is the body of POST /v1/jobs.
type jobRequest struct {
	Domains []string
}

func readBody(r *http.Request) ([]byte, error) {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	if len(b) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "request body is empty")
	}

	return b, nil
}

func decodePredictionRequest(b []byte) (predictionRequest, error) {
	var (
		req      predictionRequest
		hasInput bool
	)
	if err := jx.DecodeBytes(b).Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "input":
			in, err := decodeInput(d)
			if err != nil {
				return err
			}
			req.Input = in
			hasInput = true
		case "raw":
			v, err := d.Bool()
			if err != nil {
				return err //nolint: wrapcheck
			}
			req.Raw = v
		default:
			return d.Skip() //nolint: wrapcheck
		}

		return nil
	}); err != nil {
		if serrors.KindOf(err) != nil {
			return predictionRequest{}, err
		}

		return predictionRequest{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}
	if !hasInput {
		return predictionRequest{}, serrors.With(serrors.ErrBadRequest, "input is required")
	}

	return req, nil
}

// decodeInput accepts a domain or an array of domains. File paths are never
// accepted over HTTP.
func decodeInput(d *jx.Decoder) (predictor.Input, error) {
	switch d.Next() {
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return predictor.Input{}, err //nolint: wrapcheck
		}

		return predictor.Single(s), nil
	case jx.Array:
		domains, err := decodeStrings(d)
		if err != nil {
			return predictor.Input{}, err
		}

		return predictor.Many(domains), nil
	default:
		if err := d.Skip(); err != nil {
			return predictor.Input{}, err //nolint: wrapcheck
		}

		return predictor.Input{}, serrors.With(serrors.ErrInvalidInputKind,
			"input must be a domain or a list of domains")
	}
}

func decodeStrings(d *jx.Decoder) ([]string, error) {
	out := []string{}
	if err := d.Arr(func(d *jx.Decoder) error {
		if d.Next() != jx.String {
			if err := d.Skip(); err != nil {
				return err //nolint: wrapcheck
			}

			return serrors.With(serrors.ErrInvalidInputKind, "list items must be strings")
		}
		s, err := d.Str()
		if err != nil {
			return err //nolint: wrapcheck
		}
		out = append(out, s)

		return nil
	}); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return out, nil
}

func decodeJobRequest(b []byte) (jobRequest, error) {
	var req jobRequest
	if err := jx.DecodeBytes(b).Obj(func(d *jx.Decoder, key string) error {
		if key != "domains" {
			return d.Skip() //nolint: wrapcheck
		}
		if d.Next() != jx.Array {
			return serrors.With(serrors.ErrBadRequest, "domains must be an array of strings")
		}
		domains, err := decodeStrings(d)
		if err != nil {
			return err
		}
		req.Domains = domains

		return nil
	}); err != nil {
		if serrors.KindOf(err) != nil {
			return jobRequest{}, err
		}

		return jobRequest{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return req, nil
}

func encodeResult(out predictor.Output) []byte {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.Obj(func(e *jx.Encoder) {
		e.Field("result", func(e *jx.Encoder) {
			encodeOutput(e, out)
		})
	})

	return append([]byte(nil), e.Bytes()...)
}

func encodeOutput(e *jx.Encoder, out predictor.Output) {
	switch v := out.(type) {
	case predictor.Sentence:
		e.Str(string(v))
	case predictor.Sentences:
		e.Arr(func(e *jx.Encoder) {
			for _, s := range v {
				e.Str(s)
			}
		})
	case predictor.Probability:
		e.Float64(float64(v))
	case predictor.Probabilities:
		e.Arr(func(e *jx.Encoder) {
			for _, p := range v {
				e.Float64(p)
			}
		})
	case predictor.Pairs:
		e.Arr(func(e *jx.Encoder) {
			for _, p := range v {
				e.Obj(func(e *jx.Encoder) {
					e.Field("domain", func(e *jx.Encoder) { e.Str(p.Domain) })
					e.Field("probability", func(e *jx.Encoder) { e.Float64(p.Probability) })
				})
			}
		})
	default:
		e.Null()
	}
}

func encodeJob(e *jx.Encoder, job *domain.Job) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(job.ID.String()) })
		e.Field("status", func(e *jx.Encoder) { e.Str(string(job.Status)) })
		e.Field("domains", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, d := range job.Domains {
					e.Str(d)
				}
			})
		})
		e.Field("predictions", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, p := range job.Predictions {
					e.Obj(func(e *jx.Encoder) {
						e.Field("domain", func(e *jx.Encoder) { e.Str(p.Domain) })
						e.Field("probability", func(e *jx.Encoder) { e.Float64(p.Probability) })
						e.Field("verdict", func(e *jx.Encoder) { e.Str(p.Verdict()) })
					})
				}
			})
		})
		e.Field("attempts", func(e *jx.Encoder) { e.UInt(job.Attempts) })
		if job.LastError != "" {
			e.Field("lastError", func(e *jx.Encoder) { e.Str(job.LastError) })
		}
		e.Field("createdAt", func(e *jx.Encoder) { e.Str(job.CreatedAt.Format(time.RFC3339Nano)) })
		if !job.UpdatedAt.IsZero() {
			e.Field("updatedAt", func(e *jx.Encoder) { e.Str(job.UpdatedAt.Format(time.RFC3339Nano)) })
		}
	})
}

func encodeJobBody(job *domain.Job) []byte {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	encodeJob(e, job)

	return append([]byte(nil), e.Bytes()...)
}

func encodeJobList(jobs []domain.Job, nextCursor string) []byte {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.Obj(func(e *jx.Encoder) {
		e.Field("items", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for i := range jobs {
					encodeJob(e, &jobs[i])
				}
			})
		})
		e.Field("nextCursor", func(e *jx.Encoder) {
			if nextCursor == "" {
				e.Null()

				return
			}
			e.Str(nextCursor)
		})
	})

	return append([]byte(nil), e.Bytes()...)
}

func encodeError(res Error) []byte {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.Obj(func(e *jx.Encoder) {
		e.Field("code", func(e *jx.Encoder) { e.Str(res.Code) })
		e.Field("message", func(e *jx.Encoder) { e.Str(res.Message) })
	})

	return append([]byte(nil), e.Bytes()...)
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
