package tfserving

import (
	"dgaintel/pkg/encoder"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// EncodeInstances encodes batch as a row-format predict request body:
// {"instances": [[c0, c1, ...], ...]}.
func EncodeInstances(batch encoder.Batch) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("instances")
	e.ArrStart()
	for _, seq := range batch {
		e.ArrStart()
		for _, code := range seq {
			e.Int32(code)
		}
		e.ArrEnd()
	}
	e.ArrEnd()
	e.ObjEnd()

	return e.Bytes()
}

// DecodePredictions decodes a predict response. Each prediction is either a
// bare number or a single-element array, as emitted by a model with a
// one-unit sigmoid output.
func DecodePredictions(b []byte) ([]float64, error) {
	var (
		out      []float64
		found    bool
		errorMsg string
	)
	d := jx.DecodeBytes(b)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "predictions":
			found = true

			return d.Arr(func(d *jx.Decoder) error {
				p, err := decodeScore(d)
				if err != nil {
					return errors.Wrapf(err, "prediction %d", len(out))
				}
				out = append(out, p)

				return nil
			})
		case "error":
			s, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "error")
			}
			errorMsg = s

			return nil
		default:
			return d.Skip()
		}
	}); err != nil {
		return nil, err
	}
	if errorMsg != "" {
		return nil, errors.Errorf("model server: %s", errorMsg)
	}
	if !found {
		return nil, errors.New(`missing "predictions"`)
	}

	return out, nil
}

func decodeScore(d *jx.Decoder) (float64, error) {
	switch d.Next() {
	case jx.Number:
		return d.Float64()
	case jx.Array:
		var (
			p     float64
			count int
		)
		if err := d.Arr(func(d *jx.Decoder) error {
			count++
			if count > 1 {
				return d.Skip()
			}
			v, err := d.Float64()
			if err != nil {
				return err
			}
			p = v

			return nil
		}); err != nil {
			return 0, err
		}
		if count != 1 {
			return 0, errors.Errorf("expected one output unit, got %d", count)
		}

		return p, nil
	default:
		return 0, errors.Errorf("unexpected %s", d.Next())
	}
}

type versionStatus struct {
	version string
	state   string
}

// decodeStatus decodes the model_version_status list of a model status
// response.
func decodeStatus(b []byte) ([]versionStatus, error) {
	var out []versionStatus
	d := jx.DecodeBytes(b)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "model_version_status" {
			return d.Skip()
		}

		return d.Arr(func(d *jx.Decoder) error {
			var v versionStatus
			if err := d.Obj(func(d *jx.Decoder, key string) error {
				switch key {
				case "version":
					s, err := decodeVersion(d)
					if err != nil {
						return errors.Wrap(err, "version")
					}
					v.version = s

					return nil
				case "state":
					s, err := d.Str()
					if err != nil {
						return errors.Wrap(err, "state")
					}
					v.state = s

					return nil
				default:
					return d.Skip()
				}
			}); err != nil {
				return err
			}
			out = append(out, v)

			return nil
		})
	}); err != nil {
		return nil, err
	}

	return out, nil
}

// decodeVersion accepts both the string form emitted by TensorFlow Serving
// and a plain number.
func decodeVersion(d *jx.Decoder) (string, error) {
	if d.Next() == jx.Number {
		n, err := d.Int64()
		if err != nil {
			return "", err
		}

		return strconv.FormatInt(n, 10), nil
	}

	return d.Str()
}
