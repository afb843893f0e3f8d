// Package tfserving provides an inference.Classifier backed by the REST API
// of a TensorFlow Serving instance hosting the pretrained DGA model.
package tfserving

import (
	"bytes"
	"context"
	"dgaintel/pkg/encoder"
	"dgaintel/pkg/inference"
	"dgaintel/pkg/logger"
	"dgaintel/pkg/serrors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

// stateAvailable is the model version state reported once a version is ready
// to serve requests.
const stateAvailable = "AVAILABLE"

// maxResponseBytes bounds a model server response. A predict response for a
// large batch is a few bytes per domain, so this leaves ample headroom.
const maxResponseBytes = 64 << 20

// Options configure a Client.
type Options struct {
	// BaseURL is the REST endpoint of the model server, e.g. http://localhost:8501.
	BaseURL string
	// ModelName is the served model name.
	ModelName string
	// Version pins a model version. Zero uses the latest version.
	Version int64
	// Timeout bounds every request. Zero disables the client-side timeout.
	Timeout time.Duration
	// HTTPClient overrides the default HTTP client. Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client scores encoded domains with a model hosted on TensorFlow Serving. It
// is safe for concurrent use once loaded.
type Client struct {
	httpClient *http.Client
	modelURL   string
	modelName  string
	version    int64
	loaded     atomic.Bool
}

var _ inference.Classifier = (*Client)(nil)

// New validates options and constructs a Client. The model is not contacted
// until Load is called.
func New(options Options) (*Client, error) {
	if options.ModelName == "" {
		return nil, errors.New("model name is required")
	}
	base, err := url.Parse(strings.TrimRight(options.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse base URL")
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, errors.Errorf("unsupported base URL scheme %q", base.Scheme)
	}

	httpClient := options.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.Timeout}
	}

	modelURL := base.String() + "/v1/models/" + url.PathEscape(options.ModelName)
	if options.Version > 0 {
		modelURL += "/versions/" + strconv.FormatInt(options.Version, 10)
	}

	return &Client{
		httpClient: httpClient,
		modelURL:   modelURL,
		modelName:  options.ModelName,
		version:    options.Version,
	}, nil
}

// Load creates a Client and checks once that the model has a version in the
// AVAILABLE state. It fails with serrors.ErrModelUnavailable otherwise.
func Load(ctx context.Context, options Options) (*Client, error) {
	c, err := New(options)
	if err != nil {
		return nil, err
	}
	if err := c.Load(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

// Load queries the model status endpoint and marks the client ready when a
// served version is AVAILABLE.
func (c *Client) Load(ctx context.Context) error {
	// https://www.tensorflow.org/tfx/serving/api_rest#model_status_api
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.modelURL, nil)
	if err != nil {
		return errors.Wrap(err, "create request")
	}

	body, status, err := c.do(req)
	if err != nil {
		return serrors.Wrap(serrors.ErrModelUnavailable, err, "model %q is unreachable", c.modelName)
	}
	if status == http.StatusNotFound {
		return serrors.With(serrors.ErrModelUnavailable, "model %q not found: %s", c.modelName, body)
	}
	if status < 200 || status >= 300 {
		return serrors.With(serrors.ErrModelUnavailable, "model status failed: %s", body)
	}

	versions, err := decodeStatus(body)
	if err != nil {
		return errors.Wrap(err, "decode model status")
	}
	for _, v := range versions {
		if v.state == stateAvailable {
			c.loaded.Store(true)
			logger.Info(ctx, "model loaded",
				zap.String("model", c.modelName),
				zap.String("version", v.version))

			return nil
		}
	}

	return serrors.With(serrors.ErrModelUnavailable, "model %q has no available version", c.modelName)
}

// Infer submits the whole batch in one predict request and returns one
// probability per sequence in input order.
func (c *Client) Infer(ctx context.Context, batch encoder.Batch) ([]float64, error) {
	if !c.loaded.Load() {
		return nil, serrors.With(serrors.ErrModelUnavailable, "model %q is not loaded", c.modelName)
	}

	// https://www.tensorflow.org/tfx/serving/api_rest#predict_api
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.modelURL+":predict",
		bytes.NewReader(EncodeInstances(batch)))
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")

	body, status, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, serrors.With(serrors.ErrModelUnavailable, "model %q not found: %s", c.modelName, body)
	}
	if status < 200 || status >= 300 {
		return nil, errors.Errorf("predict failed with status %d: %s", status, body)
	}

	out, err := DecodePredictions(body)
	if err != nil {
		return nil, errors.Wrap(err, "decode predictions")
	}
	if len(out) != len(batch) {
		return nil, errors.Errorf("got %d predictions for %d instances", len(out), len(batch))
	}

	return out, nil
}

func (c *Client) do(req *http.Request) ([]byte, int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, errors.Wrap(err, "send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, resp.StatusCode, errors.Wrap(err, "read response body")
	}
	if len(b) > maxResponseBytes {
		return nil, resp.StatusCode, errors.Errorf("response body exceeds %d bytes", maxResponseBytes)
	}

	return bytes.TrimSpace(b), resp.StatusCode, nil
}
