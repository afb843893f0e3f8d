package v1handler_test

import (
	"dgaintel/internal/api/handler/v1handler"
	"dgaintel/internal/predictor"
	mockpredictor "dgaintel/internal/predictor/mock"
	"dgaintel/pkg/serrors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPredictionServer(t *testing.T) (*mockpredictor.MockPredictor, *httptest.Server) {
	t.Helper()

	ctrl := gomock.NewController(t)
	p := mockpredictor.NewMockPredictor(ctrl)

	mux := http.NewServeMux()
	v1handler.New(v1handler.Deps{Predictor: p}).Register(mux, nil)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return p, srv
}

func post(t *testing.T, url, body string) (int, string) {
	t.Helper()

	res, err := http.Post(url, "application/json", strings.NewReader(body)) //nolint: noctx
	require.NoError(t, err)
	defer res.Body.Close()

	var sb strings.Builder
	_, err = sb.ReadFrom(res.Body)
	require.NoError(t, err)

	return res.StatusCode, sb.String()
}

func TestCreatePrediction_Single(t *testing.T) {
	p, srv := newPredictionServer(t)

	p.EXPECT().PredictProbability(gomock.Any(), predictor.Single("microsoft.com"), predictor.ProbabilityOptions{}).
		Return(predictor.Probability(0.0005), nil)

	status, body := post(t, srv.URL+"/v1/predictions", `{"input":"microsoft.com"}`)
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"result":0.0005}`, body)
}

func TestCreatePrediction_ListPairsAndRaw(t *testing.T) {
	p, srv := newPredictionServer(t)
	domains := []string{"microsoft.com", "vlurgpeddygdy.com"}

	p.EXPECT().PredictProbability(gomock.Any(), predictor.Many(domains), predictor.ProbabilityOptions{}).
		Return(predictor.Pairs{
			{Domain: "microsoft.com", Probability: 0.0005},
			{Domain: "vlurgpeddygdy.com", Probability: 0.97612},
		}, nil)
	status, body := post(t, srv.URL+"/v1/predictions", `{"input":["microsoft.com","vlurgpeddygdy.com"],"extra":1}`)
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"result":[
		{"domain":"microsoft.com","probability":0.0005},
		{"domain":"vlurgpeddygdy.com","probability":0.97612}]}`, body)

	p.EXPECT().PredictProbability(gomock.Any(), predictor.Many(domains), predictor.ProbabilityOptions{Raw: true}).
		Return(predictor.Probabilities{0.000503, 0.97612}, nil)
	status, body = post(t, srv.URL+"/v1/predictions", `{"raw":true,"input":["microsoft.com","vlurgpeddygdy.com"]}`)
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"result":[0.000503,0.97612]}`, body)
}

func TestCreatePrediction_InvalidInput(t *testing.T) {
	_, srv := newPredictionServer(t)

	tests := []struct {
		body string
		code string
	}{
		{`{"input":42}`, "INVALID_INPUT_KIND"},
		{`{"input":{"path":"/etc/hosts"}}`, "INVALID_INPUT_KIND"},
		{`{"input":["a.com",1]}`, "INVALID_INPUT_KIND"},
		{`{"raw":true}`, "BAD_REQUEST"},
		{`not json`, "BAD_REQUEST"},
		{``, "BAD_REQUEST"},
	}
	for _, tt := range tests {
		status, body := post(t, srv.URL+"/v1/predictions", tt.body)
		require.Equal(t, http.StatusBadRequest, status, tt.body)
		require.Contains(t, body, `"code":"`+tt.code+`"`, tt.body)
	}
}

func TestCreatePrediction_PredictorErrors(t *testing.T) {
	p, srv := newPredictionServer(t)

	p.EXPECT().PredictProbability(gomock.Any(), predictor.Many([]string{}), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrEmptyBatch, "no domains to classify"))
	status, body := post(t, srv.URL+"/v1/predictions", `{"input":[]}`)
	require.Equal(t, http.StatusBadRequest, status)
	require.JSONEq(t, `{"code":"EMPTY_BATCH","message":"no domains to classify"}`, body)

	p.EXPECT().PredictProbability(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrModelUnavailable, "classifier is not loaded"))
	status, _ = post(t, srv.URL+"/v1/predictions", `{"input":"a.com"}`)
	require.Equal(t, http.StatusServiceUnavailable, status)
}

func TestCreateRendering(t *testing.T) {
	p, srv := newPredictionServer(t)

	p.EXPECT().PredictAndRender(gomock.Any(), predictor.Single("microsoft.com"), predictor.RenderOptions{}).
		Return(predictor.Sentence("microsoft.com is genuine with probability 0.00050"), nil)
	status, body := post(t, srv.URL+"/v1/renderings", `{"input":"microsoft.com"}`)
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"result":"microsoft.com is genuine with probability 0.00050"}`, body)

	p.EXPECT().PredictAndRender(gomock.Any(), predictor.Many([]string{"vlurgpeddygdy.com"}), predictor.RenderOptions{}).
		Return(predictor.Sentences{"vlurgpeddygdy.com is DGA with probability 0.97612"}, nil)
	status, body = post(t, srv.URL+"/v1/renderings", `{"input":["vlurgpeddygdy.com"]}`)
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"result":["vlurgpeddygdy.com is DGA with probability 0.97612"]}`, body)
}

func TestCreatePrediction_NoPredictor(t *testing.T) {
	mux := http.NewServeMux()
	v1handler.New(v1handler.Deps{}).Register(mux, nil)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	status, _ := post(t, srv.URL+"/v1/predictions", `{"input":"a.com"}`)
	require.Equal(t, http.StatusServiceUnavailable, status)

	// job routes are not mounted without a jobs service
	status, _ = post(t, srv.URL+"/v1/jobs", `{"domains":["a.com"]}`)
	require.Equal(t, http.StatusNotFound, status)
}
