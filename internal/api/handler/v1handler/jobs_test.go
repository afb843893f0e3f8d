package v1handler_test

import (
	"dgaintel/internal/api/handler/v1handler"
	mockjobs "dgaintel/internal/jobs/mock"
	"dgaintel/pkg/domain"
	"dgaintel/pkg/serrors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newJobsServer(t *testing.T) (*mockjobs.MockService, *httptest.Server) {
	t.Helper()

	ctrl := gomock.NewController(t)
	s := mockjobs.NewMockService(ctrl)

	mux := http.NewServeMux()
	v1handler.New(v1handler.Deps{Jobs: s}).Register(mux, nil)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return s, srv
}

func do(t *testing.T, method, url string) (int, string) {
	t.Helper()

	req, err := http.NewRequest(method, url, nil) //nolint: noctx
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	var sb strings.Builder
	_, err = sb.ReadFrom(res.Body)
	require.NoError(t, err)

	return res.StatusCode, sb.String()
}

func TestCreateJob(t *testing.T) {
	s, srv := newJobsServer(t)
	id := domain.NewJobID()
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	s.EXPECT().Submit(gomock.Any(), "", []string{"microsoft.com", "vlurgpeddygdy.com"}).Return(&domain.Job{
		ID:        id,
		Status:    domain.JobStatusPending,
		Domains:   []string{"microsoft.com", "vlurgpeddygdy.com"},
		CreatedAt: created,
	}, nil)

	status, body := post(t, srv.URL+"/v1/jobs", `{"domains":["microsoft.com","vlurgpeddygdy.com"]}`)
	require.Equal(t, http.StatusAccepted, status)
	require.JSONEq(t, `{"id":"`+id.String()+`","status":"PENDING",
		"domains":["microsoft.com","vlurgpeddygdy.com"],"predictions":[],"attempts":0,
		"createdAt":"2025-03-01T10:00:00Z_0a4f7a0e-3c1b-4f55-9d7a-2d6f3b1b0c11"}`, body)

	status, body = post(t, srv.URL+"/v1/jobs", `{"domains":"microsoft.com"}`)
	require.Equal(t, http.StatusBadRequest, status)
	require.Contains(t, body, "BAD_REQUEST")
}

func TestGetJob(t *testing.T) {
	s, srv := newJobsServer(t)
	id := domain.NewJobID()

	s.EXPECT().Get(gomock.Any(), "", id).Return(&domain.Job{
		ID:          id,
		Status:      domain.JobStatusCompleted,
		Domains:     []string{"vlurgpeddygdy.com"},
		Predictions: []domain.Prediction{domain.NewPrediction("vlurgpeddygdy.com", 0.97612)},
		Attempts:    1,
	}, nil)
	status, body := do(t, http.MethodGet, srv.URL+"/v1/jobs/"+id.String())
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, `{"domain":"vlurgpeddygdy.com","probability":0.97612,"verdict":"DGA"}`)

	s.EXPECT().Get(gomock.Any(), "", id).Return(nil, serrors.With(serrors.ErrNotFound, "job not found"))
	status, _ = do(t, http.MethodGet, srv.URL+"/v1/jobs/"+id.String())
	require.Equal(t, http.StatusNotFound, status)

	status, _ = do(t, http.MethodGet, srv.URL+"/v1/jobs/not-a-uuid")
	require.Equal(t, http.StatusBadRequest, status)
}

func TestListJobs(t *testing.T) {
	s, srv := newJobsServer(t)
	const cursor = "2025-03-01T10:00:00Z_0a4f7a0e-3c1b-4f55-9d7a-2d6f3b1b0c11"

	s.EXPECT().List(gomock.Any(), "", "", uint(v1handler.DefaultLimit)).
		Return([]domain.Job{{ID: domain.NewJobID(), Status: domain.JobStatusPending}}, cursor, nil)
	status, body := do(t, http.MethodGet, srv.URL+"/v1/jobs")
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, `"nextCursor":"`+cursor+`"`)

	s.EXPECT().List(gomock.Any(), "", cursor, uint(5)).Return(nil, "", nil)
	status, body = do(t, http.MethodGet, srv.URL+"/v1/jobs?limit=5&cursor="+cursor)
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"items":[],"nextCursor":null}`, body)

	status, _ = do(t, http.MethodGet, srv.URL+"/v1/jobs?limit=1000")
	require.Equal(t, http.StatusBadRequest, status)
}

func TestDeleteJob(t *testing.T) {
	s, srv := newJobsServer(t)
	id := domain.NewJobID()

	s.EXPECT().Delete(gomock.Any(), "", id).Return(nil)
	status, _ := do(t, http.MethodDelete, srv.URL+"/v1/jobs/"+id.String())
	require.Equal(t, http.StatusNoContent, status)

	s.EXPECT().Delete(gomock.Any(), "", id).Return(serrors.KindOnly(serrors.ErrNotFound))
	status, _ = do(t, http.MethodDelete, srv.URL+"/v1/jobs/"+id.String())
	require.Equal(t, http.StatusNotFound, status)
}
