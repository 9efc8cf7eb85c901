package update_draft_dates

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/vlkhvnn/PCM-PricingService/internal/api/middleware"
	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
	updateDates "github.com/vlkhvnn/PCM-PricingService/internal/usecase/update_draft_dates"
)

type fakeUseCase struct {
	lastReq *updateDates.Request
}

// Execute повторяет контракт usecase по отсутствующему списку дат:
// nil - ошибка запроса, пустой список допустим
func (f *fakeUseCase) Execute(_ context.Context, req *updateDates.Request) (*updateDates.Response, error) {
	f.lastReq = req
	if req.Dates == nil {
		return nil, fmt.Errorf("%w: dates list is required", updateDates.ErrInvalidInput)
	}
	return &updateDates.Response{Draft: &domain.Draft{DraftID: req.DraftID}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})
	r := mux.NewRouter()
	r.Handle("/api/v1/drafts/{draftId}/dates",
		middleware.Auth(http.HandlerFunc(h.Handle))).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/drafts/d-1/dates", strings.NewReader(body))
	req.Header.Set(middleware.UserIDHeader, "200")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleMissingDatesListRejected(t *testing.T) {
	t.Parallel()

	uc := &fakeUseCase{}
	rec := doRequest(t, uc, `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, uc.lastReq)
	require.Nil(t, uc.lastReq.Dates, "absent dates field must stay nil, not become an empty list")
}

func TestHandleNullDatesListRejected(t *testing.T) {
	t.Parallel()

	uc := &fakeUseCase{}
	rec := doRequest(t, uc, `{"dates": null}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Nil(t, uc.lastReq.Dates)
}

func TestHandleEmptyDatesListAccepted(t *testing.T) {
	t.Parallel()

	uc := &fakeUseCase{}
	rec := doRequest(t, uc, `{"dates": []}`)

	// Пустой список - осознанное снятие всех occurrences, не ошибка
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.lastReq.Dates)
	require.Empty(t, uc.lastReq.Dates)
}

func TestHandleConvertsRows(t *testing.T) {
	t.Parallel()

	uc := &fakeUseCase{}
	rec := doRequest(t, uc, `{"version": 3, "dates": [{"date": "2026-07-01", "startTime": "09:00", "endTime": "17:00"}]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, int64(3), uc.lastReq.Version)
	require.Equal(t, "d-1", uc.lastReq.DraftID)
	require.Equal(t, int64(200), uc.lastReq.UserID)
	require.Len(t, uc.lastReq.Dates, 1)
	require.Equal(t, "2026-07-01", uc.lastReq.Dates[0].Date)
}
