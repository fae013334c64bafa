package create_quote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Testforever-git/VMS-RentalService/internal/api/middleware"
	"github.com/Testforever-git/VMS-RentalService/internal/domain"
	createQuote "github.com/Testforever-git/VMS-RentalService/internal/usecase/create_quote"
)

type fakeUseCase struct {
	resp *createQuote.Response
	err  error

	gotReq *createQuote.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createQuote.Request) (*createQuote.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const requestBody = `{
	"vehicleId": 10,
	"startDate": "2026-04-01",
	"endDate": "2026-04-02",
	"pickup": {"method": "address", "address": "東京都中央区1-1", "lat": 35.7, "lng": 139.77},
	"dropoff": {"method": "store"},
	"serviceIds": [1]
}`

func doRequest(t *testing.T, uc CreateQuoteUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/rental-quotes", strings.NewReader(body))
	req.Header.Set(middleware.CustomerIDHeader, "77")
	rec := httptest.NewRecorder()

	// Handler читает ID клиента из контекста, заполняемого Auth middleware
	middleware.Auth(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{
		resp: &createQuote.Response{
			ID:         5,
			VehicleID:  10,
			CustomerID: 77,
			StartDate:  time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
			Pickup:     domain.DeliveryLeg{Method: domain.MethodAddress},
			Dropoff:    domain.DeliveryLeg{Method: domain.MethodStore},
			Snapshot:   domain.PriceSnapshot{RentalDays: 2, EstimatedTotal: 22000},
			Token:      domain.AccessToken("ab12"),
			Status:     "pending",
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}

	rec := doRequest(t, uc, requestBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/v1/rental-quotes/ab12", rec.Header().Get("Location"))
	assert.Contains(t, rec.Body.String(), `"accessToken":"ab12"`)

	// ID клиента берется из аутентификации, а не из тела запроса
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(77), uc.gotReq.CustomerID)
}

func TestHandle_UseCaseErrorsMapToStatuses(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{name: "missing dates", err: createQuote.ErrMissingDates, expectedStatus: http.StatusBadRequest},
		{name: "invalid delivery method", err: createQuote.ErrInvalidDeliveryMethod, expectedStatus: http.StatusBadRequest},
		{name: "vehicle not found", err: createQuote.ErrVehicleNotFound, expectedStatus: http.StatusNotFound},
		{name: "internal error", err: createQuote.ErrInternal, expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, requestBody)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"vehicleId": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UnknownFieldRejected(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"vehicleId": 10, "unknown": true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MalformedDate(t *testing.T) {
	body := strings.Replace(requestBody, "2026-04-01", "01.04.2026", 1)
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)
}
