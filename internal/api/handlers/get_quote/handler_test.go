package get_quote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/Testforever-git/VMS-RentalService/internal/service/bookings"
	"github.com/Testforever-git/VMS-RentalService/internal/service/bookings/models"
)

type fakeService struct {
	byToken map[string]*models.BookingResponse
}

func (f *fakeService) GetByToken(_ context.Context, token string) (*models.BookingResponse, error) {
	b, ok := f.byToken[token]
	if !ok {
		return nil, bookings.ErrBookingNotFound
	}
	return b, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, svc BookingsService, token string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(svc, nopLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/rental-quotes/{token}", handler.Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rental-quotes/"+token, nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_FoundByToken(t *testing.T) {
	svc := &fakeService{
		byToken: map[string]*models.BookingResponse{
			"ab12": {ID: 5, Token: "ab12", Status: "pending"},
		},
	}

	rec := doRequest(t, svc, "ab12")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
}

func TestHandle_FabricatedTokenNotFound(t *testing.T) {
	rec := doRequest(t, &fakeService{}, "deadbeef")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
