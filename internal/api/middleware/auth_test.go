package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedID     int64
	}{
		{name: "valid customer id", header: "77", expectedStatus: http.StatusOK, expectedID: 77},
		{name: "missing header", header: "", expectedStatus: http.StatusUnauthorized},
		{name: "non-numeric id", header: "abc", expectedStatus: http.StatusUnauthorized},
		{name: "zero id", header: "0", expectedStatus: http.StatusUnauthorized},
		{name: "negative id", header: "-5", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID int64
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, ok := GetCustomerID(r.Context())
				require.True(t, ok)
				gotID = id
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/rental-quotes", nil)
			if tt.header != "" {
				req.Header.Set(CustomerIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			Auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedID, gotID)
			}
		})
	}
}

func TestGetCustomerID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := GetCustomerID(req.Context())
	assert.False(t, ok)
}
