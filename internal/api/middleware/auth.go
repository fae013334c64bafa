// Package middleware HTTP middleware сервиса
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Testforever-git/VMS-RentalService/internal/api/handlers"
)

type contextKey string

const customerIDKey contextKey = "customerID"

// CustomerIDHeader заголовок с ID аутентифицированного клиента
// Заполняется внешним шлюзом после проверки сессии
const CustomerIDHeader = "X-Customer-ID"

// Auth требует валидный X-Customer-ID и кладет его в контекст запроса
// Публичные маршруты (выдача квоты по токену, данные формы) этим middleware
// не защищаются: там авторизацией служит сам capability token
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(CustomerIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок "+CustomerIDHeader)
			return
		}

		customerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || customerID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный "+CustomerIDHeader)
			return
		}

		ctx := context.WithValue(r.Context(), customerIDKey, customerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetCustomerID извлекает ID клиента из контекста запроса
func GetCustomerID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(customerIDKey).(int64)
	return id, ok
}
