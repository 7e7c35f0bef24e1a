package middleware

import (
	"net/http"
	"strings"

	"github.com/tuanvumaihuynh/hvac-catalog/pkg/correlationid"
)

const maxCorrelationIDLen = 128

// CorrelationID reuses the caller's correlation id header or mints one, echoes
// it on the response and stores it in the request context.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(correlationid.Header))
			if id == "" || len(id) > maxCorrelationIDLen {
				id = correlationid.New()
			}

			w.Header().Set(correlationid.Header, id)
			next.ServeHTTP(w, r.WithContext(correlationid.NewContext(r.Context(), id)))
		})
	}
}
