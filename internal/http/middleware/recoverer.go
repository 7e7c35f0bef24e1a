package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/tuanvumaihuynh/hvac-catalog/internal/http/apierr"
)

// Recoverer turns a handler panic into a 500 carrying the generic internal
// error body. The panic value and stack only reach the log.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func Recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	body, err := json.Marshal(apierr.InternalServerErr)
	if err != nil {
		panic(err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if err, ok := rvr.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rvr)
				}

				log.ErrorContext(r.Context(), "handler panicked",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Any("recover", rvr),
					slog.String("stack", string(debug.Stack())),
				)

				if r.Header.Get("Connection") == "Upgrade" {
					return
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(apierr.InternalServerErr.StatusCode)
				//nolint:errcheck
				w.Write(body)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
