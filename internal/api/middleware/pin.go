package middleware

import (
	"net/http"

	"github.com/openplay/courtqueue/internal/api/apierr"
	"github.com/openplay/courtqueue/internal/services/auth"
)

// PINHeader carries the organizer PIN on gated requests
const PINHeader = "X-Session-Pin"

// PIN creates middleware requiring a valid organizer PIN. With no PIN
// configured on the service the gate is open.
func PIN(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := authService.VerifyPIN(r.Header.Get(PINHeader)); err != nil {
				apierr.WriteError(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
