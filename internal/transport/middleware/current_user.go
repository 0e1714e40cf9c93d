package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/tcf245/dabia/pkg/ctxutil"
)

// DefaultUser attaches a fixed user id to every request. There is no
// authentication; all traffic is attributed to the configured user.
func DefaultUser(id uuid.UUID) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(ctxutil.WithUserID(r.Context(), id)))
		})
	}
}
