package middleware

import (
	"net/http"
	"slices"
	"strconv"

	"github.com/tcf245/dabia/internal/config"
)

// CORS returns middleware that handles Cross-Origin Resource Sharing.
// An origin is allowed when it is in the list, the list contains "*", or it
// matches cfg.OriginPattern. OPTIONS requests are answered with 204.
func CORS(cfg config.CORSConfig) Middleware {
	origins := cfg.Origins()
	maxAge := strconv.Itoa(cfg.MaxAge)

	allowed := func(origin string) bool {
		if slices.Contains(origins, "*") || slices.Contains(origins, origin) {
			return true
		}
		return cfg.OriginPattern != nil && cfg.OriginPattern.MatchString(origin)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			if origin != "" && allowed(origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				if cfg.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				w.Header().Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
