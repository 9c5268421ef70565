package middleware

import (
	"net/http"

	"github.com/chandru-wp/portfolio-server/internal/config"
)

// CORS applies the fixed origin allow-list. Matching origins get the full
// set of allow headers on every response; unlisted origins get none, which
// leaves enforcement to the browser. Requests without an Origin header
// (curl, server-to-server) pass through untouched. OPTIONS always
// short-circuits with 200, matched or not.
func CORS(next http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(config.Envs.AllowedOrigins))
	for _, o := range config.Envs.AllowedOrigins {
		allowed[o] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			if _, ok := allowed[origin]; ok {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
				h.Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
