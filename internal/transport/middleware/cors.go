package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/heartmarshall/promptcycle-backend/internal/config"
)

// exposedHeaders are readable by browser clients on every response.
var exposedHeaders = strings.Join([]string{RequestIDHeader, "Retry-After"}, ", ")

type corsPolicy struct {
	origins  []string
	wildcard bool
	cfg      config.CORSConfig
}

func newCORSPolicy(cfg config.CORSConfig) corsPolicy {
	p := corsPolicy{cfg: cfg}
	for _, o := range strings.Split(cfg.AllowedOrigins, ",") {
		switch o = strings.TrimSpace(o); o {
		case "":
		case "*":
			p.wildcard = true
		default:
			p.origins = append(p.origins, o)
		}
	}
	return p
}

// allow reports whether origin may read responses and whether it may send
// credentials. Credentials are only granted to explicitly listed origins.
func (p corsPolicy) allow(origin string) (allowed, credentials bool) {
	if slices.Contains(p.origins, origin) {
		return true, p.cfg.AllowCredentials
	}
	return p.wildcard, false
}

// CORS answers browser preflights and marks allowed origins on every
// response. Requests from other origins still reach the handler; the
// browser enforces the policy.
func CORS(cfg config.CORSConfig) Middleware {
	policy := newCORSPolicy(cfg)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			if origin != "" {
				if ok, creds := policy.allow(origin); ok {
					h.Set("Access-Control-Allow-Origin", origin)
					h.Set("Access-Control-Expose-Headers", exposedHeaders)
					if creds {
						h.Set("Access-Control-Allow-Credentials", "true")
					}
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
