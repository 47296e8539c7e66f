package pprofserver

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const realm = "pprof"

// Config stores debug server settings.
type Config struct {
	Addr string
	User string
	Pass string
}

// Handler serves chi's profiler under /debug. Loopback clients are let
// through; everyone else needs basic auth, and without credentials
// configured nobody else gets in.
func Handler(cfg Config) http.Handler {
	r := chi.NewRouter()
	r.Use(localOrBasicAuth(cfg))
	r.Mount("/debug", chimw.Profiler())
	return r
}

// NewServer returns the debug server. WriteTimeout stays unset so CPU
// profiles and traces can run for their full duration.
func NewServer(cfg Config) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           Handler(cfg),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func localOrBasicAuth(cfg Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		remote := http.Handler(http.HandlerFunc(unauthorized))
		if cfg.User != "" && cfg.Pass != "" {
			remote = chimw.BasicAuth(realm, map[string]string{cfg.User: cfg.Pass})(next)
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isLoopback(r.RemoteAddr) {
				next.ServeHTTP(w, r)
				return
			}
			remote.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("WWW-Authenticate", `Basic realm="`+realm+`"`)
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}

func isLoopback(remoteAddr string) bool {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	ip := net.ParseIP(strings.TrimSpace(host))
	return ip != nil && ip.IsLoopback()
}
