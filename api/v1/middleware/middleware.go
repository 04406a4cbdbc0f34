package middleware

import (
	"io"
	"log"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// RequestLogger logs one line per request to w. The server passes stderr so
// stdout only carries the startup line.
func RequestLogger(w io.Writer) func(http.Handler) http.Handler {
	return chimw.RequestLogger(&chimw.DefaultLogFormatter{
		Logger:  log.New(w, "", log.LstdFlags),
		NoColor: true,
	})
}

// CORS allows simple cross-origin reads from the given origins.
func CORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})
}

// RateLimit caps each client IP at perMinute requests. A zero limit returns
// a pass-through middleware. The key is the TCP peer address; forwarding
// headers are not trusted, so they cannot be used to dodge the limit.
func RateLimit(perMinute int) func(http.Handler) http.Handler {
	if perMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.LimitByIP(perMinute, time.Minute)
}
