package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

func logMiddleware(logger Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(wrapped, r)
			logger.Debug(fmt.Sprintf("%s %s %d %s in %s", r.Method, r.URL.Path,
				wrapped.Status(), http.StatusText(wrapped.Status()),
				time.Since(start).Round(time.Millisecond)))
		})
	}
}
