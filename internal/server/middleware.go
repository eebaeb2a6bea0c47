package server

import (
	"net/http"
	"time"

	"github.com/admpub/log"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/medama-io/go-useragent"
)

var ua = useragent.NewParser()

// accessLog logs each request with its status, duration and the client's
// browser and OS.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			agent := ua.Parse(r.UserAgent())
			log.Infof(`%s %s %d %s (%s/%s)`, r.Method, r.URL.RequestURI(), ww.Status(), time.Since(start), agent.Browser(), agent.OS())
		}()
		next.ServeHTTP(ww, r)
	})
}
