package mockapi

import (
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

const requestIDHeader = "X-Request-ID"

// NewRouter registers the mock routes.
func NewRouter(rs *Responder) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	r.HandleFunc("/intensity", rs.intensityHandler).Methods(http.MethodGet)

	r.Use(requestIDMiddleware)
	return r
}

// NewHandler wraps the router with an Apache-style access log written to accessLog.
func NewHandler(rs *Responder, accessLog io.Writer) http.Handler {
	return handlers.LoggingHandler(accessLog, NewRouter(rs))
}

// requestIDMiddleware echoes the caller's request id or assigns a new one.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}
