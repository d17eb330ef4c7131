package mux

import (
	"context"
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"winninghands/internal/util"
	"winninghands/pkg/poker"
)

type ctxKey int

const (
	ctxRequestIDKey ctxKey = iota
)

// RequestIDHeader is set on every response
const RequestIDHeader = "WinningHands-RequestID"

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version   string
	evaluator *poker.Evaluator
}

// NewMux returns a new HTTP mux
func NewMux(version string, evaluator *poker.Evaluator) *Mux {
	this := &Mux{
		Router:    gmux.NewRouter(),
		version:   version,
		evaluator: evaluator,
	}

	r := this.Router
	r.Use(this.requestIDMiddleware)
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/winners").Handler(this.postWinners())
	r.Methods(http.MethodPost).Path("/classify").Handler(this.postClassify())

	return this
}

func (m *Mux) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := util.NewRequestID()
		w.Header().Set(RequestIDHeader, id)

		newCtx := context.WithValue(r.Context(), ctxRequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

// requestLogger returns a logger tagged with the request id
func requestLogger(r *http.Request) *logrus.Entry {
	id, _ := r.Context().Value(ctxRequestIDKey).(string)
	return logrus.WithField("requestID", id)
}
