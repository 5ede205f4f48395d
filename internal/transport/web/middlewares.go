package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/cadizz/booking/internal/metrics"
)

var ErrPanic = errors.New("panic")

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) loggerMiddleware() func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now().UTC()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			var traceID string

			if spanTraceID := uuid.UUID(trace.SpanContextFromContext(r.Context()).TraceID()); spanTraceID != uuid.Nil {
				traceID = spanTraceID.String()
			}

			s.l.LogInfo(
				"type: access, method: %s, url: %s, status: %d, userAgent: %s, traceID: %s, latency: %s",
				r.Method,
				r.URL.Path,
				rec.status,
				r.Header.Get("User-Agent"),
				traceID,
				time.Since(start),
			)

			metrics.HTTPRequests.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(rec.status)).Inc()
		})
	}
}

func (s *Server) recoverMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if re := recover(); re != nil {
					err, ok := re.(error)
					if !ok {
						err = fmt.Errorf("%v: %w", re, ErrPanic)
					}
					s.l.LogErrorf("type: panic, method: %s, url: %s, error: %v", r.Method, r.URL.Path, err)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) applyMiddlewares(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for _, middleware := range middlewares {
		h = middleware(h)
	}

	return h
}
