package accesslog

import (
	"context"
	"net/http"
	"time"
)

type entryKey struct{}

// Reject marks the request carried by ctx as rejected with reason. It is a
// no-op when the request is not access logged.
func Reject(ctx context.Context, reason string) {
	if entry, ok := ctx.Value(entryKey{}).(*Entry); ok {
		entry.Rejection = reason
	}
}

// NewMiddleware logs one entry per request once next has returned.
func NewMiddleware(logger AccessLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			entry := NewEntry(r)
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			start := time.Now()
			next.ServeHTTP(rw, r.WithContext(context.WithValue(r.Context(), entryKey{}, entry)))

			entry.Latency = time.Since(start)
			entry.Response.Status = rw.statusCode
			entry.Response.Size = rw.bytesWritten
			logger.Log(r.Context(), entry)
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
	wroteHeader  bool
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.statusCode = statusCode
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(b)
	w.bytesWritten += n
	return n, err
}

func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
