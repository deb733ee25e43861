package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/HallBookingService/internal/api/handlers"
)

// LoggingMiddleware пишет в лог каждый запрос с кодом ответа и длительностью
func LoggingMiddleware(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			duration := time.Since(start)
			if rec.status >= http.StatusInternalServerError {
				logger.Error("HTTP %s %s - status=%d duration=%s", r.Method, r.URL.Path, rec.status, duration)
				return
			}
			logger.Info("HTTP %s %s - status=%d duration=%s", r.Method, r.URL.Path, rec.status, duration)
		})
	}
}

// RecoveryMiddleware превращает панику в handler'е в ответ 500
func RecoveryMiddleware(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rv := recover(); rv != nil {
					logger.Error("HTTP %s %s - panic recovered: %v", r.Method, r.URL.Path, rv)
					handlers.RespondInternalError(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
