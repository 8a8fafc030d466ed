package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"go.uber.org/zap"
)

func Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, "Hello, world!")
}

// NewRouter wires the routes behind logging, recovery and CORS.
func NewRouter(posts PostCreator, logger *zap.Logger, allowedOrigins []string) http.Handler {
	postHandler := NewPostHandler(posts, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", Home)
	mux.HandleFunc("POST /posts/create", postHandler.CreatePost)

	headersOk := handlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type", "Authorization"})
	originsOk := handlers.AllowedOrigins(allowedOrigins)
	methodsOk := handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"})
	corsHandler := handlers.CORS(originsOk, headersOk, methodsOk)(mux)

	recovered := handlers.RecoveryHandler(
		handlers.RecoveryLogger(zapRecoveryLogger{logger}),
		handlers.PrintRecoveryStack(false),
	)(corsHandler)

	return loggingHandler(logger, recovered)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// loggingHandler logs every request once it has been served.
func loggingHandler(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote", r.RemoteAddr),
		)
	})
}

type zapRecoveryLogger struct {
	log *zap.Logger
}

func (l zapRecoveryLogger) Println(args ...interface{}) {
	l.log.Error("panic recovered", zap.String("panic", fmt.Sprint(args...)))
}
