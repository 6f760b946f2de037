package providers

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/klauspost/compress/gzhttp"
	"hubdash/internal/structures"
)

type ctxKey string

const (
	RequestIDHeader        = "X-Request-ID"
	requestIDKey    ctxKey = "request_id"
)

// MiddlewareChain is the ordered list of middlewares wrapped around the API
// router.
type MiddlewareChain []func(http.Handler) http.Handler

// RequestID reuses an upstream X-Request-ID or generates a UUID, echoes it in
// the response and stores it in the request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

func LoggingMiddleware(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			logger.Infof(GetLogTypeByRequestType(r.Method), "%s %s %d %s request_id=%s",
				r.Method, r.URL.RequestURI(), sw.status, time.Since(start), GetRequestID(r.Context()))
		})
	}
}

var internalErrorBody = []byte(`{"message":"Internal Server Error"}`)

// RecoverMiddleware turns a handler panic into a logged JSON 500.
func RecoverMiddleware(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.Errorf(TypeApp, "panic serving %s %s (request_id=%s): %v\n%s",
					r.Method, r.URL.Path, GetRequestID(r.Context()), rec, debug.Stack())
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write(internalErrorBody)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func corsMiddleware(conf structures.CORSConfig) func(http.Handler) http.Handler {
	origins := conf.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	})
}

func gzipMiddleware(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}

// NewHTTPMiddlewareProvider assembles the API middleware chain from config.
// Request ids come first so every later layer can log them.
func NewHTTPMiddlewareProvider(conf *structures.Config, logger Logger, metrics MetricsProviderInterface) MiddlewareChain {
	chain := MiddlewareChain{
		RequestID,
		LoggingMiddleware(logger),
		func(next http.Handler) http.Handler { return MetricsMiddleware(metrics, next) },
		RecoverMiddleware(logger),
	}
	if conf.CORS.Enabled {
		chain = append(chain, corsMiddleware(conf.CORS))
	}
	if conf.WebServer.Compress {
		chain = append(chain, gzipMiddleware)
	}
	return chain
}
