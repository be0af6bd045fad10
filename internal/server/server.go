package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/DeluxeGrabber_Go/internal/grabber"
	"github.com/osse101/DeluxeGrabber_Go/internal/handler"
	"github.com/osse101/DeluxeGrabber_Go/internal/logger"
	"github.com/osse101/DeluxeGrabber_Go/internal/metrics"
)

// Options configure the HTTP server
type Options struct {
	Port        int
	APIKey      string
	ServiceName string
	Version     string
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc grabber.Service, exec handler.Executor) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, svc, exec),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree. Everything under /api/v1 requires the API key.
func NewRouter(opts Options, svc grabber.Service, exec handler.Executor) http.Handler {
	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector(MaxRequestsPerWindow)

	r.Use(SecurityHeadersMiddleware)
	r.Use(RateLimitMiddleware(detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/version", handler.HandleVersion(opts.ServiceName, opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	h := handler.NewGrabberHandlers(svc, exec)
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(AuthMiddleware(opts.APIKey, detector))

		r.Get("/config", h.HandleGetConfig())
		r.Route("/player", func(r chi.Router) {
			r.Get("/", h.HandleGetPlayer())
			r.Get("/location", h.HandleGetPlayerLocation())
			r.Put("/location", h.HandleMovePlayer())
		})
		r.Post("/forager", h.HandleSetForagerLocation())
		r.Post("/day", h.HandleAdvanceDay())
		r.Post("/locations/{name}/objects", h.HandlePlaceObjects())
		r.Get("/collectors", h.HandleGetCollectors())
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)

		for _, p := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()
		log := logger.FromContext(ctx)
		log.Debug(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
