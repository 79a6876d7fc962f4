package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/SlotBot_Go/docs"
	"github.com/osse101/SlotBot_Go/internal/handler"
	"github.com/osse101/SlotBot_Go/internal/logger"
	"github.com/osse101/SlotBot_Go/internal/metrics"
	"github.com/osse101/SlotBot_Go/internal/sse"
)

// Options configures the HTTP surface.
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	// RateLimit is requests per IP per RateLimitWindow on /api/v1.
	RateLimit int
	// Events, when set, is streamed at /api/v1/events and stopped with the
	// server.
	Events *sse.Hub
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance. The keep-alive root, health and
// metrics routes are always mounted; /api/v1 only when an API key is set.
func NewServer(opts Options, econ handler.Economy) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/", handler.HandleRoot())
	r.Head("/", handler.HandleRoot())
	r.Get("/healthz", handler.HandleHealthz())
	r.Handle("/metrics", promhttp.Handler())

	if opts.APIKey != "" {
		limiter := NewIPLimiter(opts.RateLimit)

		// API documentation
		r.Get("/swagger/*", httpSwagger.WrapHandler)

		r.Route("/api/v1", func(r chi.Router) {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins:   []string{"*"},
				AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
				AllowedHeaders:   []string{"Accept", "Content-Type", HeaderAPIKey},
				ExposedHeaders:   []string{handler.HeaderRetryAfter},
				AllowCredentials: false,
				MaxAge:           CORSMaxAge,
			}))
			r.Use(RateLimitMiddleware(opts.TrustedProxies, limiter))
			r.Use(AuthMiddleware(opts.APIKey, limiter))

			r.Get("/balance/{id}", handler.HandleGetBalance(econ))
			r.Get("/leaderboard", handler.HandleGetLeaderboard(econ))
			r.Post("/bet", handler.HandlePlaceBet(econ))
			r.Post("/daily", handler.HandleClaimDaily(econ))
			r.Post("/admin/credit", handler.HandleAdminCredit(econ))
			if opts.Events != nil {
				r.Get("/events", sse.Handler(opts.Events))
			}
		})
	} else {
		slog.Default().Info(LogMsgAPIDisabled)
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           r,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
	if opts.Events != nil {
		// open streams never go idle on their own
		httpServer.RegisterOnShutdown(opts.Events.Stop)
	}

	return &Server{
		httpServer: httpServer,
		router:     r,
	}
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr is the listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
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

// Unwrap lets http.ResponseController reach the flusher of streaming routes
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server. It returns http.ErrServerClosed after Stop.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
