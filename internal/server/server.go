package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/BabyEggBot_Go/docs"

	"github.com/osse101/BabyEggBot_Go/internal/clock"
	"github.com/osse101/BabyEggBot_Go/internal/economy"
	"github.com/osse101/BabyEggBot_Go/internal/egg"
	"github.com/osse101/BabyEggBot_Go/internal/handler"
	"github.com/osse101/BabyEggBot_Go/internal/inventory"
	"github.com/osse101/BabyEggBot_Go/internal/logger"
	"github.com/osse101/BabyEggBot_Go/internal/marriage"
	"github.com/osse101/BabyEggBot_Go/internal/metrics"
)

// Deps are the services exposed read-only over HTTP
type Deps struct {
	Backend   handler.Pinger
	Bot       handler.Connector
	Eggs      egg.Service
	Ledger    economy.Service
	Inventory inventory.Service
	Marriages marriage.Service
	Clock     clock.Clock
}

type Server struct {
	httpServer *http.Server
}

// NewRouter builds the introspection routes
func NewRouter(apiKey string, deps Deps) chi.Router {
	clk := deps.Clock
	if clk == nil {
		clk = clock.NewRealClock()
	}
	detector := NewSuspiciousActivityDetector(clk)

	r := chi.NewRouter()
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(detector))
	r.Use(AuthMiddleware(apiKey, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Backend, deps.Bot))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/eggs/{userID}", handler.HandleGetEgg(deps.Eggs))
		r.Get("/balances/{userID}", handler.HandleGetBalance(deps.Ledger))
		r.Get("/inventory/{userID}", handler.HandleGetInventory(deps.Inventory))
		r.Get("/marriages", handler.HandleListMarriages(deps.Marriages))
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// NewServer creates the HTTP server on port
func NewServer(port int, apiKey string, deps Deps) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(apiKey, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
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
		for _, p := range UnloggedPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())

		sanitized := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitized[k] = []string{RedactedValue}
			} else {
				sanitized[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitized)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start serves until Stop is called. A graceful stop is not an error.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	slog.Default().Info(LogMsgServerStopped)
	return err
}
