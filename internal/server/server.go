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

	_ "github.com/osse101/Greenhouse_Go/docs"
	"github.com/osse101/Greenhouse_Go/internal/achievement"
	"github.com/osse101/Greenhouse_Go/internal/auth"
	"github.com/osse101/Greenhouse_Go/internal/challenge"
	"github.com/osse101/Greenhouse_Go/internal/garden"
	"github.com/osse101/Greenhouse_Go/internal/handler"
	"github.com/osse101/Greenhouse_Go/internal/logger"
	"github.com/osse101/Greenhouse_Go/internal/metrics"
)

// Options configures the HTTP surface
type Options struct {
	Port           int
	JWTSecret      string
	TrustedProxies []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Services are the application services the routes call into
type Services struct {
	Store        handler.Pinger
	Garden       garden.Service
	Achievements achievement.Service
	Challenges   challenge.Service
}

type Server struct {
	httpServer *http.Server
	limiter    *AccountRateLimiter
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc Services) *Server {
	limiter := NewAccountRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst)
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           newRouter(opts, svc, limiter),
			ReadHeaderTimeout: readHeaderTimeout,
		},
		limiter: limiter,
	}
}

// Handler exposes the routed handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func newRouter(opts Options, svc Services, limiter *AccountRateLimiter) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(auth.NewAuthenticator(opts.JWTSecret), opts.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(maxRequestBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.Store))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	gardenHandler := handler.NewGardenHandler(svc.Garden)
	achievementHandler := handler.NewAchievementHandler(svc.Achievements)
	challengeHandler := handler.NewChallengeHandler(svc.Challenges)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/garden", func(r chi.Router) {
			r.Get("/", gardenHandler.GetGarden)

			r.Group(func(r chi.Router) {
				r.Use(limiter.Middleware)
				r.Post("/plants", gardenHandler.AddPlant)
				r.Delete("/plants", gardenHandler.RemovePlant)
				r.Post("/action", gardenHandler.PerformAction)
			})
		})

		r.Get("/achievements", achievementHandler.ListAchievements)

		r.Route("/challenges", func(r chi.Router) {
			r.Get("/", challengeHandler.ListChallenges)

			r.Group(func(r chi.Router) {
				r.Use(limiter.Middleware)
				r.Post("/participate", challengeHandler.Participate)
				r.Post("/claim", challengeHandler.Claim)
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
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
		statusCode:     http.StatusOK,
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip probes and scrapes
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

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
			if strings.EqualFold(k, HeaderAuthorization) {
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
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	s.limiter.Start()
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	s.limiter.Stop()
	return s.httpServer.Shutdown(ctx)
}
