// Package api provides the HTTP server for the engagement backend.
// All application routes live under /api; the Prometheus endpoint is
// mounted at /metrics when enabled.
package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/turismocol/turismocol/internal/app/catalog"
	"github.com/turismocol/turismocol/internal/app/engagement"
	"github.com/turismocol/turismocol/internal/app/recommend"
	"github.com/turismocol/turismocol/internal/domain"
	"github.com/turismocol/turismocol/internal/infra/observability"
)

// Limits bounds list endpoints and history sizes.
type Limits struct {
	DefaultPageSize int
	MaxPageSize     int
	HistoryLimit    int
}

// Server is the engagement API server.
type Server struct {
	catalog        *catalog.Service
	tracker        *engagement.TrackerService
	ledger         *engagement.LedgerService
	rewards        *engagement.RewardService
	recommender    *recommend.Engine
	limits         Limits
	log            *slog.Logger
	metricsEnabled bool
}

// NewServer wires the application services into an HTTP server.
func NewServer(cat *catalog.Service, tracker *engagement.TrackerService,
	ledger *engagement.LedgerService, rewards *engagement.RewardService,
	rec *recommend.Engine, limits Limits, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		catalog:     cat,
		tracker:     tracker,
		ledger:      ledger,
		rewards:     rewards,
		recommender: rec,
		limits:      limits,
		log:         log,
	}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsMiddleware)
	r.Use(s.observe)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Get("/destinations", s.handleListDestinations)
		r.Get("/destinations/search", s.handleSearchDestinations)
		r.Get("/destinations/statistics", s.handleDestinationStatistics)

		r.Post("/users/preferences", s.handleSetPreferences)
		r.Post("/users/interactions", s.handleRecordInteraction)

		r.Get("/recommendations/{userID}", s.handleRecommendations)
		r.Get("/points/{userID}", s.handlePointsSummary)

		r.Get("/rewards", s.handleListRewards)
		r.Post("/rewards/redeem", s.handleRedeemReward)

		r.Post("/user-destinations", s.handleSubmitDestination)
		r.Get("/user-destinations/{userID}", s.handleListSubmissions)
		r.Post("/user-destinations/{rnt}/approve", s.handleApproveSubmission)
		r.Post("/user-destinations/{rnt}/reject", s.handleRejectSubmission)

		r.Get("/analytics/trends", s.handleTrends)
		r.Get("/analytics/popular-destinations", s.handlePopularDestinations)
	})

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// handleHealth reports liveness.
// GET /api/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// observe logs each request and records its latency histogram. The route
// pattern is resolved after the handler runs so placeholders stay unexpanded
// (one metric series per route, not per user).
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		elapsed := time.Since(start)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		observability.HTTPRequestDuration.
			WithLabelValues(route, strconv.Itoa(status)).
			Observe(elapsed.Seconds())

		s.log.Info("request",
			"method", r.Method,
			"route", route,
			"status", status,
			"duration_ms", elapsed.Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

// pageSize parses the ?limit query parameter, clamped to the configured
// maximum. Absent or invalid values fall back to the default.
func (s *Server) pageSize(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return s.limits.DefaultPageSize
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return s.limits.DefaultPageSize
	}
	if n > s.limits.MaxPageSize {
		return s.limits.MaxPageSize
	}
	return n
}

// decode reads a JSON request body into v.
func decode(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response with a machine-readable kind.
func writeError(w http.ResponseWriter, status int, kind, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]string{
			"kind":    kind,
			"message": msg,
		},
	})
}

// writeDomainError maps domain sentinels onto HTTP statuses and error kinds.
// Anything unrecognized is a storage or programming failure and returns 500.
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	kind, status := classify(err)
	if status == http.StatusInternalServerError {
		s.log.Error("internal error", "err", err)
		writeError(w, status, kind, "internal error")
		return
	}
	writeError(w, status, kind, err.Error())
}

func classify(err error) (kind string, status int) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount", http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidAction):
		return "invalid_action", http.StatusBadRequest
	case errors.Is(err, domain.ErrValidation):
		return "validation_error", http.StatusBadRequest
	case errors.Is(err, domain.ErrInsufficientBalance):
		return "insufficient_balance", http.StatusConflict
	case errors.Is(err, domain.ErrRewardExhausted):
		return "reward_exhausted", http.StatusConflict
	case errors.Is(err, domain.ErrDuplicateRNT):
		return "duplicate_destination", http.StatusConflict
	case errors.Is(err, domain.ErrAlreadyModerated):
		return "already_moderated", http.StatusConflict
	case errors.Is(err, domain.ErrUnknownUser):
		return "unknown_user", http.StatusNotFound
	case errors.Is(err, domain.ErrUnknownDestination):
		return "unknown_destination", http.StatusNotFound
	case errors.Is(err, domain.ErrUnknownReward):
		return "unknown_reward", http.StatusNotFound
	default:
		return "internal", http.StatusInternalServerError
	}
}

// corsMiddleware adds CORS headers for the web client.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
