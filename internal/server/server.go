package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"mandiprice/internal/catalog"
	"mandiprice/internal/logx"
	"mandiprice/internal/quote"
	"mandiprice/internal/rate"
)

// HealthStatus is the fixed liveness message.
const HealthStatus = "✅ Backend running successfully"

const maxBodyBytes = 1 << 20

type Server struct {
	svc *quote.Service
}

// New builds the router around svc; nil uses the built-in catalog and the
// randomized estimator.
func New(svc *quote.Service) http.Handler {
	if svc == nil {
		svc = quote.NewService(nil, nil)
	}
	s := &Server{svc: svc}
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(logx.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions, http.MethodHead},
		AllowedHeaders: []string{"*"},
		MaxAge:         600,
	}))
	r.Get("/", s.handleHealth)
	r.Get("/health", s.handleHealth)
	r.Get("/healthz", s.handleHealth)
	r.Post("/get-price", s.handleGetPrice)
	return r
}

// NewWithEstimator allows injecting a custom catalog and Estimator.
func NewWithEstimator(cat *catalog.Catalog, est rate.Estimator) http.Handler {
	return New(quote.NewService(cat, est))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": HealthStatus})
}

func (s *Server) handleGetPrice(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "invalid_json", "request body unreadable or too large")
		return
	}
	req, err := decodePriceRequest(body)
	if err != nil {
		var fe *FieldError
		switch {
		case errors.As(err, &fe):
			writeErrorJSON(w, http.StatusUnprocessableEntity, "invalid_request", fe.Error())
		default:
			writeErrorJSON(w, http.StatusBadRequest, "invalid_json", "invalid json")
		}
		return
	}
	res := s.svc.Quote(req)
	logx.Debug().
		Str("product", res.Product).
		Float64("quantity_kg", res.QuantityKg).
		Int("low", res.Low).
		Int("high", res.High).
		Str("language", res.Language).
		Msg("price quoted")
	writeJSON(w, http.StatusOK, res)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logx.Error().Err(err).Msg("encode response")
	}
}

// writeErrorJSON writes a standardized JSON error response:
// {"error": {"code": string, "message": string}}
func writeErrorJSON(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

// requestIDMiddleware ensures X-Request-ID is set on the response.
// If provided in the request header, it is propagated; otherwise a UUID is generated.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := strings.TrimSpace(r.Header.Get("X-Request-ID"))
		if rid == "" {
			rid = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", rid)
		next.ServeHTTP(w, r)
	})
}
