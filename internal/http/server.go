// Package http exposes the ledger over a JSON API: CRUD per entity
// collection, derived summary figures and the bill cycle queries.
package http

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"time"

	"ledger/internal/ledger"
	applog "ledger/internal/log"
	"ledger/internal/middleware/ratelimit"
	"ledger/internal/services"
)

type ctxKey string

const requestIDKey ctxKey = "request_id"

type Server struct {
	http.Server

	ledger     *ledger.Ledger
	aggregator *services.Aggregator
	billCycle  *services.BillCycle
	logger     *applog.Logger
	limiter    *ratelimit.Limiter

	// upcomingDays is the default bill lookahead when ?days= is absent.
	upcomingDays int
}

func NewServer(addr string, l *ledger.Ledger, agg *services.Aggregator, bills *services.BillCycle, logger *applog.Logger, upcomingDays, rateLimitPerMinute int) *Server {
	mux := http.NewServeMux()

	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	if upcomingDays <= 0 {
		upcomingDays = services.DefaultUpcomingWindowDays
	}

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		ledger:       l,
		aggregator:   agg,
		billCycle:    bills,
		logger:       logger.WithComponent(applog.ComponentHTTP),
		upcomingDays: upcomingDays,
	}
	if rateLimitPerMinute > 0 {
		s.limiter = ratelimit.NewLimiter(rateLimitPerMinute)
		s.RegisterOnShutdown(s.limiter.Stop)
	}

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)

	mux.HandleFunc("POST /transactions", s.wrap(s.handleCreateTransaction))
	mux.HandleFunc("GET /transactions", s.wrap(s.handleListTransactions))
	mux.HandleFunc("PUT /transactions/{id}", s.wrap(s.handleUpdateTransaction))
	mux.HandleFunc("DELETE /transactions/{id}", s.wrap(s.handleDeleteTransaction))

	mux.HandleFunc("GET /budgets", s.wrap(s.handleListBudgets))
	mux.HandleFunc("PUT /budgets", s.wrap(s.handleSetBudget))
	mux.HandleFunc("DELETE /budgets/{category}", s.wrap(s.handleDeleteBudget))

	mux.HandleFunc("POST /goals", s.wrap(s.handleCreateGoal))
	mux.HandleFunc("GET /goals", s.wrap(s.handleListGoals))
	mux.HandleFunc("PUT /goals/{id}", s.wrap(s.handleUpdateGoal))
	mux.HandleFunc("DELETE /goals/{id}", s.wrap(s.handleDeleteGoal))

	mux.HandleFunc("POST /bills", s.wrap(s.handleCreateBill))
	mux.HandleFunc("GET /bills", s.wrap(s.handleListBills))
	mux.HandleFunc("PUT /bills/{id}", s.wrap(s.handleUpdateBill))
	mux.HandleFunc("DELETE /bills/{id}", s.wrap(s.handleDeleteBill))
	mux.HandleFunc("GET /bills/upcoming", s.wrap(s.handleUpcomingBills))
	mux.HandleFunc("GET /bills/overdue", s.wrap(s.handleOverdueBills))
	mux.HandleFunc("POST /bills/{id}/payments", s.wrap(s.handlePayBill))

	mux.HandleFunc("POST /assets", s.wrap(s.handleCreateAsset))
	mux.HandleFunc("GET /assets", s.wrap(s.handleListAssets))
	mux.HandleFunc("PUT /assets/{id}", s.wrap(s.handleUpdateAsset))
	mux.HandleFunc("DELETE /assets/{id}", s.wrap(s.handleDeleteAsset))

	mux.HandleFunc("POST /liabilities", s.wrap(s.handleCreateLiability))
	mux.HandleFunc("GET /liabilities", s.wrap(s.handleListLiabilities))
	mux.HandleFunc("PUT /liabilities/{id}", s.wrap(s.handleUpdateLiability))
	mux.HandleFunc("DELETE /liabilities/{id}", s.wrap(s.handleDeleteLiability))

	mux.HandleFunc("GET /settings", s.wrap(s.handleGetSettings))
	mux.HandleFunc("PUT /settings", s.wrap(s.handlePutSettings))
	mux.HandleFunc("GET /meta/taxonomy", s.wrap(s.handleTaxonomy))

	mux.HandleFunc("GET /summary/networth", s.wrap(s.handleNetWorth))
	mux.HandleFunc("GET /summary/monthly", s.wrap(s.handleMonthlySummary))
	mux.HandleFunc("GET /summary/category", s.wrap(s.handleCategorySpending))

	return s
}

// wrap adds security headers, a request id and structured request logging
// around a handler.
func (s *Server) wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if s.limiter != nil && !s.limiter.Allow(clientIP(r)) {
			w.Header().Set("Retry-After", "60")
			writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded"})
			return
		}

		requestID := generateRequestID()
		r = r.WithContext(withRequestID(r.Context(), requestID))

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Cache-Control", "no-store")

		rw := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		s.logger.InfoContext(r.Context(), "Request completed",
			applog.FieldRequestID, requestID,
			applog.FieldMethod, r.Method,
			applog.FieldPath, r.URL.Path,
			applog.FieldStatusCode, rw.statusCode,
			applog.FieldDuration, time.Since(start).Milliseconds())
	}
}

// statusWriter captures the status code for request logging.
type statusWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
