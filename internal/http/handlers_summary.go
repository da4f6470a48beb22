package http

import (
	"net/http"
	"strconv"
	"time"

	"ledger/internal/core"
)

type netWorthResponse struct {
	NetWorthCents int64 `json:"net_worth_cents"`
}

type monthlySummaryResponse struct {
	Year          int   `json:"year"`
	Month         int   `json:"month"`
	IncomeCents   int64 `json:"income_cents"`
	ExpensesCents int64 `json:"expenses_cents"`
	NetCents      int64 `json:"net_cents"`
}

type categorySpendingResponse struct {
	Category   string `json:"category"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	SpentCents int64  `json:"spent_cents"`
}

func (s *Server) handleNetWorth(w http.ResponseWriter, r *http.Request) {
	total, err := s.aggregator.NetWorth(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, netWorthResponse{NetWorthCents: total.Cents})
}

// monthParams reads year and month query parameters, defaulting to the
// current month when absent.
func monthParams(r *http.Request) (int, time.Month, bool) {
	now := time.Now()
	year, month := now.Year(), now.Month()

	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			return 0, 0, false
		}
		year = parsed
	}
	if v := r.URL.Query().Get("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			return 0, 0, false
		}
		month = time.Month(parsed)
	}
	return year, month, true
}

func (s *Server) handleMonthlySummary(w http.ResponseWriter, r *http.Request) {
	year, month, ok := monthParams(r)
	if !ok {
		s.badRequest(w, "year and month must be valid; month is 1-12")
		return
	}

	income, err := s.aggregator.MonthlyIncome(r.Context(), year, month)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	expenses, err := s.aggregator.MonthlyExpenses(r.Context(), year, month)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, monthlySummaryResponse{
		Year:          year,
		Month:         int(month),
		IncomeCents:   income.Cents,
		ExpensesCents: expenses.Cents,
		NetCents:      income.Sub(expenses).Cents,
	})
}

func (s *Server) handleCategorySpending(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		s.badRequest(w, "category is required")
		return
	}
	year, month, ok := monthParams(r)
	if !ok {
		s.badRequest(w, "year and month must be valid; month is 1-12")
		return
	}

	spent, err := s.aggregator.CategorySpending(r.Context(), category, year, month)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categorySpendingResponse{
		Category:   category,
		Year:       year,
		Month:      int(month),
		SpentCents: spent.Cents,
	})
}

type taxonomyResponse struct {
	ExpenseCategories []string `json:"expense_categories"`
	IncomeCategories  []string `json:"income_categories"`
	PaymentMethods    []string `json:"payment_methods"`
}

func (s *Server) handleTaxonomy(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, taxonomyResponse{
		ExpenseCategories: core.DefaultExpenseCategories,
		IncomeCategories:  core.DefaultIncomeCategories,
		PaymentMethods:    core.PaymentMethods,
	})
}
