package http

import (
	"net/http"
)

type budgetRequest struct {
	Category *string `json:"category"`
	Limit    *string `json:"limit"`
}

func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	all, err := s.ledger.Budgets.All(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, all)
}

func (s *Server) handleSetBudget(w http.ResponseWriter, r *http.Request) {
	var req budgetRequest
	if err := decodeBody(r, &req); err != nil {
		s.badRequest(w, "malformed request body")
		return
	}
	if req.Category == nil || req.Limit == nil {
		s.badRequest(w, "category and limit are required")
		return
	}

	limit, err := parseAmount(*req.Limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.ledger.Budgets.Set(r.Context(), *req.Category, limit); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteBudget(w http.ResponseWriter, r *http.Request) {
	if err := s.ledger.Budgets.Delete(r.Context(), r.PathValue("category")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
