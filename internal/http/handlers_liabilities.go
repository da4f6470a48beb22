package http

import (
	"net/http"

	"ledger/internal/core"
	"ledger/internal/ledger"
)

type liabilityRequest struct {
	Name        *string `json:"name"`
	Type        *string `json:"type"`
	Amount      *string `json:"amount"`
	Date        *string `json:"date"`
	Description *string `json:"description"`
	// InterestRate is a percent string, e.g. "4.5"
	InterestRate *string `json:"interest_rate"`
}

func (s *Server) handleCreateLiability(w http.ResponseWriter, r *http.Request) {
	var req liabilityRequest
	if err := decodeBody(r, &req); err != nil {
		s.badRequest(w, "malformed request body")
		return
	}
	if req.Name == nil || req.Amount == nil {
		s.badRequest(w, "name and amount are required")
		return
	}

	amount, err := parseAmount(*req.Amount)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	draft := core.Liability{Name: *req.Name, Amount: amount}
	if req.Type != nil {
		draft.Type = *req.Type
	}
	if req.Description != nil {
		draft.Description = *req.Description
	}
	if req.Date != nil {
		date, err := core.ParseDate(*req.Date)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		draft.Date = date
	}
	if req.InterestRate != nil {
		rate, err := parseOptionalRate(req.InterestRate)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		draft.InterestRate = *rate
	}

	stored, err := s.ledger.Liabilities.Create(r.Context(), draft)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, stored)
}

func (s *Server) handleListLiabilities(w http.ResponseWriter, r *http.Request) {
	all, err := s.ledger.Liabilities.All(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, all)
}

func (s *Server) handleUpdateLiability(w http.ResponseWriter, r *http.Request) {
	var req liabilityRequest
	if err := decodeBody(r, &req); err != nil {
		s.badRequest(w, "malformed request body")
		return
	}

	patch := ledger.LiabilityPatch{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
	}
	var err error
	if patch.Amount, err = parseOptionalAmount(req.Amount); err != nil {
		s.writeError(w, r, err)
		return
	}
	if patch.Date, err = parseOptionalDate(req.Date); err != nil {
		s.writeError(w, r, err)
		return
	}
	if patch.InterestRate, err = parseOptionalRate(req.InterestRate); err != nil {
		s.writeError(w, r, err)
		return
	}

	updated, err := s.ledger.Liabilities.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteLiability(w http.ResponseWriter, r *http.Request) {
	if err := s.ledger.Liabilities.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
