package http

import (
	"net/http"

	"ledger/internal/core"
	"ledger/internal/ledger"
)

type transactionRequest struct {
	Type          *string `json:"type"`
	Category      *string `json:"category"`
	Amount        *string `json:"amount"`
	Date          *string `json:"date"`
	Description   *string `json:"description"`
	PaymentMethod *string `json:"payment_method"`
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := decodeBody(r, &req); err != nil {
		s.badRequest(w, "malformed request body")
		return
	}
	if req.Type == nil || req.Category == nil || req.Amount == nil || req.Date == nil {
		s.badRequest(w, "type, category, amount and date are required")
		return
	}

	amount, err := parseAmount(*req.Amount)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	date, err := core.ParseDate(*req.Date)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	draft := core.Transaction{
		Type:     core.TransactionType(*req.Type),
		Category: *req.Category,
		Amount:   amount,
		Date:     date,
	}
	if req.Description != nil {
		draft.Description = *req.Description
	}
	if req.PaymentMethod != nil {
		draft.PaymentMethod = *req.PaymentMethod
	}

	stored, err := s.ledger.Transactions.Create(r.Context(), draft)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, stored)
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	all, err := s.ledger.Transactions.All(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, all)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := decodeBody(r, &req); err != nil {
		s.badRequest(w, "malformed request body")
		return
	}

	patch := ledger.TransactionPatch{
		Category:      req.Category,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
	}
	if req.Type != nil {
		t := core.TransactionType(*req.Type)
		patch.Type = &t
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

	updated, err := s.ledger.Transactions.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := s.ledger.Transactions.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
