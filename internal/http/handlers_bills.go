package http

import (
	"net/http"
	"strconv"

	"ledger/internal/core"
	"ledger/internal/ledger"
)

type billRequest struct {
	Name      *string `json:"name"`
	Amount    *string `json:"amount"`
	DueDate   *string `json:"due_date"`
	Frequency *string `json:"frequency"`
	AutoPay   *bool   `json:"auto_pay"`
}

type payBillRequest struct {
	Date *string `json:"date"`
}

func (s *Server) handleCreateBill(w http.ResponseWriter, r *http.Request) {
	var req billRequest
	if err := decodeBody(r, &req); err != nil {
		s.badRequest(w, "malformed request body")
		return
	}
	if req.Name == nil || req.Amount == nil || req.DueDate == nil {
		s.badRequest(w, "name, amount and due_date are required")
		return
	}

	amount, err := parseAmount(*req.Amount)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	due, err := core.ParseDate(*req.DueDate)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	draft := core.Bill{Name: *req.Name, Amount: amount, DueDate: due}
	if req.Frequency != nil {
		draft.Frequency = *req.Frequency
	}
	if req.AutoPay != nil {
		draft.AutoPay = *req.AutoPay
	}

	stored, err := s.ledger.Bills.Create(r.Context(), draft)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, stored)
}

func (s *Server) handleListBills(w http.ResponseWriter, r *http.Request) {
	all, err := s.ledger.Bills.All(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, all)
}

func (s *Server) handleUpdateBill(w http.ResponseWriter, r *http.Request) {
	var req billRequest
	if err := decodeBody(r, &req); err != nil {
		s.badRequest(w, "malformed request body")
		return
	}

	patch := ledger.BillPatch{
		Name:      req.Name,
		Frequency: req.Frequency,
		AutoPay:   req.AutoPay,
	}
	var err error
	if patch.Amount, err = parseOptionalAmount(req.Amount); err != nil {
		s.writeError(w, r, err)
		return
	}
	if patch.DueDate, err = parseOptionalDate(req.DueDate); err != nil {
		s.writeError(w, r, err)
		return
	}

	updated, err := s.ledger.Bills.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteBill(w http.ResponseWriter, r *http.Request) {
	if err := s.ledger.Bills.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUpcomingBills(w http.ResponseWriter, r *http.Request) {
	days := s.upcomingDays
	if v := r.URL.Query().Get("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			s.badRequest(w, "days must be a positive integer")
			return
		}
		days = parsed
	}

	bills, err := s.billCycle.Upcoming(r.Context(), days)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bills)
}

func (s *Server) handleOverdueBills(w http.ResponseWriter, r *http.Request) {
	bills, err := s.billCycle.Overdue(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bills)
}

func (s *Server) handlePayBill(w http.ResponseWriter, r *http.Request) {
	var req payBillRequest
	if r.ContentLength > 0 {
		if err := decodeBody(r, &req); err != nil {
			s.badRequest(w, "malformed request body")
			return
		}
	}

	var date core.Date
	if req.Date != nil {
		parsed, err := core.ParseDate(*req.Date)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		date = parsed
	}

	bill, err := s.billCycle.MarkPaid(r.Context(), r.PathValue("id"), date)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bill)
}
