package http

import (
	"net/http"

	"ledger/internal/core"
	"ledger/internal/ledger"
)

type goalRequest struct {
	Name          *string `json:"name"`
	TargetAmount  *string `json:"target_amount"`
	CurrentAmount *string `json:"current_amount"`
	TargetDate    *string `json:"target_date"`
	Completed     *bool   `json:"completed"`
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if err := decodeBody(r, &req); err != nil {
		s.badRequest(w, "malformed request body")
		return
	}
	if req.Name == nil || req.TargetAmount == nil {
		s.badRequest(w, "name and target_amount are required")
		return
	}

	target, err := parseAmount(*req.TargetAmount)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	draft := core.Goal{Name: *req.Name, TargetAmount: target}
	if req.CurrentAmount != nil {
		current, err := parseAmount(*req.CurrentAmount)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		draft.CurrentAmount = current
	}
	if req.TargetDate != nil {
		date, err := core.ParseDate(*req.TargetDate)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		draft.TargetDate = date
	}

	stored, err := s.ledger.Goals.Create(r.Context(), draft)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, stored)
}

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	all, err := s.ledger.Goals.All(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, all)
}

func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if err := decodeBody(r, &req); err != nil {
		s.badRequest(w, "malformed request body")
		return
	}

	patch := ledger.GoalPatch{
		Name:      req.Name,
		Completed: req.Completed,
	}
	var err error
	if patch.TargetAmount, err = parseOptionalAmount(req.TargetAmount); err != nil {
		s.writeError(w, r, err)
		return
	}
	if patch.CurrentAmount, err = parseOptionalAmount(req.CurrentAmount); err != nil {
		s.writeError(w, r, err)
		return
	}
	if patch.TargetDate, err = parseOptionalDate(req.TargetDate); err != nil {
		s.writeError(w, r, err)
		return
	}

	updated, err := s.ledger.Goals.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := s.ledger.Goals.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
