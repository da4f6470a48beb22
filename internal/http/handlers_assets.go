package http

import (
	"net/http"

	"ledger/internal/core"
	"ledger/internal/ledger"
)

type assetRequest struct {
	Name        *string `json:"name"`
	Type        *string `json:"type"`
	Value       *string `json:"value"`
	Date        *string `json:"date"`
	Description *string `json:"description"`
}

func (s *Server) handleCreateAsset(w http.ResponseWriter, r *http.Request) {
	var req assetRequest
	if err := decodeBody(r, &req); err != nil {
		s.badRequest(w, "malformed request body")
		return
	}
	if req.Name == nil || req.Value == nil {
		s.badRequest(w, "name and value are required")
		return
	}

	value, err := parseAmount(*req.Value)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	draft := core.Asset{Name: *req.Name, Value: value}
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

	stored, err := s.ledger.Assets.Create(r.Context(), draft)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, stored)
}

func (s *Server) handleListAssets(w http.ResponseWriter, r *http.Request) {
	all, err := s.ledger.Assets.All(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, all)
}

func (s *Server) handleUpdateAsset(w http.ResponseWriter, r *http.Request) {
	var req assetRequest
	if err := decodeBody(r, &req); err != nil {
		s.badRequest(w, "malformed request body")
		return
	}

	patch := ledger.AssetPatch{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
	}
	var err error
	if patch.Value, err = parseOptionalAmount(req.Value); err != nil {
		s.writeError(w, r, err)
		return
	}
	if patch.Date, err = parseOptionalDate(req.Date); err != nil {
		s.writeError(w, r, err)
		return
	}

	updated, err := s.ledger.Assets.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteAsset(w http.ResponseWriter, r *http.Request) {
	if err := s.ledger.Assets.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
