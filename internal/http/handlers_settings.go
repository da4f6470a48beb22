package http

import (
	"net/http"

	"ledger/internal/core"
)

type settingsRequest struct {
	Currency       *string `json:"currency"`
	CurrencySymbol *string `json:"currency_symbol"`
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.ledger.Settings.Get(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := decodeBody(r, &req); err != nil {
		s.badRequest(w, "invalid request body")
		return
	}
	if req.Currency == nil || req.CurrencySymbol == nil {
		s.badRequest(w, "currency and currency_symbol are required")
		return
	}

	settings := core.Settings{
		Currency:       *req.Currency,
		CurrencySymbol: *req.CurrencySymbol,
	}
	if err := s.ledger.Settings.Put(r.Context(), settings); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
