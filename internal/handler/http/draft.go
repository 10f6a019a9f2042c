// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-exam-drafts/internal/app"
	"github.com/MKhiriev/go-exam-drafts/internal/logger"
	"github.com/MKhiriev/go-exam-drafts/internal/store"
	"github.com/MKhiriev/go-exam-drafts/internal/utils"
	"github.com/MKhiriev/go-exam-drafts/models"
)

func (h *Handler) saveDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.saveDraft").Msg("no user ID was given")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var draft models.DraftRecord
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Err(err).Str("func", "*Handler.saveDraft").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	// the owner always comes from the token, never from the body
	draft.UserID = userID

	if err := h.services.DraftService.SaveDraft(ctx, draft); err != nil {
		log.Err(err).Str("func", "*Handler.saveDraft").Msg("error saving draft")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.SaveDraftResponse{Status: app.MsgDraftSaved}, http.StatusOK)
}

// loadDraft answers 200 with an empty code when nothing is stored, the
// client treats both the same way.
func (h *Handler) loadDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.loadDraft").Msg("no user ID was given")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var req models.LoadDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.loadDraft").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	req.UserID = userID

	draft, err := h.services.DraftService.LoadDraft(ctx, req)
	if errors.Is(err, store.ErrDraftNotFound) {
		utils.WriteJSON(w, models.LoadDraftResponse{}, http.StatusOK)
		return
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.loadDraft").Msg("error loading draft")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.LoadDraftResponse{Code: draft.Code}, http.StatusOK)
}
