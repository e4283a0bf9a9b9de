package handlers

import (
	"net/http"

	"insighthub/internal/middleware"
)

func (h *Handlers) Follow(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		WriteError(w, "authorization required", http.StatusUnauthorized)
		return
	}

	targetID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if err := h.FollowService.Follow(r.Context(), actor.ID, targetID); err != nil {
		h.writeAppError(w, err)
		return
	}

	counts, err := h.FollowService.Counts(r.Context(), targetID)
	if err != nil {
		h.writeAppError(w, err)
		return
	}

	WriteJSON(w, counts, http.StatusOK)
}

func (h *Handlers) Unfollow(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		WriteError(w, "authorization required", http.StatusUnauthorized)
		return
	}

	targetID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if err := h.FollowService.Unfollow(r.Context(), actor.ID, targetID); err != nil {
		h.writeAppError(w, err)
		return
	}

	counts, err := h.FollowService.Counts(r.Context(), targetID)
	if err != nil {
		h.writeAppError(w, err)
		return
	}

	WriteJSON(w, counts, http.StatusOK)
}
