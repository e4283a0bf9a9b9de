package handlers

import (
	"encoding/json"
	"net/http"
)

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=150"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// Contact forwards the form to the configured recipient. An SMTP failure
// is an upstream problem: log it, tell the user generically, keep running.
func (h *Handlers) Contact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "name, email and message are required", http.StatusBadRequest)
		return
	}

	if err := h.Mailer.SendContact(req.Name, req.Email, req.Message); err != nil {
		h.Logger.Error("contact mail delivery failed", "error", err)
		WriteError(w, "could not send your message, please try again later", http.StatusServiceUnavailable)
		return
	}

	WriteJSON(w, map[string]string{"message": "your message has been sent"}, http.StatusOK)
}
