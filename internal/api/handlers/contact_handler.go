package handlers

import (
	"net/http"

	"github.com/tutruong-dev/ba-portfolio-server/internal/mailer"
	"github.com/tutruong-dev/ba-portfolio-server/internal/section"
)

// ContactHandler accepts contact form submissions.
type ContactHandler struct {
	contact *section.Contact
}

func NewContactHandler(contact *section.Contact) *ContactHandler {
	return &ContactHandler{contact: contact}
}

type contactResponse struct {
	Status section.Status `json:"status"`
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var sub mailer.Submission
	if !decodeJSON(w, r, &sub) {
		return
	}
	status, err := h.contact.Submit(r.Context(), sub)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, contactResponse{Status: status})
}
