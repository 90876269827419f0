package handlers

import (
	"net/http"

	"github.com/tutruong-dev/ba-portfolio-server/internal/section"
)

// ChatHandler fronts the assistant chat widget.
type ChatHandler struct {
	chat *section.Chat
}

func NewChatHandler(chat *section.Chat) *ChatHandler {
	return &ChatHandler{chat: chat}
}

func (h *ChatHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.chat.Snapshot())
}

type chatRequest struct {
	Message string `json:"message"`
}

func (h *ChatHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	reply, err := h.chat.Send(r.Context(), req.Message)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

func (h *ChatHandler) SetOpen(w http.ResponseWriter, r *http.Request) {
	var req openRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.chat.SetOpen(req.Open)
	writeJSON(w, http.StatusOK, h.chat.Snapshot())
}
