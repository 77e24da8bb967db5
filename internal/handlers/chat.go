package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"portfolio-relay/internal/models"
)

// maxChatBodyBytes mirrors the 100kb default of common JSON body parsers.
const maxChatBodyBytes = 100 << 10

type chatRelay interface {
	HandleChat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

type ChatHandler struct {
	relay chatRelay
}

func NewChatHandler(relay chatRelay) *ChatHandler {
	return &ChatHandler{relay: relay}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	body := http.MaxBytesReader(w, r.Body, maxChatBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResp(msgInvalidBody))
		return
	}

	resp, err := h.relay.HandleChat(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
