package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vivek-dahikar/AutoRegisterAgent/internal/logging"
	"github.com/vivek-dahikar/AutoRegisterAgent/internal/services"
)

// ProcessHandler relays free-form prompts to the text generator.
type ProcessHandler struct {
	relayService *services.RelayService
	logger       logging.Logger
}

func NewProcessHandler(relayService *services.RelayService, logger logging.Logger) *ProcessHandler {
	return &ProcessHandler{
		relayService: relayService,
		logger:       logger,
	}
}

// ProcessRouter registers the prompt relay route.
func ProcessRouter(r chi.Router, relayService *services.RelayService, logger logging.Logger) {
	handler := NewProcessHandler(relayService, logger)

	r.Post("/process", handler.Process)
}

func (h *ProcessHandler) Process(w http.ResponseWriter, r *http.Request) {
	var req ProcessRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadBody(w, r, h.logger, err)
		return
	}

	outcome, err := h.relayService.Process(r.Context(), req.Prompt)
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	if !outcome.Accepted() {
		writeRejection(w, outcome)
		return
	}

	writeJSON(w, http.StatusOK, ProcessResponse{Response: outcome.Message})
}

type ProcessRequest struct {
	Prompt string `json:"prompt"`
}

type ProcessResponse struct {
	Response string `json:"response"`
}
