package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/vivek-dahikar/AutoRegisterAgent/internal/logging"
	"github.com/vivek-dahikar/AutoRegisterAgent/internal/services"
	"github.com/vivek-dahikar/AutoRegisterAgent/internal/textgen"
)

const (
	maxBodyBytes = 1 << 20

	msgInvalidBody   = "invalid request body"
	msgInternal      = "failed to process request"
	msgModelTimedOut = "text generation timed out"
)

// ErrorResponse is a simple error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a success message.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// decodeJSON reads a single JSON value into dst, bounded by maxBodyBytes.
// Anything after that value is an error.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON value")
	}
	return nil
}

// writeBadBody reports an undecodable request. Malformed input counts as an
// unexpected failure, so it is a 500 like any other.
func writeBadBody(w http.ResponseWriter, r *http.Request, logger logging.Logger, err error) {
	logger.Warn(r.Context(), "invalid request body",
		"path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()),
		"error", err,
	)
	writeError(w, http.StatusInternalServerError, msgInvalidBody)
}

// writeFailure logs the internal error and answers with a sanitized message.
func writeFailure(w http.ResponseWriter, r *http.Request, logger logging.Logger, err error) {
	message := msgInternal
	if errors.Is(err, textgen.ErrTimeout) {
		message = msgModelTimedOut
	}
	logger.Error(r.Context(), "request failed",
		"path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()),
		"error", err,
	)
	writeError(w, http.StatusInternalServerError, message)
}

// writeRejection maps a non-accepted outcome to 400. Accepted outcomes are
// written by the caller, since each endpoint has its own success payload.
func writeRejection(w http.ResponseWriter, outcome services.Outcome) {
	writeError(w, http.StatusBadRequest, outcome.Message)
}
