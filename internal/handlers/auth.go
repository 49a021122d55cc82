package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vivek-dahikar/AutoRegisterAgent/internal/logging"
	"github.com/vivek-dahikar/AutoRegisterAgent/internal/services"
)

// AuthHandler serves the model-judged signup and login endpoints.
type AuthHandler struct {
	authService *services.AuthService
	logger      logging.Logger
}

// NewAuthHandler constructs an AuthHandler with the provided dependencies.
func NewAuthHandler(authService *services.AuthService, logger logging.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// AuthRouter registers auth routes on the given router.
func AuthRouter(r chi.Router, authService *services.AuthService, logger logging.Logger) {
	handler := NewAuthHandler(authService, logger)

	r.Post("/signup", handler.Signup)
	r.Post("/login", handler.Login)
}

// Signup registers a new user when the model approves and the name is free.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadBody(w, r, h.logger, err)
		return
	}

	outcome, err := h.authService.Signup(r.Context(), req.Username, req.Password)
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	if !outcome.Accepted() {
		writeRejection(w, outcome)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: outcome.Message})
}

// Login checks credentials against the model's judgment and the store.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadBody(w, r, h.logger, err)
		return
	}

	outcome, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	if !outcome.Accepted() {
		writeRejection(w, outcome)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: outcome.Message})
}

// CredentialsRequest is the body of /signup and /login.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
