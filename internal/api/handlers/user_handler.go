package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aldisn/contactbook-be/internal/apperr"
	"github.com/aldisn/contactbook-be/internal/auth"
	"github.com/aldisn/contactbook-be/internal/services"
	"github.com/rs/zerolog/log"
)

// UserHandler handles HTTP requests for accounts and sessions.
type UserHandler struct {
	service services.UserServiceProvider
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterPayload defines the structure for registration requests.
type RegisterPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles new user registration.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}

	user, err := h.service.Register(payload.Username, payload.Password, payload.Name)
	if err != nil {
		log.Warn().Err(err).Str("username", payload.Username).Msg("Failed to register user")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Login handles user authentication and session token rotation.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}

	user, err := h.service.Login(payload.Username, payload.Password)
	if err != nil {
		log.Warn().Err(err).Str("username", payload.Username).Msg("Failed authentication attempt")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Profile returns the currently authenticated user.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFrom(r.Context())
	if !ok {
		writeError(w, apperr.ErrUnauthenticated)
		return
	}

	// sanitize
	caller.PasswordHash = ""
	writeJSON(w, http.StatusOK, caller)
}

// Update handles partial updates of the caller's own profile.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFrom(r.Context())
	if !ok {
		writeError(w, apperr.ErrUnauthenticated)
		return
	}

	var input services.UserUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}

	user, err := h.service.UpdateProfile(caller.ID, input)
	if err != nil {
		log.Error().Err(err).Str("user_id", caller.ID).Msg("Failed to update user")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Logout ends the caller's session by clearing the stored token.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFrom(r.Context())
	if !ok {
		writeError(w, apperr.ErrUnauthenticated)
		return
	}

	if err := h.service.Logout(caller.ID); err != nil {
		log.Error().Err(err).Str("user_id", caller.ID).Msg("Failed to log out user")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "logout successful"})
}
