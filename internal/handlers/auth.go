package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/DHAIRYADHOLU/Metrosync/internal/account"
	"github.com/DHAIRYADHOLU/Metrosync/internal/metrics"
	"github.com/DHAIRYADHOLU/Metrosync/internal/models"
)

// AuthHandler serves the signup and login endpoints.
type AuthHandler struct {
	svc     *account.Service
	metrics *metrics.Collector
}

// NewAuthHandler creates a handler backed by the account service.
func NewAuthHandler(svc *account.Service, m *metrics.Collector) *AuthHandler {
	return &AuthHandler{svc: svc, metrics: m}
}

// Signup handles POST /signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := parseJSONBody(r, &req); err != nil {
		h.metrics.SignupsTotal.WithLabelValues("invalid").Inc()
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.svc.CreateAccount(r.Context(), strings.TrimSpace(req.Email), req.Password)
	switch {
	case err == nil:
		h.metrics.SignupsTotal.WithLabelValues("ok").Inc()
		writeMessage(w, http.StatusCreated, "User created successfully")
	case errors.Is(err, account.ErrDuplicateEmail):
		h.metrics.SignupsTotal.WithLabelValues("conflict").Inc()
		writeMessage(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, account.ErrInvalidInput):
		h.metrics.SignupsTotal.WithLabelValues("invalid").Inc()
		writeMessage(w, http.StatusBadRequest, strings.TrimPrefix(err.Error(), account.ErrInvalidInput.Error()+": "))
	default:
		// No internal detail leaks past this point.
		log.Printf("Signup failed: %v", err)
		h.metrics.SignupsTotal.WithLabelValues("error").Inc()
		writeMessage(w, http.StatusInternalServerError, "Server error")
	}
}

// Login handles POST /login. Unknown email and wrong password produce the
// identical response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := parseJSONBody(r, &req); err != nil {
		h.metrics.LoginsTotal.WithLabelValues("denied").Inc()
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, token, err := h.svc.Authenticate(r.Context(), strings.TrimSpace(req.Email), req.Password)
	switch {
	case err == nil:
		h.metrics.LoginsTotal.WithLabelValues("ok").Inc()
		writeJSON(w, http.StatusOK, models.LoginResponse{
			Message: "Login successful",
			Token:   token,
		})
	case errors.Is(err, account.ErrInvalidCredentials):
		h.metrics.LoginsTotal.WithLabelValues("denied").Inc()
		writeMessage(w, http.StatusUnauthorized, "Invalid email or password")
	default:
		log.Printf("Login failed: %v", err)
		h.metrics.LoginsTotal.WithLabelValues("error").Inc()
		writeMessage(w, http.StatusInternalServerError, "Server error")
	}
}
