package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"ecohome/internal/model"
	"ecohome/internal/service"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authSvc    *service.AuthService
	sessionSvc *service.SessionService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authSvc *service.AuthService, sessionSvc *service.SessionService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, sessionSvc: sessionSvc}
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.authSvc.Login(req.Username, req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// ResumeRequest is the request body for resuming a disconnected player
type ResumeRequest struct {
	ResumeToken string `json:"resumeToken"`
}

// Resume handles POST /v1/auth/resume
func (h *AuthHandler) Resume(w http.ResponseWriter, r *http.Request) {
	var req ResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ResumeToken == "" {
		writeError(w, http.StatusBadRequest, "resumeToken is required")
		return
	}

	resp, err := h.sessionSvc.Resume(r.Context(), req.ResumeToken)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// statusForError maps business errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, model.ErrSessionNotFound),
		errors.Is(err, model.ErrPlayerNotFound),
		errors.Is(err, model.ErrItemNotFound),
		errors.Is(err, model.ErrMissionNotFound),
		errors.Is(err, model.ErrListingNotFound),
		errors.Is(err, model.ErrResumeStateNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidCredentials),
		errors.Is(err, model.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrNicknameTaken),
		errors.Is(err, model.ErrAlreadyClaimed),
		errors.Is(err, model.ErrInvalidTransition),
		errors.Is(err, model.ErrSessionNotWaiting),
		errors.Is(err, model.ErrSessionInactive):
		return http.StatusConflict
	case errors.Is(err, model.ErrInvalidCode),
		errors.Is(err, model.ErrInvalidCategory),
		errors.Is(err, model.ErrInsufficientFunds),
		errors.Is(err, model.ErrLevelGate),
		errors.Is(err, model.ErrMissionNotEligible),
		errors.Is(err, model.ErrNotOwned),
		errors.Is(err, model.ErrPriceTooHigh),
		errors.Is(err, model.ErrPriceTooLow),
		errors.Is(err, model.ErrListingCapExceeded),
		errors.Is(err, model.ErrSelfTradeForbidden):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
