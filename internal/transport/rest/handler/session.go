package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"ecohome/internal/model"
	"ecohome/internal/service"
	"ecohome/internal/transport/rest/middleware"
)

// SessionHandler handles game session endpoints
type SessionHandler struct {
	sessionSvc *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionSvc *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// CreateSessionRequest is the request body for creating a session
type CreateSessionRequest struct {
	InitialBalance int `json:"initialBalance"`
}

// Create handles POST /v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}
	if req.InitialBalance <= 0 {
		req.InitialBalance = model.DefaultInitialBalance
	}

	session, err := h.sessionSvc.CreateSession(r.Context(), req.InitialBalance)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

// Get handles GET /v1/sessions/{code}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	session, err := h.sessionSvc.GetSession(r.Context(), code)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// Players handles GET /v1/sessions/{code}/players
func (h *SessionHandler) Players(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	players, err := h.sessionSvc.GetPlayers(r.Context(), code)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"players": players})
}

// JoinRequest is the request body for joining a session
type JoinRequest struct {
	Nickname string `json:"nickname"`
}

// Join handles POST /v1/sessions/{code}/join
func (h *SessionHandler) Join(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	var req JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Nickname == "" {
		writeError(w, http.StatusBadRequest, "nickname is required")
		return
	}

	resp, err := h.sessionSvc.Join(r.Context(), code, req.Nickname)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// StartRequest is the request body for starting a session
type StartRequest struct {
	DurationMinutes int `json:"durationMinutes"`
	InitialBalance  int `json:"initialBalance"`
}

// Start handles POST /v1/sessions/{code}/start
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	var req StartRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}
	if req.DurationMinutes <= 0 {
		req.DurationMinutes = model.DefaultTimerDuration / 60
	}
	if req.InitialBalance <= 0 {
		req.InitialBalance = model.DefaultInitialBalance
	}

	session, err := h.sessionSvc.Start(r.Context(), code, req.DurationMinutes, req.InitialBalance)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// Pause handles POST /v1/sessions/{code}/pause
func (h *SessionHandler) Pause(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	session, err := h.sessionSvc.TogglePause(r.Context(), code)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// End handles POST /v1/sessions/{code}/end
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	session, err := h.sessionSvc.End(r.Context(), code)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// Restart handles POST /v1/sessions/{code}/restart
func (h *SessionHandler) Restart(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	session, err := h.sessionSvc.Restart(r.Context(), code)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// Kick handles DELETE /v1/sessions/{code}/players/{playerId}
func (h *SessionHandler) Kick(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	code := vars["code"]
	playerID := vars["playerId"]

	if err := h.sessionSvc.Kick(r.Context(), code, playerID); err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// Leave handles POST /v1/sessions/{code}/leave
func (h *SessionHandler) Leave(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	playerID := middleware.GetPlayerID(r.Context())

	if err := h.sessionSvc.Leave(r.Context(), code, playerID); err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "left"})
}

// Leaderboard handles GET /v1/sessions/{code}/leaderboard
func (h *SessionHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	topStr := r.URL.Query().Get("top")
	top := 20
	if topStr != "" {
		if n, err := strconv.Atoi(topStr); err == nil && n > 0 {
			top = n
		}
	}

	entries, err := h.sessionSvc.Leaderboard(r.Context(), code, top)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"leaderboard": entries})
}
