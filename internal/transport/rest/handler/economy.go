package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"ecohome/internal/catalog"
	"ecohome/internal/model"
	"ecohome/internal/service"
	"ecohome/internal/transport/rest/middleware"
)

// EconomyHandler handles catalog, purchase and mission endpoints
type EconomyHandler struct {
	economySvc *service.EconomyService
}

// NewEconomyHandler creates a new economy handler
func NewEconomyHandler(economySvc *service.EconomyService) *EconomyHandler {
	return &EconomyHandler{economySvc: economySvc}
}

// Catalog handles GET /v1/catalog
func (h *EconomyHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	if c := r.URL.Query().Get("category"); c != "" {
		category := model.Category(c)
		if !category.Valid() {
			writeError(w, http.StatusBadRequest, "unknown category")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"items": catalog.ByCategory(category)})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"items": catalog.All()})
}

// PurchaseRequest is the request body for buying or upgrading an item
type PurchaseRequest struct {
	ItemID string `json:"itemId"`
}

// Purchase handles POST /v1/sessions/{code}/purchase
func (h *EconomyHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	playerID := middleware.GetPlayerID(r.Context())

	var req PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ItemID == "" {
		writeError(w, http.StatusBadRequest, "itemId is required")
		return
	}

	result, err := h.economySvc.Purchase(r.Context(), code, playerID, req.ItemID)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// SelectCardRequest is the request body for picking a category card
type SelectCardRequest struct {
	Category model.Category `json:"category"`
}

// SelectCard handles POST /v1/sessions/{code}/card
func (h *EconomyHandler) SelectCard(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	playerID := middleware.GetPlayerID(r.Context())

	var req SelectCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	player, err := h.economySvc.SelectCard(r.Context(), code, playerID, req.Category)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, player)
}

// Missions handles GET /v1/sessions/{code}/missions
func (h *EconomyHandler) Missions(w http.ResponseWriter, r *http.Request) {
	playerID := middleware.GetPlayerID(r.Context())

	statuses, err := h.economySvc.Missions(r.Context(), playerID)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"missions": statuses})
}

// ClaimMission handles POST /v1/sessions/{code}/missions/{missionId}/claim
func (h *EconomyHandler) ClaimMission(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	code := vars["code"]
	missionID := vars["missionId"]
	playerID := middleware.GetPlayerID(r.Context())

	player, err := h.economySvc.ClaimMission(r.Context(), code, playerID, missionID)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, player)
}

// History handles GET /v1/sessions/{code}/history
func (h *EconomyHandler) History(w http.ResponseWriter, r *http.Request) {
	playerID := middleware.GetPlayerID(r.Context())

	records, err := h.economySvc.History(r.Context(), playerID)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"purchases": records})
}
