package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"ecohome/internal/service"
	"ecohome/internal/transport/rest/middleware"
)

// MarketHandler handles player-to-player market endpoints
type MarketHandler struct {
	marketSvc *service.MarketService
}

// NewMarketHandler creates a new market handler
func NewMarketHandler(marketSvc *service.MarketService) *MarketHandler {
	return &MarketHandler{marketSvc: marketSvc}
}

// Listings handles GET /v1/sessions/{code}/market
func (h *MarketHandler) Listings(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	listings, err := h.marketSvc.Listings(r.Context(), code)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"listings": listings})
}

// ListRequest is the request body for listing an item for sale
type ListRequest struct {
	ItemID string `json:"itemId"`
	Price  int    `json:"price"`
}

// List handles POST /v1/sessions/{code}/market
func (h *MarketHandler) List(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	playerID := middleware.GetPlayerID(r.Context())

	var req ListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ItemID == "" {
		writeError(w, http.StatusBadRequest, "itemId is required")
		return
	}

	listing, err := h.marketSvc.List(r.Context(), code, playerID, req.ItemID, req.Price)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, listing)
}

// Buy handles POST /v1/sessions/{code}/market/{listingId}/buy
func (h *MarketHandler) Buy(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	code := vars["code"]
	listingID := vars["listingId"]
	playerID := middleware.GetPlayerID(r.Context())

	buyer, err := h.marketSvc.Buy(r.Context(), code, playerID, listingID)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, buyer)
}

// Delist handles DELETE /v1/sessions/{code}/market/{listingId}
func (h *MarketHandler) Delist(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	code := vars["code"]
	listingID := vars["listingId"]
	playerID := middleware.GetPlayerID(r.Context())

	seller, err := h.marketSvc.Delist(r.Context(), code, playerID, listingID)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, seller)
}
