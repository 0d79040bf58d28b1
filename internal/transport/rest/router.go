package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"ecohome/internal/service"
	"ecohome/internal/transport/rest/handler"
	"ecohome/internal/transport/rest/middleware"
	"ecohome/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService    *service.AuthService
	SessionService *service.SessionService
	EconomyService *service.EconomyService
	MarketService  *service.MarketService
	WSHub          *ws.Hub

	// CORSAllowedOrigins is the Access-Control-Allow-Origin value; "*" when
	// empty.
	CORSAllowedOrigins string
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService, c.SessionService)
	sessionHandler := handler.NewSessionHandler(c.SessionService)
	economyHandler := handler.NewEconomyHandler(c.EconomyService)
	marketHandler := handler.NewMarketHandler(c.MarketService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.CORSAllowedOrigins))

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/resume", authHandler.Resume).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{code}/join", sessionHandler.Join).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{code}", sessionHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sessions/{code}/leaderboard", sessionHandler.Leaderboard).Methods("GET", "OPTIONS")
	v1.HandleFunc("/catalog", economyHandler.Catalog).Methods("GET", "OPTIONS")

	// WebSocket routes (public with token in query param)
	v1.HandleFunc("/ws/sessions/{code}/admin", wsHandler.AdminWS).Methods("GET")
	v1.HandleFunc("/ws/sessions/{code}/player", wsHandler.PlayerWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Admin routes (require admin auth)
	adminRoutes := v1.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/sessions", sessionHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/sessions/{code}/players", sessionHandler.Players).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/sessions/{code}/start", sessionHandler.Start).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/sessions/{code}/pause", sessionHandler.Pause).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/sessions/{code}/end", sessionHandler.End).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/sessions/{code}/restart", sessionHandler.Restart).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/sessions/{code}/players/{playerId}", sessionHandler.Kick).Methods("DELETE", "OPTIONS")

	// Player routes (require player auth)
	playerRoutes := v1.NewRoute().Subrouter()
	playerRoutes.Use(authMW.RequirePlayer)

	playerRoutes.HandleFunc("/sessions/{code}/purchase", economyHandler.Purchase).Methods("POST", "OPTIONS")
	playerRoutes.HandleFunc("/sessions/{code}/card", economyHandler.SelectCard).Methods("POST", "OPTIONS")
	playerRoutes.HandleFunc("/sessions/{code}/missions", economyHandler.Missions).Methods("GET", "OPTIONS")
	playerRoutes.HandleFunc("/sessions/{code}/missions/{missionId}/claim", economyHandler.ClaimMission).Methods("POST", "OPTIONS")
	playerRoutes.HandleFunc("/sessions/{code}/history", economyHandler.History).Methods("GET", "OPTIONS")
	playerRoutes.HandleFunc("/sessions/{code}/market", marketHandler.Listings).Methods("GET", "OPTIONS")
	playerRoutes.HandleFunc("/sessions/{code}/market", marketHandler.List).Methods("POST", "OPTIONS")
	playerRoutes.HandleFunc("/sessions/{code}/market/{listingId}/buy", marketHandler.Buy).Methods("POST", "OPTIONS")
	playerRoutes.HandleFunc("/sessions/{code}/market/{listingId}", marketHandler.Delist).Methods("DELETE", "OPTIONS")
	playerRoutes.HandleFunc("/sessions/{code}/leave", sessionHandler.Leave).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(allowedOrigins string) mux.MiddlewareFunc {
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
