package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ecohome/internal/cache"
	"ecohome/internal/config"
	"ecohome/internal/repository"
	"ecohome/internal/service"
	"ecohome/internal/transport/rest"
	"ecohome/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	redisAddr := strings.TrimPrefix(cfg.RedisAddr, "redis://")
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	sessionRepo := repository.NewSessionRepo(db)
	playerRepo := repository.NewPlayerRepo(db)
	listingRepo := repository.NewListingRepo(db)
	historyRepo := repository.NewHistoryRepo(db)

	// Initialize caches
	leaderboard := cache.NewLeaderboardCache(rdb)
	resumeCache := cache.NewResumeCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret)
	sessionSvc := service.NewSessionService(sessionRepo, playerRepo, listingRepo, historyRepo, leaderboard, resumeCache, authSvc)
	economySvc := service.NewEconomyService(sessionRepo, playerRepo, historyRepo, leaderboard)
	marketSvc := service.NewMarketService(sessionRepo, playerRepo, listingRepo)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	sessionSvc.SetBroadcaster(wsHub)
	economySvc.SetBroadcaster(wsHub)
	marketSvc.SetBroadcaster(wsHub)

	// Expiry watchers are in-process; re-arm them for sessions that were
	// active before a restart.
	if err := sessionSvc.ResumeWatchers(ctx); err != nil {
		log.Fatal("Failed to resume expiry watchers:", err)
	}

	// Create router with container
	container := &rest.Container{
		AuthService:    authSvc,
		SessionService: sessionSvc,
		EconomyService: economySvc,
		MarketService:  marketSvc,
		WSHub:          wsHub,

		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Printf("Admin auth: username=%s", cfg.AdminUsername)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST /v1/auth/resume")
		log.Println("  POST /v1/sessions")
		log.Println("  POST /v1/sessions/{code}/join")
		log.Println("  GET  /v1/catalog")
		log.Println("  POST /v1/sessions/{code}/purchase")
		log.Println("  GET/POST /v1/sessions/{code}/market")
		log.Println("  WS  /v1/ws/sessions/{code}/admin")
		log.Println("  WS  /v1/ws/sessions/{code}/player")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
