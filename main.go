package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"petnet_server/auth"
	"petnet_server/config"
	"petnet_server/kv"
	"petnet_server/metrics"
	"petnet_server/middleware"
	"petnet_server/routes"
	"petnet_server/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	ctx := context.Background()

	// Pick the KV store backend
	var store kv.Store
	switch cfg.StoreBackend {
	case config.BackendDynamo:
		log.Info().Str("table", cfg.DynamoTable).Msg("Initializing DynamoDB store")
		client := kv.InitializeDynamoDBClient(ctx, cfg.AWSRegion)
		store = kv.NewDynamoStore(client, cfg.DynamoTable)
	case config.BackendRedis:
		log.Info().Str("addr", cfg.RedisAddr).Msg("Initializing Redis store")
		store = kv.NewRedisStore(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	case config.BackendMemory:
		log.Warn().Msg("Using in-memory store; data is lost on restart")
		store = kv.NewMemoryStore()
	default:
		log.Fatal().Str("backend", cfg.StoreBackend).Msg("Unknown store backend")
	}

	// Identity provider
	provider := auth.NewJWTProvider(store, cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	// Initialize Services
	profileService := &services.ProfileService{Store: store}
	postService := &services.PostService{Store: store}
	followService := &services.FollowService{Store: store}
	notificationService := &services.NotificationService{Store: store}
	contestService := &services.ContestService{Store: store}
	reportService := &services.ReportService{Store: store}

	// Initialize the router
	r := mux.NewRouter()
	r.Use(middleware.Logger(log.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Handler())

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to PetNet")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}).Methods("GET")

	// Prometheus metrics
	r.Handle("/metrics", metrics.Handler()).Methods("GET")

	// Register routes
	routes.RegisterAuthRoutes(r, provider, profileService)
	routes.RegisterProfileRoutes(r, provider, profileService)
	routes.RegisterPostRoutes(r, provider, postService)
	routes.RegisterFollowRoutes(r, provider, followService)
	routes.RegisterNotificationRoutes(r, provider, notificationService)
	routes.RegisterContestRoutes(r, provider, profileService, contestService)
	routes.RegisterReportRoutes(r, provider, profileService, reportService)

	// Media routes need a bucket; skip them when none is configured.
	if cfg.S3Bucket != "" {
		mediaService, err := services.NewMediaService(ctx, cfg.AWSRegion, cfg.S3Bucket)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize media service")
		}
		routes.RegisterMediaRoutes(r, provider, mediaService)
	}

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Info().Str("port", cfg.Port).Msg("Starting server")
	if err := http.ListenAndServe(":"+cfg.Port, corsHandler); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
