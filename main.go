package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/candidate-compare/backend/config"
	_ "github.com/candidate-compare/backend/docs"
	"github.com/candidate-compare/backend/gemini"
	"github.com/candidate-compare/backend/handlers"
	"github.com/candidate-compare/backend/jdparse"
	"github.com/candidate-compare/backend/logger"
	"github.com/candidate-compare/backend/matching"
	"github.com/candidate-compare/backend/storage"
)

const version = "1.0.0"

// @title Candidate Compare API
// @version 1.0
// @description AI-assisted candidate/JD matching backend with scoring, ranking, comparison, and interview question generation.

// @contact.name API Support
// @contact.email support@candidate-compare.dev

// @host localhost:8080
// @BasePath /

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	zlog, err := logger.New(!cfg.Debug, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	aiTimeout := time.Duration(cfg.AITimeoutSeconds) * time.Second

	zlog.Info("initializing Gemini client",
		zap.String("project", cfg.ProjectID), zap.String("model", cfg.GeminiModel))
	geminiClient, err := gemini.NewClient(ctx, cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to initialize Gemini client", zap.Error(err))
	}
	defer geminiClient.Close()

	store := storage.NewMemoryStore()
	jdService := jdparse.NewService(geminiClient, store, zlog, aiTimeout)
	engine := matching.NewEngine(store, geminiClient, zlog, aiTimeout)

	jdHandler := handlers.NewJDHandler(jdService, store, zlog)
	candidateHandler := handlers.NewCandidateHandler(store, zlog)
	matchHandler := handlers.NewMatchHandler(engine, zlog)
	healthHandler := handlers.NewHealthHandler(store, geminiClient, version)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// Configure CORS for the frontend dev servers
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", healthHandler.Index)
	router.GET("/health", healthHandler.Health)

	api := router.Group("/api")
	{
		api.GET("/status", healthHandler.Status)

		jd := api.Group("/jd")
		{
			jd.POST("/parse", jdHandler.ParseJD)
			jd.GET("", jdHandler.GetJD)
			jd.DELETE("", jdHandler.DeleteJD)
			jd.POST("/demo", jdHandler.LoadDemoJD)
			jd.GET("/status", jdHandler.JDStatus)
		}

		candidates := api.Group("/candidates")
		{
			candidates.POST("/import", candidateHandler.ImportSampleCandidates)
			candidates.GET("", candidateHandler.ListCandidates)
			candidates.DELETE("", candidateHandler.ClearCandidates)
			candidates.GET("/stats/overview", candidateHandler.CandidateStats)
			candidates.GET("/:candidateId", candidateHandler.GetCandidate)
		}

		match := api.Group("/match")
		{
			match.GET("/batch/all", matchHandler.BatchMatch)
			match.GET("/ranking/top", matchHandler.TopMatches)
			match.GET("/comparison/:candidateId1/:candidateId2", matchHandler.CompareCandidates)
			match.GET("/insights", matchHandler.MatchInsights)
			match.POST("/:candidateId", matchHandler.CalculateMatch)
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		zlog.Info("starting server", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Fatal("server forced to shutdown", zap.Error(err))
	}

	zlog.Info("server exited gracefully")
}
