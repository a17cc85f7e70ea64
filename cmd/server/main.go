package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vocaquiz/internal/config"
	"vocaquiz/internal/database"
	"vocaquiz/internal/dialog"
	"vocaquiz/internal/handlers"
	"vocaquiz/internal/intent"
	"vocaquiz/internal/repository"
	"vocaquiz/internal/security"
	"vocaquiz/internal/service"
	"vocaquiz/internal/session"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Initialize repositories
	vocabRepo := repository.NewVocabRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)

	// Initialize services
	vocabService := service.NewVocabService(vocabRepo)
	matchService := service.NewMatchService(cfg.FuzzyThreshold, attemptRepo)
	importService := service.NewImportService(vocabRepo)
	backupService := service.NewBackupService(db)

	reportService, err := service.NewReportService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.ReportEmail)
	if err != nil {
		log.Fatalf("Failed to initialize report service: %v", err)
	}

	// The resolver is optional; without a Groq key the keyword rules stand alone
	resolver := intent.NewResolver(cfg.GroqAPIKey, cfg.LLMModel)
	var intentResolver dialog.IntentResolver
	if resolver != nil {
		intentResolver = resolver
		log.Printf("Intent resolver enabled (model: %s)", cfg.LLMModel)
	} else {
		log.Println("Intent resolver disabled: GROQ_API_KEY not configured")
	}

	engine := dialog.NewEngine(vocabService, matchService, intentResolver)

	// Session store with background cleanup
	store := session.NewStore(session.DefaultTTL)
	store.StartCleanup(15 * time.Minute)
	defer store.Stop()

	tokens, err := security.NewTokenManager(cfg.SessionSecret)
	if err != nil {
		log.Fatalf("Failed to initialize token manager: %v", err)
	}

	// Initialize handlers
	chatHandler := handlers.NewChatHandler(store, engine, tokens, matchService, reportService)
	vocabHandler := handlers.NewVocabHandler(vocabService, importService, matchService, backupService, cfg.UploadMaxSize)

	// Routes
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/chat", chatHandler.Chat)
	mux.HandleFunc("POST /api/vocabulary/upload", vocabHandler.Upload)
	mux.HandleFunc("GET /api/categories", vocabHandler.Categories)
	mux.HandleFunc("GET /api/stats", vocabHandler.Stats)
	mux.HandleFunc("GET /api/backup/export", vocabHandler.Export)

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
}
