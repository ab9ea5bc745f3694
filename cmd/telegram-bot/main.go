package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"fournil/internal/app"
	"fournil/internal/auth"
	"fournil/internal/clipper"
	"fournil/internal/config"
	"fournil/internal/database"
	"fournil/internal/inventory"
	"fournil/internal/planning"
	"fournil/internal/recipe"
	"fournil/internal/shopping"
	"fournil/internal/telegram"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.TelegramBotToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is required to run the bot")
	}

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	authService := auth.NewService(db.SQL, cfg.JWTSecret, cfg.SessionTTL)
	recipeRepo := recipe.NewRepository(db.SQL)
	inventoryRepo := inventory.NewRepository(db.SQL)
	planRepo := planning.NewRepository(db.SQL, recipeRepo)
	shoppingService := shopping.NewService(planRepo, inventoryRepo)
	recipeClipper := clipper.NewClipper()

	application := app.NewApp(authService, recipeRepo, inventoryRepo, planRepo, shoppingService, recipeClipper)

	bot, err := telegram.NewBot(cfg, application)
	if err != nil {
		log.Fatalf("Failed to initialize Telegram bot: %v", err)
	}
	bot.RegisterHandlers()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	server := &http.Server{Addr: ":" + port}

	go func() {
		log.Printf("Telegram bot listening on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Expired sessions pile up otherwise; sweep them hourly.
	cleanupDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := authService.CleanupExpired(context.Background()); err != nil {
					log.Printf("Failed to clean up expired sessions: %v", err)
				}
			case <-cleanupDone:
				return
			}
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	close(cleanupDone)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped.")
}
