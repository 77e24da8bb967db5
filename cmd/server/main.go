package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-relay/internal/config"
	"portfolio-relay/internal/handlers"
	"portfolio-relay/internal/prompt"
	"portfolio-relay/internal/router"
	"portfolio-relay/internal/services"
)

func main() {
	log.Println("🚀 Starting Portfolio Chatbot API...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Load Prompt Context ────
	prompts, err := prompt.LoadBuilder(cfg.PromptContextFile)
	if err != nil {
		log.Fatalf("✗ Prompt context failed to load: %v", err)
	}
	log.Println("✓ Prompt context loaded")

	// ──── Step 3: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(
		context.Background(),
		cfg.GeminiAPIKey,
		cfg.GeminiModel,
		cfg.GeminiTemperature,
	)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	if cfg.GeminiAPIKey == "" {
		log.Println("⚠ GEMINI_API_KEY is not set; chat requests will be rejected")
	} else {
		log.Printf("✓ Gemini client initialized (%s)", geminiService.ModelName())
	}

	// ──── Initialize Services & Handlers ────
	relay := services.NewRelayService(
		geminiService,
		prompts,
		time.Duration(cfg.GeminiTimeoutSeconds)*time.Second,
	)
	healthHandler := handlers.NewHealthHandler(cfg.ServiceName)
	chatHandler := handlers.NewChatHandler(relay)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(healthHandler, chatHandler, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("👋 Shutting down gracefully...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
		close(idleConnsClosed)
	}()

	log.Printf("✓ %s ready on http://localhost:%s", cfg.ServiceName, cfg.Port)
	log.Printf("  Health: http://localhost:%s/api/health", cfg.Port)
	log.Printf("  Chat:   POST http://localhost:%s/api/chat", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
	<-idleConnsClosed
}
