package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/raffleworks/tombola/internal/handlers/httpapi"
	"github.com/raffleworks/tombola/internal/oracle"
	raffleRepo "github.com/raffleworks/tombola/internal/repositories/raffle"
	raffleService "github.com/raffleworks/tombola/internal/services/raffle"
)

func main() {
	// Load a local .env in development; absence is fine
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Skipping .env: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize the raffle repository
	repo, err := raffleRepo.NewRedis(&raffleRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create raffle repository: %v", err)
	}

	// Initialize the winner oracle
	selector := oracle.New(&oracle.Config{
		Max: getEnvInt("RAFFLE_MAX_NUMBER", 100),
	})

	// Initialize the raffle service
	svc, err := raffleService.New(&raffleService.Config{
		MaxNumber:       getEnvInt("RAFFLE_MAX_NUMBER", 100),
		MaxDrawAttempts: getEnvInt("RAFFLE_MAX_DRAW_ATTEMPTS", 15),
		Repo:            repo,
		Oracle:          selector,
	})
	if err != nil {
		log.Fatalf("Failed to create raffle service: %v", err)
	}

	// Initialize the HTTP handler
	handler, err := httpapi.New(&httpapi.Config{
		RaffleService: svc,
	})
	if err != nil {
		log.Fatalf("Failed to create HTTP handler: %v", err)
	}

	router := gin.Default()
	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:    getEnv("LISTEN_ADDR", ":8080"),
		Handler: router,
	}

	go func() {
		log.Printf("Raffle server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Server has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return n
}
