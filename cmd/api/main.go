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

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/masnaviev/habit-tracker/internal/adapters/cache"
	adapterHTTP "github.com/masnaviev/habit-tracker/internal/adapters/handler/http"
	"github.com/masnaviev/habit-tracker/internal/adapters/repository"
	"github.com/masnaviev/habit-tracker/internal/core/domain"
	"github.com/masnaviev/habit-tracker/internal/core/services"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	startTime := time.Now()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	serverPort := envOr("PORT", "8080")

	var db *sqlx.DB
	var habitRepo domain.HabitRepository
	var userRepo domain.UserRepository

	if dbHost := os.Getenv("DB_HOST"); dbHost != "" {
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
			dbHost, envOr("DB_PORT", "5432"), os.Getenv("DB_NAME"))

		log.Println("Connecting to database...")

		var err error
		db, err = sqlx.Connect("pgx", dsn)
		if err != nil {
			log.Fatalf("Critical: Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)

		log.Println("Database connected successfully.")

		habitRepo = repository.NewPostgresHabitRepository(db)
		userRepo = repository.NewPostgresUserRepository(db)
	} else {
		log.Println("DB_HOST not set, using in-memory stores.")
		habitRepo = repository.NewInMemoryHabitRepository()
		userRepo = repository.NewInMemoryUserRepository()
	}

	var redisClient *redis.Client
	if redisHost := os.Getenv("REDIS_HOST"); redisHost != "" {
		var err error
		redisClient, err = cache.NewRedisClient(
			redisHost, envOr("REDIS_PORT", "6379"),
			os.Getenv("REDIS_PASSWORD"), 0)
		if err != nil {
			log.Fatalf("Critical: Failed to connect to redis: %v", err)
		}
		habitRepo = repository.NewCachedHabitRepository(habitRepo, redisClient)
		log.Println("Redis connected, habit listings are cached.")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("Critical: JWT_SECRET must be set")
	}

	tokenService := services.NewTokenService(jwtSecret, "habit-tracker", 24*time.Hour, userRepo)
	authService := services.NewAuthService(userRepo)
	habitService := services.NewHabitService(habitRepo)
	executionService := services.NewExecutionService(habitRepo)
	statsService := services.NewStatsService(habitRepo)
	adminService := services.NewAdminService(userRepo, habitRepo)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:  adapterHTTP.NewAuthHandler(authService, tokenService),
		HabitHandler: adapterHTTP.NewHabitHandler(habitService, executionService),
		StatsHandler: adapterHTTP.NewStatsHandler(statsService),
		AdminHandler: adapterHTTP.NewAdminHandler(adminService),
		TokenService: tokenService,
		DB:           db,
		Redis:        redisClient,
		StartTime:    startTime,
	})

	srv := &http.Server{
		Addr:         ":" + serverPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Habit Tracker running on http://localhost:%s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}
