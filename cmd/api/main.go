package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/strideworks/stride-engine/internal/adapters/cache"
	adapterHTTP "github.com/strideworks/stride-engine/internal/adapters/handler/http"
	"github.com/strideworks/stride-engine/internal/adapters/repository"
	"github.com/strideworks/stride-engine/internal/core/domain"
	"github.com/strideworks/stride-engine/internal/core/services"
	"github.com/strideworks/stride-engine/internal/core/workers"
)

// @title        Stride Engine API
// @version      1.0
// @description  Goal and habit tracking backend with temporal analytics.
// @BasePath     /api/v1
func main() {
	startTime := time.Now()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	serverPort := getEnv("PORT", "8080")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("Critical: JWT_SECRET is not set")
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	log.Println("Connecting to database...")

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		log.Fatalf("Critical: Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Println("Database connected successfully.")

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	rdb, err := cache.NewRedisClient(cache.RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DBIndex:  redisDB,
	})
	if err != nil {
		log.Printf("Redis unavailable, running without cache and rate limiting: %v", err)
		rdb = nil
	}

	userRepo := repository.NewPostgresUserRepository(db.DB)
	goalRepo := repository.NewPostgresGoalRepository(db)

	var habitRepo domain.HabitRepository = repository.NewPostgresHabitRepository(db)
	if rdb != nil {
		habitRepo = repository.NewCachedHabitRepository(habitRepo, rdb)
	}

	streakWorker := workers.NewStreakWorker(habitRepo)
	workerCtx, stopWorker := context.WithCancel(context.Background())
	streakWorker.Start(workerCtx)

	authService := services.NewAuthService(userRepo)
	tokenService := services.NewTokenService(jwtSecret, "stride-engine", 24*time.Hour, userRepo)
	goalService := services.NewGoalService(goalRepo)
	habitService := services.NewHabitService(habitRepo, streakWorker)
	statsService := services.NewStatsService(goalRepo, habitRepo)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:  adapterHTTP.NewAuthHandler(authService, tokenService),
		GoalHandler:  adapterHTTP.NewGoalHandler(goalService),
		HabitHandler: adapterHTTP.NewHabitHandler(habitService),
		StatsHandler: adapterHTTP.NewStatsHandler(statsService),
		TokenService: tokenService,
		DB:           db,
		Redis:        rdb,
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
		log.Printf("Stride Engine running on http://localhost:%s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
