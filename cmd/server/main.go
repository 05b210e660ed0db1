package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"transit-route-service/internal/adapters/cache"
	"transit-route-service/internal/adapters/repositories"
	"transit-route-service/internal/adapters/tubedata"
	"transit-route-service/internal/api"
	"transit-route-service/internal/platform/db"
	"transit-route-service/internal/services"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis, tube data feed) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	feedURL := os.Getenv("TUBE_FEED_URL")
	if strings.TrimSpace(feedURL) == "" {
		log.Fatal("TUBE_FEED_URL is required")
	}

	dbPath := getEnv("DB_PATH", "data/app.db")
	port := getEnv("PORT", "8080")
	redisAddr := os.Getenv("REDIS_ADDR")

	sqlDB, err := db.OpenSqlite(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	if err := repositories.InitSqliteSchema(sqlDB); err != nil {
		log.Fatal(err)
	}
	repo := repositories.NewSqliteStationRepository(sqlDB)

	// Redis caching is optional; without it every query re-fetches each line.
	var lineCache *cache.RedisLineCache
	var disruptionCache *cache.RedisDisruptionCache
	if redisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: redisAddr})
		lineCache = cache.NewRedisLineCache(redisClient, 24*time.Hour)
		disruptionCache = cache.NewRedisDisruptionCache(redisClient, 7*24*time.Hour)
	}

	provider, err := tubedata.NewClient(feedURL, lineCache, disruptionCache)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := provider.Ping(ctx); err != nil {
		log.Printf("tube data service not reachable at startup: %v", err)
	}

	// Refresh the local station directory; a stale local copy is still usable
	// when the feed is down.
	if _, err := services.RefreshStationDirectory(ctx, provider, repo); err != nil {
		log.Printf("station directory refresh failed: %v", err)
	}

	resolver, err := services.LoadResolver(ctx, repo, provider)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(provider, resolver)

	// Timeouts are tuned for cold-cache network assembly (external feed latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
