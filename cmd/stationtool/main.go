package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"transit-route-service/internal/adapters/repositories"
	"transit-route-service/internal/adapters/tubedata"
	"transit-route-service/internal/platform/db"
	"transit-route-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// stationtool loads the remote station directory into Postgres for shared
// deployments and offline analysis.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	feedURL := os.Getenv("TUBE_FEED_URL")
	if strings.TrimSpace(feedURL) == "" {
		log.Fatal("TUBE_FEED_URL is required")
	}

	pg, err := db.OpenPostgres(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitPostgresSchema(pg); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	provider, err := tubedata.NewClient(feedURL, nil, nil)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	log.Println("Loading station directory...")
	store := repositories.NewPostgresStationStore(pg)
	records, err := services.RefreshStationDirectory(ctx, provider, store)
	if err != nil {
		log.Fatalf("station directory load failed: %v", err)
	}
	log.Printf("Loaded %d stations.", len(records))
}
