package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"transit-route-service/internal/adapters/tubedata"
	"transit-route-service/internal/services"

	"github.com/joho/godotenv"
)

// Command-line journey planner: resolves the endpoints, assembles the network
// for the requested day and prints the fastest route.
//
//	journey [-date YYYY-MM-DD] <start> <destination>
//
// Stations may be given by name or index.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	date := flag.String("date", "", "journey date (YYYY-MM-DD), defaults to today")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [-date YYYY-MM-DD] <start> <destination>\n", os.Args[0])
		os.Exit(2)
	}

	feedURL := os.Getenv("TUBE_FEED_URL")
	if strings.TrimSpace(feedURL) == "" {
		log.Fatal("TUBE_FEED_URL is required")
	}

	provider, err := tubedata.NewClient(feedURL, nil, nil)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := provider.Ping(ctx); err != nil {
		log.Fatal(err)
	}

	resolver, err := services.LoadResolver(ctx, nil, provider)
	if err != nil {
		log.Fatal(err)
	}

	req := services.JourneyRequest{
		From: flag.Arg(0),
		To:   flag.Arg(1),
		Date: *date,
	}
	journey, err := services.PlanJourney(ctx, req, provider, resolver)
	if err != nil {
		log.Fatal(err)
	}

	if journey == nil {
		fmt.Printf("No route between %s and %s on that day.\n", req.From, req.To)
		return
	}

	fmt.Printf("Journey will take %d minutes.\n", journey.TotalTravelTime)
	fmt.Println("Start:", journey.Stops[0].Name)
	if len(journey.Stops) > 1 {
		for _, stop := range journey.Stops[1 : len(journey.Stops)-1] {
			fmt.Println(stop.Name)
		}
		fmt.Println("End:", journey.Stops[len(journey.Stops)-1].Name)
	}
}
