package main

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/DHAIRYADHOLU/Metrosync/internal/account"
	"github.com/DHAIRYADHOLU/Metrosync/internal/config"
	"github.com/DHAIRYADHOLU/Metrosync/internal/geocode"
	"github.com/DHAIRYADHOLU/Metrosync/internal/handlers"
	"github.com/DHAIRYADHOLU/Metrosync/internal/maps"
	"github.com/DHAIRYADHOLU/Metrosync/internal/metrics"
	"github.com/DHAIRYADHOLU/Metrosync/internal/planner"
	"github.com/DHAIRYADHOLU/Metrosync/internal/suggest"
)

// mongoPinger adapts the Mongo client to the health handler.
type mongoPinger struct {
	client *mongo.Client
}

func (p mongoPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Connect to MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Failed to disconnect from MongoDB: %v", err)
		}
	}()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}
	log.Println("Connection successful")

	db := client.Database(cfg.MongoDatabase)
	store := account.NewMongoStore(db)
	if err := store.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	// Metrics
	collector := metrics.NewCollector()
	if cfg.MetricsAddr != "" {
		go collector.Serve(cfg.MetricsAddr)
	}

	// Mapping-provider client and the planning pipeline
	mapsClient := maps.NewClient(cfg.MapsBaseURL, cfg.MapsAPIKey, nil)
	planHandler := handlers.NewPlanHandler(
		planner.NewPlanner(mapsClient),
		suggest.NewProvider(mapsClient),
		geocode.NewResolver(mapsClient),
		collector,
	)

	authHandler := handlers.NewAuthHandler(account.NewService(store), collector)
	healthHandler := handlers.NewHealthHandler(mongoPinger{client: client})

	r := handlers.NewRouter(authHandler, planHandler, healthHandler)

	addr := ":" + strconv.Itoa(cfg.Port)
	log.Printf("Server running on port %d", cfg.Port)
	log.Println("Account endpoints:")
	log.Println("  POST /signup")
	log.Println("  POST /login")
	log.Println("Planning endpoints:")
	log.Println("  POST /api/plan")
	log.Println("  GET  /api/suggest")
	log.Println("  POST /api/suggest/select")
	log.Println("  GET  /api/geocode/reverse")
	log.Println("  GET  /api/state")
	log.Println("Health:")
	log.Println("  GET  /health")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
