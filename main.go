package main

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/joho/godotenv"
	"github.com/sashabaranov/go-openai"

	"go-firewatch/cronjobs"
	"go-firewatch/db"
	"go-firewatch/firms"
	"go-firewatch/geocode"
	"go-firewatch/routes"
	"go-firewatch/verification"
	"go-firewatch/weather"
)

func main() {
	// Load .env file; falls back to the process environment in production.
	if err := godotenv.Load(); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	// Init firestore
	firestoreClient, err := db.InitFirestore()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore: %v", err)
	}
	defer db.CloseFirestore() // Firestore client is closed on exit
	store := db.NewStore(firestoreClient)

	firmsClient := firms.NewClient(os.Getenv("FIRMS_API_KEY"))
	weatherClient := weather.NewClient(os.Getenv("OPENWEATHER_API_KEY"))

	mapsClient, err := geocode.NewClient(os.Getenv("MAPS_CREDENTIALS"))
	if err != nil {
		log.Fatalf("Failed to create maps client: %v", err)
	}
	if mapsClient == nil {
		log.Warn("MAPS_CREDENTIALS not set, reports will not be reverse-geocoded")
	}

	var openaiClient *openai.Client
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		openaiClient = openai.NewClient(apiKey)
		log.Info("OPENAI_API_KEY loaded, ranger briefings enabled")
	}

	engine := verification.NewEngine(store, firmsClient, weatherClient, verification.LogNotifier{})

	// Initialize cron jobs
	cronjobs.InitCronJobs(engine)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(store, engine, firmsClient, weatherClient, mapsClient, openaiClient)
	if err := r.Run(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
