package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/sashabaranov/go-openai"

	"optiroute/auth"
	"optiroute/config"
	"optiroute/cronjobs"
	"optiroute/db"
	"optiroute/geocode"
	"optiroute/insights"
	"optiroute/middleware"
	"optiroute/mlmodel"
	"optiroute/nlp"
	"optiroute/routes"
)

func main() {
	// Load .env file; missing is fine outside development.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()
	cfg.Validate()

	ctx := context.Background()

	store, err := db.NewStore(ctx, cfg.Firestore.Credentials)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore: %v", err)
	}
	defer store.Close()

	var openaiClient *openai.Client
	if cfg.OpenAI.APIKey != "" {
		log.Println("OPENAI_API_KEY loaded")
		openaiClient = openai.NewClient(cfg.OpenAI.APIKey)
	} else {
		log.Println("OPENAI_API_KEY not set; insights will use the fallback text")
	}
	generator := insights.NewGenerator(openaiClient, cfg.OpenAI.Model)

	var geocoder *geocode.Geocoder
	if cfg.Maps.APIKey != "" {
		geocoder, err = geocode.New(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("Failed to create maps client: %v", err)
		}
	} else {
		log.Println("MAPS_CREDENTIALS not set; geocoding disabled")
	}

	var extractor *nlp.Extractor
	if cfg.NLP.Credentials != "" {
		extractor, err = nlp.NewExtractor(ctx, cfg.NLP.Credentials)
		if err != nil {
			log.Fatalf("Failed to create Natural Language client: %v", err)
		}
		defer extractor.Close()
	} else {
		log.Println("NATURAL_LANGUAGE_CREDENTIALS not set; location extraction disabled")
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	limiter.StartCleanup()

	scheduler := cronjobs.InitCronJobs(store, geocoder)
	defer scheduler.Stop()

	r := routes.SetupRouter(routes.Deps{
		Store:      store,
		Operations: db.NewOperationRepo(store),
		Volunteers: db.NewVolunteerRepo(store),
		JWT:        auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Expiration, cfg.JWT.RefreshExpiration),
		Generator:  generator,
		Predictor:  mlmodel.NewClient(cfg.Prediction.BaseURL),
		Geocoder:   geocoder,
		Extractor:  extractor,
		Limiter:    limiter,
	})

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
