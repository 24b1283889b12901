package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"arogya-mitr/internal/assistant"
	"arogya-mitr/internal/chat"
	"arogya-mitr/internal/config"
	"arogya-mitr/internal/dataset"
	"arogya-mitr/internal/llm"
	"arogya-mitr/internal/offline"
	"arogya-mitr/internal/platform/netstatus"
	"arogya-mitr/internal/platform/settings"
	"arogya-mitr/internal/platform/speech"
)

func main() {
	// 1. Configuration
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.New()

	// 2. Platform services
	var settingsStore settings.Store
	var err error
	switch cfg.SettingsBackend {
	case config.SettingsRedis:
		settingsStore, err = settings.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Fatalf("Could not connect to Redis settings store: %v", err)
		}
		log.Println("Using Redis settings store.")
	default:
		settingsStore, err = settings.NewFileStore(cfg.SettingsFilePath)
		if err != nil {
			log.Fatalf("Could not open settings file: %v", err)
		}
	}

	var networkSignal netstatus.Signal
	switch cfg.NetworkMode {
	case config.NetworkOnline:
		networkSignal = netstatus.Static(true)
	case config.NetworkOffline:
		networkSignal = netstatus.Static(false)
		log.Println("Network mode pinned to offline; all answers come from local data.")
	default:
		networkSignal = netstatus.NewProbe(cfg.ProbeURL)
	}

	transcriber := speech.NewHTTPTranscriber(cfg.SpeechServiceURL)
	if cfg.SpeechServiceURL == "" {
		log.Println("Warning: SPEECH_SERVICE_URL is not set. Speech endpoints will report unsupported.")
	}

	// 3. Domain services
	store, err := dataset.Load()
	if err != nil {
		log.Fatalf("Could not load bundled health dataset: %v", err)
	}
	resolver := offline.NewResolver(store)

	// The credential may live in the settings store instead of the
	// environment; carry it over before building the client.
	if cfg.GeminiAPIKey == "" {
		if saved, err := settingsStore.Get(context.Background(), "gemini_api_key"); err == nil {
			cfg.GeminiAPIKey = saved
		}
	}
	llmClient, err := llm.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("Could not build model client: %v", err)
	}

	gateway := assistant.NewGateway(llmClient, resolver)
	chatSvc := chat.NewService(resolver, gateway, networkSignal, settingsStore, cfg.DefaultLanguage)
	chatHandler := chat.NewHandler(chatSvc)
	speechHandler := speech.NewHandler(transcriber)

	// 4. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS for frontend
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
			if r.Method == "OPTIONS" {
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Route("/api", func(r chi.Router) {
		chat.RegisterRoutes(r, chatHandler)
		speech.RegisterRoutes(r, speechHandler)
		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"status":"ok","online":%t}`, networkSignal.Online(req.Context()))
		})
	})

	fmt.Printf("Server starting on port %s...\n", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
