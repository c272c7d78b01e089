package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/moodtune-labs/moodtune/backend/internal/adapters/gemini"
	"github.com/moodtune-labs/moodtune/backend/internal/adapters/rest"
	"github.com/moodtune-labs/moodtune/backend/internal/adapters/spotify"
	"github.com/moodtune-labs/moodtune/backend/internal/adapters/weather"
	"github.com/moodtune-labs/moodtune/backend/internal/core/ports"
	"github.com/moodtune-labs/moodtune/backend/internal/core/services"
)

func main() {
	// 1. Configuration (Environment Variables)
	// Missing credentials must not take request handling down: each adapter
	// that cannot be built stays nil and the gateway serves its fallbacks.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	geminiKey := os.Getenv("GEMINI_API_KEY")
	spotifyID := os.Getenv("SPOTIFY_CLIENT_ID")
	spotifySecret := os.Getenv("SPOTIFY_CLIENT_SECRET")
	weatherKey := os.Getenv("WEATHER_API_KEY")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// 2. Initialize "Driven" Adapters (The Tools)
	var analyzer ports.MoodAnalyzer
	if geminiKey == "" {
		log.Println("WARN main: GEMINI_API_KEY not set, analysis degrades to defaults")
	} else {
		client, err := gemini.NewClient(context.Background(), geminiKey)
		if err != nil {
			log.Printf("WARN main: gemini client unavailable: %v", err)
		} else {
			analyzer = client
		}
	}

	var catalog ports.MusicCatalog
	var taste ports.TasteSource
	if spotifyID == "" || spotifySecret == "" {
		log.Println("WARN main: Spotify credentials not set, catalog lookups degrade to defaults")
	} else {
		spotifyClient := spotify.NewClient(spotifyID, spotifySecret)
		catalog = spotifyClient
		taste = spotifyClient
	}

	var conditions ports.WeatherProvider
	if weatherKey == "" {
		log.Println("WARN main: WEATHER_API_KEY not set, weather context disabled")
	} else {
		conditions = weather.NewClient(weatherKey, "")
	}

	// 3. Initialize Core Logic (Dependency Injection)
	// The compiler guarantees each adapter implements its port.
	svc := services.NewGateway(analyzer, catalog, taste, conditions)

	// 4. Initialize "Driving" Adapter (The Interface)
	handler := rest.NewHandler(svc)

	// 5. Start the Server
	log.Printf("MoodTune API is running on http://localhost:%s", port)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatal(err)
		}
	case <-ctx.Done():
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}
}
