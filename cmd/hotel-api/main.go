package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/navikt/zhotel/internal/api"
	"github.com/navikt/zhotel/internal/config"
	"github.com/navikt/zhotel/internal/repository"
	"github.com/navikt/zhotel/internal/service"
	"github.com/navikt/zhotel/internal/web"
)

func main() {
	config.LoadDotEnv()

	hotelConfig, err := config.GetHotelConfig()
	if err != nil {
		log.Fatalf("Invalid hotel configuration: %v", err)
	}

	// Initialize the repository using the factory
	repo, err := repository.NewRepository(config.GetRedisConfig())
	if err != nil {
		log.Fatalf("Failed to initialize repository: %v", err)
	}

	// Close the Redis connection on exit
	if closer, ok := repo.(interface{ Close() error }); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				log.Printf("Error closing Redis connection: %v", err)
			}
		}()
	}

	rooms, err := service.NewRooms(hotelConfig.Rooms)
	if err != nil {
		log.Fatalf("Invalid room configuration: %v", err)
	}
	if err := repo.SeedRooms(context.Background(), rooms); err != nil {
		log.Fatalf("Failed to seed rooms: %v", err)
	}
	log.Printf("Serving %d rooms for %s", len(rooms), hotelConfig.Name)

	bookingService := service.NewBookingService(hotelConfig.Name, repo)

	// Stream room changes to browser clients
	events := web.NewEventStream()
	bookingService.RegisterUpdateCallback(events.NotifyRoomChange)

	// Readiness follows the external store when there is one
	pinger, _ := repo.(api.Pinger)
	mux := api.SetupRoutes(bookingService, pinger)
	events.SetupRoutes(mux)

	port := config.GetServerConfig().Port

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      web.WrapMuxWithMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Disable write timeout for SSE connections
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("Starting zhotel server on port %s", port)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatalf("Error starting server: %v", err)

	case <-shutdown:
		log.Println("Shutting down server...")

		// Close event streams first so Shutdown does not wait on them
		events.Shutdown()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			log.Fatalf("Error shutting down server: %v", err)
		}

		log.Println("Server gracefully stopped")
	}
}
