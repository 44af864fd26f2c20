package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/navikt/zhotel/internal/cli"
	"github.com/navikt/zhotel/internal/config"
	"github.com/navikt/zhotel/internal/repository"
	"github.com/navikt/zhotel/internal/service"
)

func main() {
	config.LoadDotEnv()

	// Keep service logs off the menu unless asked for
	if os.Getenv("ZHOTEL_VERBOSE") == "" {
		log.SetOutput(io.Discard)
	}

	hotelConfig, err := config.GetHotelConfig()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Invalid hotel configuration: %v", err)
	}

	repo, err := repository.NewRepository(config.GetRedisConfig())
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to initialize repository: %v", err)
	}
	if closer, ok := repo.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	rooms, err := service.NewRooms(hotelConfig.Rooms)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Invalid room configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := repo.SeedRooms(ctx, rooms); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to seed rooms: %v", err)
	}

	bookingService := service.NewBookingService(hotelConfig.Name, repo)

	if err := cli.New(bookingService, os.Stdin, os.Stdout).Run(ctx); err != nil && err != context.Canceled {
		log.SetOutput(os.Stderr)
		log.Printf("Menu stopped: %v", err)
	}
}
