package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"serenityhaven/internal/config"
	"serenityhaven/internal/database"
	"serenityhaven/internal/domain"
	"serenityhaven/internal/repository"
)

// opsjobs runs the scheduled housekeeping tasks that keep booking state
// honest: confirmed bookings whose check-in date has passed without an
// arrival are swept to no_show.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	bookingRepo := repository.NewBookingRepository(db)

	c := cron.New()
	_, err = c.AddFunc(cfg.NoShowSweepSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		swept, err := bookingRepo.MarkNoShows(ctx, domain.Midnight(time.Now()))
		if err != nil {
			log.Printf("no-show sweep failed err=%v", err)
			return
		}
		log.Printf("no-show sweep done swept=%d", swept)
	})
	if err != nil {
		log.Fatal("invalid NOSHOW_SWEEP_SPEC:", err)
	}

	log.Printf("opsjobs started sweep_spec=%q", cfg.NoShowSweepSpec)
	c.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx := c.Stop()
	<-ctx.Done()
	log.Println("opsjobs stopped")
}
