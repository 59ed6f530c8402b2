package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"github.com/grandoria/booking-engine/internal/cache"
	"github.com/grandoria/booking-engine/internal/config"
	"github.com/grandoria/booking-engine/internal/repository"
	"github.com/grandoria/booking-engine/internal/service"
)

func main() {
	log.Println("Starting booking status scheduler...")

	// Load .env before viper so cron/db settings can come from a file
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	bookingRepo := repository.NewBookingRepository(db)
	summaryCache := cache.NewRedisSummaryCache(redisClient)
	bookingService := service.NewBookingService(bookingRepo, summaryCache, nil, cfg)

	location, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		log.Printf("Unknown timezone %q, using local: %v", cfg.Scheduler.Timezone, err)
		location = time.Local
	}

	// Initialize cron scheduler
	c := cron.New(cron.WithSeconds(), cron.WithLocation(location))

	// Periodically persist the auto-complete correction for bookings
	// whose event window has elapsed.
	_, err = c.AddFunc(cfg.Scheduler.CronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		result, err := bookingService.ReconcileStatuses(ctx)
		if err != nil {
			log.Printf("Status reconciliation failed: %v", err)
			return
		}
		log.Printf("Status reconciliation: scanned=%d completed=%d", result.Scanned, result.Completed)
	})
	if err != nil {
		log.Fatalf("Error scheduling status reconciliation job: %v", err)
	}

	// Start the scheduler
	c.Start()
	log.Println("Scheduler started successfully")

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down scheduler...")
	<-c.Stop().Done()
	log.Println("Scheduler stopped")
}
