package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mentormatch/internal/config"
	"mentormatch/internal/db"
	"mentormatch/internal/email"
	"mentormatch/internal/events"
	"mentormatch/internal/jobs"
	"mentormatch/internal/logger"
	"mentormatch/internal/server"
)

// @title MentorMatch API
// @version 1.0
// @description Booking marketplace for mentoring sessions.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()
	logger.Info("Starting MentorMatch")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	emailService := email.New(email.Config{
		From:      cfg.EmailFrom,
		FromName:  cfg.EmailFromName,
		SMTPHost:  cfg.SMTPHost,
		SMTPPort:  cfg.SMTPPort,
		SMTPUser:  cfg.SMTPUser,
		SMTPPass:  cfg.SMTPPass,
		RedisAddr: cfg.RedisAddr,
	})
	defer emailService.Close()

	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kp, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			logger.Fatalf("Failed to create event publisher: %v", err)
		}
		publisher = kp
		logger.Info("Publishing booking events", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}
	defer publisher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go emailService.Start(ctx)

	srv := server.New(database, cfg, emailService, publisher)

	scheduler := jobs.NewScheduler()
	reminders := jobs.NewReminders(srv.Bookings, srv.Notifier)
	if err := scheduler.Every(cfg.ReminderSchedule, "session-reminders", func(ctx context.Context) {
		reminders.Run(ctx)
	}); err != nil {
		logger.Fatalf("Failed to schedule reminders: %v", err)
	}
	if err := scheduler.Every("@every 1m", "email-queue-length", func(ctx context.Context) {
		emailService.QueueLength(ctx)
	}); err != nil {
		logger.Fatalf("Failed to schedule queue gauge: %v", err)
	}
	scheduler.Start()

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		serverErr <- srv.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErr:
		if err != nil {
			logger.Errorf("Server error: %v", err)
		}
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}
	if err := scheduler.Stop(shutdownCtx); err != nil {
		logger.Errorf("Error stopping scheduler: %v", err)
	}
	cancel()

	logger.Info("Server stopped")
}
