package main

import (
	"context"
	"log"

	"bizhub-be/internal/config"
	"bizhub-be/internal/pkg/logger"
	"bizhub-be/internal/pkg/mailer"
	"bizhub-be/internal/repository/unitofwork"
	"bizhub-be/internal/service"
	"bizhub-be/pkg/batch"
	"bizhub-be/pkg/database"
	"bizhub-be/pkg/gemini"
	pktNats "bizhub-be/pkg/nats"

	"github.com/fatih/color"
)

// Triggers one daily news research run from the command line. The run is
// idempotent, companies already covered for today are skipped.
func main() {
	cfg := config.Load()

	db, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Error: Failed to connect to database: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewIsolatedLogger(cfg.App.LogFilePath)

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.App.ClientURL,
	)

	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		color.Yellow("Warning: NATS unavailable, refresh events will not be published: %v", err)
		natsPub = nil
	}

	geminiClient := gemini.NewClient(cfg.Keys.GoogleGemini)
	orchestrator := batch.NewOrchestrator(batch.UTCClock{}, 4, 0)

	newsService := service.NewNewsService(
		uowFactory,
		geminiClient,
		orchestrator,
		natsPub,
		emailService,
		cfg.News.SummaryEmail,
		sysLogger,
	)

	color.Cyan("🚀 Starting daily company news run")

	summary, err := newsService.RunDaily(context.Background())
	if err != nil {
		color.Red("Run failed: %v", err)
		log.Fatal(err)
	}

	color.Green("Run complete for %s", summary.Date)
	color.Green("  processed: %d", summary.Total)
	color.Green("  succeeded: %d", summary.Succeeded)
	if summary.Skipped > 0 {
		color.Yellow("  skipped:   %d (already covered today)", summary.Skipped)
	}
	if summary.Failed > 0 {
		color.Red("  failed:    %d (see logs)", summary.Failed)
	}
}
