package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/bedtime-patrol/bedtime-bot/internal/config"
	"github.com/bedtime-patrol/bedtime-bot/internal/database"
	"github.com/bedtime-patrol/bedtime-bot/internal/domain/service"
	"github.com/bedtime-patrol/bedtime-bot/internal/handlers"
	"github.com/bedtime-patrol/bedtime-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	slackClient := slack.New(cfg.SlackBotToken)

	dm := database.NewInstance(db)
	services := service.New(dm, slackClient, cfg)

	services.Scheduler.Start()
	defer services.Scheduler.Stop()

	handler := handlers.New(slackClient, services.Curfew, cfg)

	http.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	http.HandleFunc("/slack/events", handler.HandleEvents)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
