package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"petcare/internal/database"
	"petcare/internal/repository"
)

// Marks upcoming appointments whose date has passed as completed. Meant to
// run from cron once a day.
func main() {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	repo := repository.NewAppointmentRepository(db)

	today := time.Now().Format("2006-01-02")
	completed, err := repo.MarkElapsedCompleted(context.Background(), today)
	if err != nil {
		log.Fatalf("appointment sweep failed: %v", err)
	}

	log.Printf("appointment sweep completed: appointments=%d", completed)
}
