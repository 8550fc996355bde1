package main

import (
	"flag"
	"log"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
)

func main() {
	steps := flag.Int("steps", 0, "number of migrations to roll back with down; 0 reverts all")
	flag.Parse()

	direction := flag.Arg(0)
	if direction == "" {
		direction = "up"
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXDB(cfg.DB, cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	switch direction {
	case "up":
		err = database.RunMigrations(db)
	case "down":
		err = database.RollbackMigrations(db, *steps)
	default:
		l.Fatal("Unknown direction, expected up or down", zap.String("direction", direction))
	}
	if err != nil {
		l.Fatal("Migration failed", zap.String("direction", direction), zap.Error(err))
	}
}
