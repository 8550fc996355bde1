package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"trivia-api/internal/adapter"
	"trivia-api/internal/cache"
	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/logger"
	"trivia-api/internal/repository"
	"trivia-api/internal/seed"

	"go.uber.org/zap"
)

const defaultSeedFile = "seed/trivia.yaml"

func main() {
	seedFile := flag.String("file", defaultSeedFile, "path of the YAML seed file")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting seeding process...", zap.String("file", *seedFile))
	file, err := seed.LoadFile(*seedFile)
	if err != nil {
		log.Fatal("Failed to load seed file", zap.Error(err))
	}

	db, err := database.NewSQLXDB(cfg.DB, cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	res, err := seed.Apply(ctx, repository.NewStore(db), file)
	if err != nil {
		log.Fatal("Seeding failed, transaction rolled back", zap.Error(err))
	}

	// New categories must show up before the cached mapping expires.
	if cfg.Redis.Enabled && res.CategoriesCreated > 0 {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Warn("Could not connect to Redis to invalidate the category mapping", zap.Error(err))
		} else {
			defer redisClient.Close()
			if err := adapter.NewRedisCacheAdapter(redisClient).Delete(ctx, cache.CategoryMappingKey()); err != nil {
				log.Warn("Failed to invalidate the category mapping", zap.Error(err))
			}
		}
	}

	log.Info("Seeding process completed",
		zap.Int("categories_created", res.CategoriesCreated),
		zap.Int("categories_skipped", res.CategoriesSkipped),
		zap.Int("questions_created", res.QuestionsCreated),
	)
}
