package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"lusolens/server/config"
	"lusolens/server/internal/api"
	"lusolens/server/internal/cache"
	"lusolens/server/internal/generator"
	"lusolens/server/internal/ine"
	"lusolens/server/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	// Optional .env for local development
	if err := godotenv.Load(); err == nil {
		logger.Info("Loaded environment from .env")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	clock := clockwork.NewRealClock()

	var rng *rand.Rand
	if cfg.Generator.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Generator.Seed))
		logger.WithField("seed", cfg.Generator.Seed).Info("Using fixed generator seed")
	}
	gen := generator.New(config.Municipalities, rng, clock)

	endpoints := ine.Endpoints{
		Indicator: cfg.INE.IndicatorURL,
		Metadata:  cfg.INE.MetadataURL,
		Catalog:   cfg.INE.CatalogURL,
	}
	ineClient := ine.NewClient(endpoints, cfg.INE.APIKey, time.Duration(cfg.INE.TimeoutSeconds)*time.Second, logger)

	queryCache, err := cache.New(cfg.Cache.RedisURL, time.Duration(cfg.Cache.TTLMinutes)*time.Minute, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize query cache")
	}
	defer queryCache.Close()
	if queryCache.Enabled() {
		logger.Info("INE query cache enabled")
	}

	svc := service.New(gen, ineClient, queryCache, clock, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	api.SetupRoutes(router, svc, logger)

	logger.Infof("Starting server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
