package main

import (
	"context"
	"runtime"
	"time"

	"stockdock/config"
	"stockdock/controller"
	"stockdock/database"
	"stockdock/routes"
	"stockdock/scheduler"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())
	sysConfigs, err := config.LoadConfigs()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}

	if sysConfigs.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	controller.ApplyLogLevel(sysConfigs.Runtime.GetConfig())

	var db *mongo.Database
	if sysConfigs.Config.MongoUri != "" {
		client, mongoDb, err := database.InitMongoClient(sysConfigs)
		if err != nil {
			log.Fatal().Err(err).Msg("MongoDB initialization failed")
		}
		db = mongoDb
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(ctx)
		}()
	}

	if sysConfigs.Config.RedisUrl != "" {
		if err := database.InitRedis(sysConfigs.Config.RedisUrl); err != nil {
			log.Error().Err(err).Msg("Redis unavailable, chart cache stays local")
		}
	}

	svcs := routes.BuildServices(sysConfigs, db)

	if svcs.Stock != nil && db != nil {
		quoteScheduler := scheduler.NewCurrentStockScheduler(svcs.Stock)
		if err := quoteScheduler.Register(scheduler.CurrentStockSpec); err != nil {
			log.Fatal().Err(err).Msg("Scheduler registration failed")
		}
		quoteScheduler.Start()
		defer quoteScheduler.Stop()
	}

	router := routes.SetupRouter(sysConfigs, svcs)

	port := sysConfigs.Config.Port
	log.Info().Str("port", port).Msg("Server starting")
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
}

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.With().Logger()
}
