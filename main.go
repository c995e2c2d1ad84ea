// main.go
package main

import (
	"log"

	"spa-booking/cmd"
	"spa-booking/internal/data/repository"
	"spa-booking/internal/wire"
	"spa-booking/pkg/database"
	"spa-booking/pkg/kafka"
	"spa-booking/pkg/utils"
	"spa-booking/pkg/vnpay"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Connect to Redis (wizard draft sessions)
	rdb, err := database.InitRedis(config.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer rdb.Close()

	logger.Info("Redis connected successfully")

	// Kafka producer for booking events, optional
	var producer *kafka.Producer
	if len(config.Kafka.Brokers) > 0 {
		producer, err = kafka.NewProducer(config.Kafka.Brokers, logger)
		if err != nil {
			logger.Fatal("Failed to create Kafka producer", zap.Error(err))
		}
		defer producer.Close()
		logger.Info("Kafka producer ready", zap.Strings("brokers", config.Kafka.Brokers))
	} else {
		logger.Info("Kafka brokers not configured, event publishing disabled")
	}

	// VNPay gateway client
	gateway := vnpay.NewClient(
		config.VNPay.TmnCode,
		config.VNPay.HashSecret,
		config.VNPay.PaymentURL,
		config.VNPay.ReturnURL,
	)

	// Initialize all repositories
	repos := repository.NewRepository(db, rdb, config.Redis, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, producer, gateway, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
