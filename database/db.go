package database

import (
	"context"
	"time"

	"rentride/config"
	"rentride/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// MongoClient is the shared MongoDB client the repositories build on.
var MongoClient *mongo.Client

// InitDB connects to MongoDB and verifies the connection with a ping
// against the primary. Startup aborts if the database is unreachable.
func InitDB() {
	logger := utils.GetLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.AppConfig.DatabaseURL))
	if err != nil {
		logger.Fatal("mongo connect failed", zap.Error(err))
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Fatal("mongo ping failed", zap.Error(err))
	}

	MongoClient = client
	logger.Info("connected to MongoDB")
}
