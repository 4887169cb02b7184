package config

import (
	"context"
	"fmt"
	"time"

	"Restaurant-Management-Backend/internal/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const databaseName = "restaurant_management"

// ConnectDB opens the shared client against the cluster and verifies the
// connection with a ping before any route is served. Startup fails fast
// on an unreachable store instead of serving without one.
func ConnectDB() (*mongo.Database, error) {
	uri := utils.GetConfig("DB_URI")
	if uri == "" {
		uri = fmt.Sprintf(
			"mongodb+srv://%s:%s@cluster0.a2ulpwj.mongodb.net/?retryWrites=true&w=majority&appName=Cluster0",
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASS"),
		)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, fmt.Errorf("store connection failed: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("store ping failed: %w", err)
	}

	return client.Database(databaseName), nil
}
