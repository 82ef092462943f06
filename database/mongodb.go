package database

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect establishes the MongoDB connection and returns the database
// handle. The handle is shared for the lifetime of the process and passed
// explicitly to the access layer; there is no package-level state.
func Connect(uri, name string) (*mongo.Database, error) {
	if uri == "" {
		return nil, errors.New("MONGODB_URI is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	// Ping the database
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	log.Println("🗄️ Connected to MongoDB!")
	return client.Database(name), nil
}
