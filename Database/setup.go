package Database

import (
	"context"
	"fmt"
	"log"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"
)

// Global database client, initialized once at startup.
var Client *db.Client
var ctx = context.Background()

// Connect initializes the Firebase app and the Realtime Database client.
// Credentials and database URL come from the environment so the same binary
// runs against staging and production projects.
func Connect() error {
	credFile := os.Getenv("FIREBASE_CREDENTIALS_FILE")
	if credFile == "" {
		credFile = "./firebase-key.json"
	}
	databaseURL := os.Getenv("FIREBASE_DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("FIREBASE_DATABASE_URL is not set")
	}

	opt := option.WithCredentialsFile(credFile)
	conf := &firebase.Config{DatabaseURL: databaseURL}

	app, err := firebase.NewApp(ctx, conf, opt)
	if err != nil {
		return fmt.Errorf("error initializing Firebase app: %v", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return fmt.Errorf("error getting Database client: %v", err)
	}

	Client = client
	log.Println("Firebase initialized successfully")
	return nil
}
