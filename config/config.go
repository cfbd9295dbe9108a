package config

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Config holds runtime settings and, when Mongo is configured, the shared
// client handle the controllers use.
type Config struct {
	Port          string
	MongoURI      string
	DBName        string
	JWTSecret     string
	TokenTTL      time.Duration
	AdminPassword string

	// receipt rendering
	RenderCmd       string
	ReceiptTemplate string

	MongoClient *mongo.Client
}

// Load reads .env (best effort) and the environment. MONGODB_URI may be
// empty; callers then fall back to the in-memory stores.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getenv("PORT", "3000"),
		MongoURI:        os.Getenv("MONGODB_URI"),
		DBName:          getenv("DB_NAME", "temple"),
		JWTSecret:       getenv("JWT_SECRET", "your_jwt_secret_key"),
		TokenTTL:        time.Hour,
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
		RenderCmd:       getenv("RECEIPT_RENDER_CMD", "python3 modify_pdf.py"),
		ReceiptTemplate: getenv("RECEIPT_TEMPLATE", "template.pdf"),
	}
	return cfg
}

// ConnectMongo dials the configured MongoDB deployment and verifies it with a
// ping before any request traffic depends on it.
func (c *Config) ConnectMongo(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(c.MongoURI))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return err
	}
	c.MongoClient = client
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
