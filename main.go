package main

import (
	"context"

	"github.com/ankit/temple-ledger-go/config"
	"github.com/ankit/temple-ledger-go/identity"
	"github.com/ankit/temple-ledger-go/ledger"
	"github.com/ankit/temple-ledger-go/receipts"
	"github.com/ankit/temple-ledger-go/routes"
)

func main() {
	cfg := config.Load()
	log := config.GetLogger()

	var stores routes.Stores
	if cfg.MongoURI != "" {
		if err := cfg.ConnectMongo(context.Background()); err != nil {
			log.Fatalf("MongoDB connection error: %v", err)
		}
		log.Info("MongoDB connected")

		db := cfg.MongoClient.Database(cfg.DBName)
		stores = routes.Stores{
			Donations: ledger.NewMongoStore(db, ledger.Donations),
			Expenses:  ledger.NewMongoStore(db, ledger.Expenses),
			Users:     identity.NewMongoStore(db),
		}
	} else {
		log.Warn("MONGODB_URI not set, running with in-memory stores; data will not survive a restart")
		stores = routes.Stores{
			Donations: ledger.NewMemoryStore(ledger.Donations),
			Expenses:  ledger.NewMemoryStore(ledger.Expenses),
			Users:     identity.NewMemoryStore(),
		}
	}

	if err := identity.EnsureDefaultAdmin(context.Background(), stores.Users, cfg.AdminPassword); err != nil {
		log.Fatalf("bootstrap admin user: %v", err)
	}

	renderer := &receipts.Renderer{Cmd: cfg.RenderCmd, Template: cfg.ReceiptTemplate}

	r := routes.SetupRouter(cfg, stores, renderer)
	log.Infof("server running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
