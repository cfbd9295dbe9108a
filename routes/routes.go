package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ankit/temple-ledger-go/config"
	"github.com/ankit/temple-ledger-go/controllers"
	"github.com/ankit/temple-ledger-go/identity"
	"github.com/ankit/temple-ledger-go/ledger"
	"github.com/ankit/temple-ledger-go/middleware"
	"github.com/ankit/temple-ledger-go/receipts"
)

// Stores bundles the per-kind ledger stores plus the user store.
type Stores struct {
	Donations ledger.Store
	Expenses  ledger.Store
	Users     identity.Store
}

func SetupRouter(cfg *config.Config, stores Stores, renderer *receipts.Renderer) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allow-all, same posture as the original

	auth := middleware.RequireAuth(cfg)

	// auth
	r.POST("/api/register", controllers.Register(cfg, stores.Users))
	r.POST("/api/login", controllers.Login(cfg, stores.Users))

	byType := map[string]ledger.Store{
		ledger.Donations.Name: stores.Donations,
		ledger.Expenses.Name:  stores.Expenses,
	}

	// donations and expenses share one handler set
	for _, store := range []ledger.Store{stores.Donations, stores.Expenses} {
		g := r.Group("/api/" + store.Kind().Collection)
		{
			g.GET("", controllers.ListRecords(store))
			g.GET("/summary", controllers.RecordsSummary(store))
			g.GET("/admin", auth, controllers.ListRecordsAdmin(store))
			g.POST("", auth, controllers.CreateRecord(store))
			g.PUT("/:id", auth, controllers.UpdateRecord(store))
			g.POST("/clear", auth, controllers.ClearRecords(store))
		}
	}

	r.GET("/api/receipt/:type/:id", auth, controllers.GenerateReceipt(cfg, byType, renderer))

	return r
}
