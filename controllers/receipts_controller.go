package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ankit/temple-ledger-go/access"
	"github.com/ankit/temple-ledger-go/config"
	"github.com/ankit/temple-ledger-go/ledger"
	"github.com/ankit/temple-ledger-go/middleware"
	"github.com/ankit/temple-ledger-go/receipts"
	"github.com/ankit/temple-ledger-go/utils"
)

// GenerateReceipt renders the PDF receipt for one record. Path:
// /api/receipt/:type/:id with type "donation" or "expense". When Cloudinary
// is configured, the first successful render is archived and its URL stored
// on the record; archival failures do not fail the response.
func GenerateReceipt(cfg *config.Config, stores map[string]ledger.Store, renderer *receipts.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := middleware.CurrentIdentity(c)
		if err := access.Authorize(access.OpReceipt, id); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}

		kindName := c.Param("type")
		store, ok := stores[kindName]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid receipt type"})
			return
		}
		kind := store.Kind()

		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		record, err := store.FindByID(ctx, c.Param("id"))
		if err != nil {
			writeLedgerError(c, "GenerateReceipt", kind, err)
			return
		}

		fields := receipts.Project(kind, record, time.Now())
		pdf, err := renderer.Render(ctx, fields)
		if errors.Is(err, receipts.ErrRenderFailed) {
			config.LogError("controllers", "GenerateReceipt", kind.Name, err)
			c.JSON(http.StatusBadGateway, gin.H{"message": "Receipt generation failed"})
			return
		}
		if err != nil {
			writeLedgerError(c, "GenerateReceipt", kind, err)
			return
		}

		if record.ReceiptURL == "" && utils.CloudinaryConfigured() {
			publicID := kind.Name + "-" + record.ID.Hex()
			if url, err := utils.ArchiveReceipt(pdf, publicID); err != nil {
				config.LogError("controllers", "GenerateReceipt", "archive receipt", err)
			} else if err := store.SetReceiptURL(ctx, record.ID.Hex(), url); err != nil {
				config.LogError("controllers", "GenerateReceipt", "store receipt url", err)
			}
		}

		c.Header("Content-Disposition", `inline; filename="receipt-`+record.ID.Hex()+`.pdf"`)
		c.Data(http.StatusOK, "application/pdf", pdf)
	}
}
