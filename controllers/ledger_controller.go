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
	"github.com/ankit/temple-ledger-go/utils"
)

// Handlers below are generic over the resource kind: the same set serves
// /api/donations and /api/expenses, instantiated with the matching store.

func writeLedgerError(c *gin.Context, funcName string, kind ledger.Kind, err error) {
	var verr *ledger.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid " + kind.Name + " data",
			"details": verr.Reason,
		})
	case errors.Is(err, ledger.ErrNotFoundOrUnauthorized):
		c.JSON(http.StatusNotFound, gin.H{"message": kind.Name + " not found or unauthorized"})
	case errors.Is(err, access.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
	case errors.Is(err, access.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
	default:
		// storage and other internal failures: logged in full, reported generically
		config.LogError("controllers", funcName, kind.Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error processing " + kind.Name + " request"})
	}
}

// ---------------- LIST ----------------
func ListRecords(store ledger.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind := store.Kind()
		if err := access.Authorize(access.OpList, middleware.CurrentIdentity(c)); err != nil {
			writeLedgerError(c, "ListRecords", kind, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		records, err := store.ListAll(ctx)
		if err != nil {
			writeLedgerError(c, "ListRecords", kind, err)
			return
		}

		if len(records) == 0 {
			c.JSON(http.StatusOK, kind.RenderAll(records))
			return
		}

		// --- Pick the most recently updated record ---
		latest := records[0]
		for _, r := range records {
			if r.UpdatedAt.After(latest.UpdatedAt) {
				latest = r
			}
		}

		// --- Generate ETag from latest record ---
		etag := utils.GenerateETag(latest.ID, latest.UpdatedAt)
		if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)
		c.Header("Last-Modified", latest.UpdatedAt.UTC().Format(http.TimeFormat))

		c.JSON(http.StatusOK, kind.RenderAll(records))
	}
}

// ---------------- LIST (ADMIN) ----------------
func ListRecordsAdmin(store ledger.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind := store.Kind()
		if err := access.Authorize(access.OpAdminList, middleware.CurrentIdentity(c)); err != nil {
			writeLedgerError(c, "ListRecordsAdmin", kind, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		records, err := store.ListAll(ctx)
		if err != nil {
			writeLedgerError(c, "ListRecordsAdmin", kind, err)
			return
		}
		c.JSON(http.StatusOK, kind.RenderAll(records))
	}
}

// ---------------- CREATE ----------------
func CreateRecord(store ledger.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind := store.Kind()
		id := middleware.CurrentIdentity(c)
		if err := access.Authorize(access.OpCreate, id); err != nil {
			writeLedgerError(c, "CreateRecord", kind, err)
			return
		}

		var raw map[string]any
		if err := c.ShouldBindJSON(&raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid " + kind.Name + " data", "details": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		record, err := store.Create(ctx, raw, *id)
		if err != nil {
			writeLedgerError(c, "CreateRecord", kind, err)
			return
		}
		c.JSON(http.StatusCreated, kind.Render(record))
	}
}

// ---------------- UPDATE ----------------
func UpdateRecord(store ledger.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind := store.Kind()
		id := middleware.CurrentIdentity(c)
		if err := access.Authorize(access.OpUpdate, id); err != nil {
			writeLedgerError(c, "UpdateRecord", kind, err)
			return
		}

		var raw map[string]any
		if err := c.ShouldBindJSON(&raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid " + kind.Name + " data", "details": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		record, err := store.Update(ctx, c.Param("id"), raw, *id)
		if err != nil {
			writeLedgerError(c, "UpdateRecord", kind, err)
			return
		}
		c.JSON(http.StatusOK, kind.Render(record))
	}
}

// ---------------- CLEAR ----------------
func ClearRecords(store ledger.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind := store.Kind()
		id := middleware.CurrentIdentity(c)
		if err := access.Authorize(access.OpClear, id); err != nil {
			writeLedgerError(c, "ClearRecords", kind, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		count, err := store.ClearAll(ctx, id.Role)
		if err != nil {
			writeLedgerError(c, "ClearRecords", kind, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "All " + kind.Collection + " cleared",
			"count":   count,
		})
	}
}

// ---------------- SUMMARY ----------------
func RecordsSummary(store ledger.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind := store.Kind()
		if err := access.Authorize(access.OpSummary, middleware.CurrentIdentity(c)); err != nil {
			writeLedgerError(c, "RecordsSummary", kind, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		summary, err := store.Summarize(ctx)
		if err != nil {
			writeLedgerError(c, "RecordsSummary", kind, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}
