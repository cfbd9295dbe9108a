package ledger

import (
	"context"
	"time"

	"github.com/ankit/temple-ledger-go/access"
	"github.com/ankit/temple-ledger-go/models"
)

// Store is the mutation/query surface for one resource kind. Both the Mongo
// store and the in-memory store implement it; all writes route through
// Validate and Derive so no caller-supplied derived value ever lands in
// storage.
type Store interface {
	// Create validates the raw fields, derives the financial state, stamps
	// ownership and timestamps, and persists one new record.
	Create(ctx context.Context, raw map[string]any, owner access.Identity) (models.Record, error)

	// ListAll returns the current full snapshot in storage order.
	ListAll(ctx context.Context) ([]models.Record, error)

	// FindByID returns one record by its hex id.
	FindByID(ctx context.Context, id string) (models.Record, error)

	// Update rewrites the record's caller-settable fields and re-derives the
	// financial state, but only when the record exists and was created by the
	// requester. Either other case reports ErrNotFoundOrUnauthorized.
	Update(ctx context.Context, id string, raw map[string]any, requester access.Identity) (models.Record, error)

	// ClearAll deletes every record of the kind. The requester role is the
	// final gate: even a caller that bypassed the guard cannot purge without
	// the admin role.
	ClearAll(ctx context.Context, requesterRole string) (int64, error)

	// Summarize aggregates over current stored state; nothing is cached.
	Summarize(ctx context.Context) (models.Summary, error)

	// SetReceiptURL records the archive location of a rendered receipt.
	SetReceiptURL(ctx context.Context, id, url string) error

	Kind() Kind
}

// newRecord is the single construction path for a record: validated fields
// in, derived fields and audit stamps applied, never the other way around.
func newRecord(kind Kind, f Fields, owner access.Identity, now time.Time) models.Record {
	pending, status := Derive(f.TotalAmount, f.PaidAmount)
	return models.Record{
		Counterparty:  f.Counterparty,
		Label:         f.Label,
		OccurredOn:    f.OccurredOn,
		TotalAmount:   f.TotalAmount,
		PaidAmount:    f.PaidAmount,
		PendingAmount: pending,
		Status:        status,
		Contact:       f.Contact,
		ReceiptID:     f.ReceiptID,
		PaymentMode:   f.PaymentMode,
		CreatedBy:     owner.Username,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// applyFields rewrites the caller-settable fields on an existing record and
// re-derives the financial state through the same policy the create path
// uses. Identity, ownership and CreatedAt are left untouched.
func applyFields(r *models.Record, f Fields, now time.Time) {
	pending, status := Derive(f.TotalAmount, f.PaidAmount)
	r.Counterparty = f.Counterparty
	r.Label = f.Label
	r.OccurredOn = f.OccurredOn
	r.TotalAmount = f.TotalAmount
	r.PaidAmount = f.PaidAmount
	r.PendingAmount = pending
	r.Status = status
	r.Contact = f.Contact
	r.ReceiptID = f.ReceiptID
	r.PaymentMode = f.PaymentMode
	r.UpdatedAt = now
}
