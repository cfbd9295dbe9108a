package ledger

import (
	"time"

	"github.com/ankit/temple-ledger-go/models"
)

// Kind describes one resource kind. Donations and expenses store the same
// shape but speak different field names on the wire, so every spot that reads
// or writes kind-specific JSON goes through this descriptor.
type Kind struct {
	Name             string // "donation" or "expense"
	Collection       string
	CounterpartyName string // wire name for the counterparty field
	LabelName        string // wire name for the label field
	DateName         string // wire name for the occurrence date
}

var (
	Donations = Kind{
		Name:             "donation",
		Collection:       "donations",
		CounterpartyName: "donor",
		LabelName:        "eventName",
		DateName:         "eventDate",
	}
	Expenses = Kind{
		Name:             "expense",
		Collection:       "expenses",
		CounterpartyName: "recipient",
		LabelName:        "purpose",
		DateName:         "date",
	}
)

// Render maps a stored record to its kind-specific JSON shape.
func (k Kind) Render(r models.Record) map[string]any {
	out := map[string]any{
		"id":               r.ID.Hex(),
		k.CounterpartyName: r.Counterparty,
		"totalAmount":      r.TotalAmount,
		"paidAmount":       r.PaidAmount,
		"pendingAmount":    r.PendingAmount,
		"status":           r.Status,
		"paymentMode":      r.PaymentMode,
		"createdBy":        r.CreatedBy,
		"createdAt":        r.CreatedAt.UTC().Format(time.RFC3339),
		"updatedAt":        r.UpdatedAt.UTC().Format(time.RFC3339),
	}
	out[k.LabelName] = r.Label
	out[k.DateName] = r.OccurredOn.UTC().Format(time.RFC3339)
	if r.Contact != "" {
		out["contact"] = r.Contact
	}
	if r.ReceiptID != "" {
		out["receiptId"] = r.ReceiptID
	}
	if r.ReceiptURL != "" {
		out["receiptUrl"] = r.ReceiptURL
	}
	return out
}

// RenderAll maps a snapshot, keeping the empty list instead of null.
func (k Kind) RenderAll(records []models.Record) []map[string]any {
	out := make([]map[string]any, 0, len(records))
	for _, r := range records {
		out = append(out, k.Render(r))
	}
	return out
}
