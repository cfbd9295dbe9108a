// Package receipts turns stored records into rendered PDF receipts. The
// drawing itself is done by an external renderer process; this package owns
// the field projection and the process/scratch-file contract.
package receipts

import (
	"fmt"
	"strings"
	"time"

	"github.com/ankit/temple-ledger-go/ledger"
	"github.com/ankit/temple-ledger-go/models"
)

const displayDateLayout = "02-01-2006"

// Project flattens a record into the display-ready field map the renderer
// consumes. Pure and deterministic; no layout or drawing happens here.
func Project(kind ledger.Kind, r models.Record, issuedAt time.Time) map[string]string {
	fields := map[string]string{
		"type":                 kind.Name,
		kind.CounterpartyName:  r.Counterparty,
		kind.LabelName:         r.Label,
		kind.DateName:          r.OccurredOn.Format(displayDateLayout),
		"contact":              orNA(r.Contact),
		"receiptId":            orNA(r.ReceiptID),
		"paymentMode":          capitalize(r.PaymentMode),
		"totalAmount":          rupees(r.TotalAmount),
		"paidAmount":           rupees(r.PaidAmount),
		"pendingAmount":        rupees(r.PendingAmount),
		"status":               capitalize(r.Status),
		"issueDate":            issuedAt.Format(displayDateLayout),
	}
	return fields
}

func rupees(amount float64) string {
	return fmt.Sprintf("Rs.%.2f", amount)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
