package ledger

import "github.com/ankit/temple-ledger-go/models"

// Derive computes the pending amount and status for a record. This is the only
// place the formula exists; both the create and update paths go through it.
func Derive(totalAmount, paidAmount float64) (pendingAmount float64, status string) {
	pendingAmount = totalAmount - paidAmount
	if pendingAmount > 0 {
		return pendingAmount, models.StatusPending
	}
	return pendingAmount, models.StatusCompleted
}
