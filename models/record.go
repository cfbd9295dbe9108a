package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Record status values, derived from the amounts and never set by callers.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Payment modes accepted on a record. Absent input defaults to cash.
const (
	PaymentCash   = "cash"
	PaymentOnline = "online"
	PaymentCheque = "cheque"
	PaymentOther  = "other"
)

// Record is one ledger entry. Donations and expenses share this shape; the
// kind-specific wire names (donor vs recipient, eventName vs purpose) are
// applied by the ledger package when reading and writing JSON.
type Record struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Counterparty  string             `bson:"counterparty"`
	Label         string             `bson:"label"`
	OccurredOn    time.Time          `bson:"occurred_on"`
	TotalAmount   float64            `bson:"total_amount"`
	PaidAmount    float64            `bson:"paid_amount"`
	PendingAmount float64            `bson:"pending_amount"`
	Status        string             `bson:"status"`
	Contact       string             `bson:"contact,omitempty"`
	ReceiptID     string             `bson:"receipt_id,omitempty"`
	PaymentMode   string             `bson:"payment_mode"`
	ReceiptURL    string             `bson:"receipt_url,omitempty"`
	CreatedBy     string             `bson:"created_by"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

// Summary is the aggregate view over one collection of records.
type Summary struct {
	TotalRecords    int64   `json:"totalRecords"`
	PendingCount    int64   `json:"pendingCount"`
	CompletedCount  int64   `json:"completedCount"`
	TotalAmount     float64 `json:"totalAmount"`
	CompletedAmount float64 `json:"completedAmount"`
}
