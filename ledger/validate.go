package ledger

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/ankit/temple-ledger-go/models"
)

// Fields is validated caller input for a record. Derived values are not part
// of it: pendingAmount and status supplied by a caller are ignored entirely.
type Fields struct {
	Counterparty string
	Label        string
	OccurredOn   time.Time
	TotalAmount  float64
	PaidAmount   float64
	Contact      string
	ReceiptID    string
	PaymentMode  string
}

var dateLayouts = []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04", "2006-01-02 15:04:05"}

// Validate checks a raw field map against the kind's wire names and returns
// the typed fields, or a ValidationError naming the first problem found. It
// never touches storage and applies nothing partially.
func Validate(kind Kind, raw map[string]any) (Fields, error) {
	var f Fields

	counterparty, ok := stringField(raw, kind.CounterpartyName)
	if !ok || counterparty == "" {
		return Fields{}, invalidf("%s is required", kind.CounterpartyName)
	}
	label, ok := stringField(raw, kind.LabelName)
	if !ok || label == "" {
		return Fields{}, invalidf("%s is required", kind.LabelName)
	}

	dateStr, ok := stringField(raw, kind.DateName)
	if !ok || dateStr == "" {
		return Fields{}, invalidf("%s is required", kind.DateName)
	}
	occurredOn, err := parseDate(dateStr)
	if err != nil {
		return Fields{}, invalidf("%s must be a valid date", kind.DateName)
	}

	total, err := numberField(raw, "totalAmount")
	if err != nil {
		return Fields{}, err
	}
	paid, err := numberField(raw, "paidAmount")
	if err != nil {
		return Fields{}, err
	}
	if paid > total {
		return Fields{}, invalidf("paidAmount cannot exceed totalAmount")
	}

	mode := models.PaymentCash
	if v, ok := stringField(raw, "paymentMode"); ok && v != "" {
		mode = strings.ToLower(v)
		switch mode {
		case models.PaymentCash, models.PaymentOnline, models.PaymentCheque, models.PaymentOther:
		default:
			return Fields{}, invalidf("paymentMode must be one of cash, online, cheque, other")
		}
	}

	f.Counterparty = counterparty
	f.Label = label
	f.OccurredOn = occurredOn
	f.TotalAmount = total
	f.PaidAmount = paid
	f.PaymentMode = mode
	// optional fields, empty normalizes to absent
	f.Contact, _ = stringField(raw, "contact")
	f.ReceiptID, _ = stringField(raw, "receiptId")
	return f, nil
}

func stringField(raw map[string]any, name string) (string, bool) {
	v, ok := raw[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(s), true
}

func numberField(raw map[string]any, name string) (float64, error) {
	v, ok := raw[name]
	if !ok {
		return 0, invalidf("%s is required", name)
	}
	var n float64
	switch t := v.(type) {
	case float64:
		n = t
	case int:
		n = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, invalidf("%s must be a number", name)
		}
		n = parsed
	default:
		return 0, invalidf("%s must be a number", name)
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, invalidf("%s must be a finite number", name)
	}
	if n < 0 {
		return 0, invalidf("%s cannot be negative", name)
	}
	return n, nil
}

func parseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
