package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ankit/temple-ledger-go/ledger"
	"github.com/ankit/temple-ledger-go/models"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name        string
		total, paid float64
		wantPending float64
		wantStatus  string
	}{
		{"partially paid", 1000, 400, 600, models.StatusPending},
		{"fully paid", 1000, 1000, 0, models.StatusCompleted},
		{"nothing paid", 500, 0, 500, models.StatusPending},
		{"zero total", 0, 0, 0, models.StatusCompleted},
		{"paid a cent short", 100, 99.99, 0.01, models.StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pending, status := ledger.Derive(tt.total, tt.paid)
			assert.InDelta(t, tt.wantPending, pending, 1e-9)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestDerive_PendingAlwaysTotalMinusPaid(t *testing.T) {
	for total := 0.0; total <= 500; total += 12.5 {
		for paid := 0.0; paid <= total; paid += 12.5 {
			pending, status := ledger.Derive(total, paid)
			assert.Equal(t, total-paid, pending)
			if paid == total {
				assert.Equal(t, models.StatusCompleted, status)
			} else {
				assert.Equal(t, models.StatusPending, status)
			}
		}
	}
}
