package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankit/temple-ledger-go/ledger"
	"github.com/ankit/temple-ledger-go/models"
)

func donationInput() map[string]any {
	return map[string]any{
		"donor":       "A",
		"eventName":   "Diwali",
		"eventDate":   "2024-11-01",
		"totalAmount": 1000.0,
		"paidAmount":  400.0,
	}
}

func TestValidate_AcceptsMinimalDonation(t *testing.T) {
	fields, err := ledger.Validate(ledger.Donations, donationInput())
	require.NoError(t, err)

	assert.Equal(t, "A", fields.Counterparty)
	assert.Equal(t, "Diwali", fields.Label)
	assert.Equal(t, time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC), fields.OccurredOn)
	assert.Equal(t, 1000.0, fields.TotalAmount)
	assert.Equal(t, 400.0, fields.PaidAmount)
	assert.Equal(t, models.PaymentCash, fields.PaymentMode, "paymentMode defaults to cash")
	assert.Empty(t, fields.Contact)
	assert.Empty(t, fields.ReceiptID)
}

func TestValidate_ExpenseWireNames(t *testing.T) {
	fields, err := ledger.Validate(ledger.Expenses, map[string]any{
		"recipient":   "Contractor",
		"purpose":     "Roof repair",
		"date":        "2025-01-15",
		"totalAmount": 200.0,
		"paidAmount":  200.0,
		"paymentMode": "Cheque",
	})
	require.NoError(t, err)

	assert.Equal(t, "Contractor", fields.Counterparty)
	assert.Equal(t, "Roof repair", fields.Label)
	assert.Equal(t, models.PaymentCheque, fields.PaymentMode, "mode is case-insensitive")
}

func TestValidate_RequiredFields(t *testing.T) {
	for _, missing := range []string{"donor", "eventName", "eventDate", "totalAmount", "paidAmount"} {
		t.Run(missing, func(t *testing.T) {
			input := donationInput()
			delete(input, missing)

			_, err := ledger.Validate(ledger.Donations, input)
			var verr *ledger.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Reason, missing)
		})
	}
}

func TestValidate_PaidCannotExceedTotal(t *testing.T) {
	input := donationInput()
	input["paidAmount"] = 1000.01

	_, err := ledger.Validate(ledger.Donations, input)
	var verr *ledger.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "paidAmount cannot exceed totalAmount")
}

func TestValidate_RejectsNegativeAmounts(t *testing.T) {
	input := donationInput()
	input["totalAmount"] = -1.0

	_, err := ledger.Validate(ledger.Donations, input)
	var verr *ledger.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestValidate_RejectsNonNumericAmounts(t *testing.T) {
	input := donationInput()
	input["paidAmount"] = "four hundred"

	_, err := ledger.Validate(ledger.Donations, input)
	var verr *ledger.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestValidate_RejectsUnparsableDate(t *testing.T) {
	input := donationInput()
	input["eventDate"] = "not-a-date"

	_, err := ledger.Validate(ledger.Donations, input)
	var verr *ledger.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "eventDate")
}

func TestValidate_AcceptsRFC3339Date(t *testing.T) {
	input := donationInput()
	input["eventDate"] = "2024-11-01T10:30:00Z"

	fields, err := ledger.Validate(ledger.Donations, input)
	require.NoError(t, err)
	assert.Equal(t, 2024, fields.OccurredOn.Year())
}

func TestValidate_RejectsUnknownPaymentMode(t *testing.T) {
	input := donationInput()
	input["paymentMode"] = "barter"

	_, err := ledger.Validate(ledger.Donations, input)
	var verr *ledger.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestValidate_TrimsTextFields(t *testing.T) {
	input := donationInput()
	input["donor"] = "  A  "
	input["contact"] = " 9399567171 "

	fields, err := ledger.Validate(ledger.Donations, input)
	require.NoError(t, err)
	assert.Equal(t, "A", fields.Counterparty)
	assert.Equal(t, "9399567171", fields.Contact)
}

func TestValidate_WhitespaceOnlyRequiredFieldRejected(t *testing.T) {
	input := donationInput()
	input["donor"] = "   "

	_, err := ledger.Validate(ledger.Donations, input)
	var verr *ledger.ValidationError
	require.ErrorAs(t, err, &verr)
}
