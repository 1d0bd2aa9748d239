package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceipt(t *testing.T) {
	data := ReceiptData{
		PaymentID:    "3f1c9a2e-0000-0000-0000-000000000000",
		BookingID:    "b1",
		PayerName:    "alice",
		ListingTitle: "Studio near campus",
		StartDate:    "2024-03-01",
		EndDate:      "2024-04-01",
		Amount:       500,
		Kind:         "charge",
		IssuedAt:     time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	raw, filename, err := Receipt(data)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
	assert.Equal(t, "RECEIPT_3f1c9a2e-0000-0000-0000-000000000000.pdf", filename)
}

func TestReceipt_SanitizesFilename(t *testing.T) {
	data := ReceiptData{
		PaymentID: `p/1\2`,
		IssuedAt:  time.Now(),
	}

	_, filename, err := Receipt(data)

	require.NoError(t, err)
	assert.NotContains(t, filename, "/")
	assert.NotContains(t, filename, `\`)
}
