package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
)

type ReceiptData struct {
	PaymentID    string
	BookingID    string
	PayerName    string
	ListingTitle string
	StartDate    string
	EndDate      string
	Amount       float64
	Kind         string
	IssuedAt     time.Time
}

// Receipt renders a payment receipt and returns the document bytes together
// with a download filename.
func Receipt(d ReceiptData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payment Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "PAYMENT RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Receipt No  : %s", d.PaymentID),
		fmt.Sprintf("Booking     : %s", d.BookingID),
		fmt.Sprintf("Paid by     : %s", d.PayerName),
		fmt.Sprintf("Listing     : %s", d.ListingTitle),
		fmt.Sprintf("Stay        : %s to %s", d.StartDate, d.EndDate),
		fmt.Sprintf("Type        : %s", d.Kind),
		fmt.Sprintf("Amount      : %.2f", d.Amount),
		fmt.Sprintf("Issued at   : %s", d.IssuedAt.Format("2006-01-02 15:04")),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This receipt confirms the recorded payment for the stay above. Keep it for your records.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%s.pdf", safeFilenamePart(d.PaymentID))
	return buf.Bytes(), filename, nil
}

func safeFilenamePart(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}
