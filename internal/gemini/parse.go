package gemini

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// ErrUndetected is returned when the model output holds no usable data
var ErrUndetected = errors.New("could not detect data in image")

var (
	amountRe = regexp.MustCompile(`(?i)HARGA:\s*(\d+)`)
	dateRe   = regexp.MustCompile(`(?i)TANGGAL:\s*([0-9-]+)`)
	notesRe  = regexp.MustCompile(`(?i)TOKO:\s*(.+)`)
)

// extractJSON strips markdown code fences and anything outside the
// outermost braces. Model output tends to wrap JSON in commentary.
func extractJSON(text string) (string, error) {
	clean := strings.ReplaceAll(text, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)

	first := strings.Index(clean, "{")
	last := strings.LastIndex(clean, "}")
	if first == -1 || last == -1 || last < first {
		return "", ErrUndetected
	}
	return clean[first : last+1], nil
}

// parseReceiptText pulls the labeled fields out of the plain-text
// receipt answer. Only the amount is mandatory; date falls back to
// today and the merchant to a placeholder.
func parseReceiptText(text string) (*ReceiptScan, error) {
	amountMatch := amountRe.FindStringSubmatch(text)
	if amountMatch == nil {
		return nil, ErrUndetected
	}

	scan := &ReceiptScan{
		Amount: amountMatch[1],
		Date:   time.Now().Format("2006-01-02"),
		Notes:  "Merchant",
	}
	if m := dateRe.FindStringSubmatch(text); m != nil {
		scan.Date = m[1]
	}
	if m := notesRe.FindStringSubmatch(text); m != nil {
		scan.Notes = strings.TrimSpace(m[1])
	}
	return scan, nil
}
