package gemini

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONStripsFences(t *testing.T) {
	raw := "```json\n{\"ticker\": \"BBCA\", \"price\": \"10250\"}\n```"

	payload, err := extractJSON(raw)
	require.NoError(t, err)

	var scan TradeScan
	require.NoError(t, json.Unmarshal([]byte(payload), &scan))
	assert.Equal(t, "BBCA", scan.Ticker)
	assert.Equal(t, "10250", scan.Price)
}

func TestExtractJSONIgnoresSurroundingText(t *testing.T) {
	raw := "Here is the extracted data:\n{\"ticker\": \"BTC\", \"type\": \"SELL\"}\nLet me know if you need anything else."

	payload, err := extractJSON(raw)
	require.NoError(t, err)

	var scan TradeScan
	require.NoError(t, json.Unmarshal([]byte(payload), &scan))
	assert.Equal(t, "BTC", scan.Ticker)
	assert.Equal(t, "SELL", scan.Type)
}

func TestExtractJSONNoBraces(t *testing.T) {
	_, err := extractJSON("sorry, I cannot read this image")
	assert.ErrorIs(t, err, ErrUndetected)
}

func TestParseReceiptText(t *testing.T) {
	text := "HARGA: 50000\nTANGGAL: 2024-12-17\nTOKO: Indomaret"

	scan, err := parseReceiptText(text)
	require.NoError(t, err)
	assert.Equal(t, "50000", scan.Amount)
	assert.Equal(t, "2024-12-17", scan.Date)
	assert.Equal(t, "Indomaret", scan.Notes)
}

func TestParseReceiptTextLowercaseLabels(t *testing.T) {
	text := "harga: 125000\ntanggal: 2025-01-03\ntoko: Alfamart Cabang Kota"

	scan, err := parseReceiptText(text)
	require.NoError(t, err)
	assert.Equal(t, "125000", scan.Amount)
	assert.Equal(t, "Alfamart Cabang Kota", scan.Notes)
}

func TestParseReceiptTextMissingAmount(t *testing.T) {
	_, err := parseReceiptText("TANGGAL: 2024-12-17\nTOKO: Indomaret")
	assert.ErrorIs(t, err, ErrUndetected)
}

func TestParseReceiptTextDefaults(t *testing.T) {
	scan, err := parseReceiptText("HARGA: 9000")
	require.NoError(t, err)
	assert.Equal(t, "9000", scan.Amount)
	assert.NotEmpty(t, scan.Date)
	assert.Equal(t, "Merchant", scan.Notes)
}
