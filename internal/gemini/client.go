// Package gemini converts receipt and trading-app screenshots into
// candidate records via the Google Gemini API. Everything it returns
// is untrusted pre-fill data and must pass the regular validators
// before being persisted.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is the generation model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Client wraps a genai client for image extraction
type Client struct {
	client *genai.Client
	model  string
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithModel sets the model to use
func WithModel(model string) ClientOption {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &Client{
		client: genaiClient,
		model:  DefaultModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// TradeScan holds candidate fields extracted from a trading-app
// screenshot. All fields are optional strings as returned by the model.
type TradeScan struct {
	Ticker     string `json:"ticker"`
	Price      string `json:"price"`
	Quantity   string `json:"quantity"`
	Type       string `json:"type"`
	AssetClass string `json:"assetType"`
}

// ReceiptScan holds candidate fields extracted from a shopping receipt
type ReceiptScan struct {
	Amount string `json:"amount"`
	Date   string `json:"date"`
	Notes  string `json:"notes"`
}

const tradeScanPrompt = `Analyze this trading app screenshot.
Extract the transaction data:
1. Ticker/asset name: (e.g. BBCA, BTC, ANTM). Use the short code when present.
2. Price: price per unit.
3. Quantity: number of lots or coins.
4. Type: BUY or SELL.
5. AssetType: guess whether this is 'Stock', 'Crypto', or 'Gold'.

Pure JSON output:
{
  "ticker": "BBCA",
  "price": "10250",
  "quantity": "10",
  "type": "BUY",
  "assetType": "Stock"
}
`

const receiptScanPrompt = `Analyze this shopping receipt image.
Find 3 key pieces of information and write them in this exact format:

HARGA: [total amount paid, digits only, no currency symbol or separators]
TANGGAL: [format YYYY-MM-DD]
TOKO: [store name]

A correct answer looks like:
HARGA: 50000
TANGGAL: 2024-12-17
TOKO: Indomaret

Do not add any opening or closing sentences. Data only.
`

// ScanTradeImage extracts a candidate trade from a screenshot
func (c *Client) ScanTradeImage(ctx context.Context, image []byte, mimeType string) (*TradeScan, error) {
	text, err := c.generateFromImage(ctx, tradeScanPrompt, image, mimeType)
	if err != nil {
		return nil, err
	}

	payload, err := extractJSON(text)
	if err != nil {
		return nil, err
	}

	var scan TradeScan
	if err := json.Unmarshal([]byte(payload), &scan); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndetected, err)
	}
	if scan.Ticker == "" {
		return nil, ErrUndetected
	}
	return &scan, nil
}

// ScanReceiptImage extracts the total, date and merchant from a receipt
func (c *Client) ScanReceiptImage(ctx context.Context, image []byte, mimeType string) (*ReceiptScan, error) {
	text, err := c.generateFromImage(ctx, receiptScanPrompt, image, mimeType)
	if err != nil {
		return nil, err
	}
	return parseReceiptText(text)
}

func (c *Client) generateFromImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	contents := []*genai.Content{{
		Parts: []*genai.Part{
			{Text: prompt},
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: image}},
		},
	}}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return extractTextFromResponse(result)
}

// extractTextFromResponse extracts text from a generate content response
func extractTextFromResponse(result *genai.GenerateContentResponse) (string, error) {
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	text := ""
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	return text, nil
}
