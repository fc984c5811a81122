package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"technopedia-registration/internal/config"
	interfaces "technopedia-registration/internal/interfaces/infrastructure"
)

// RazorpayGateway talks to the Razorpay orders API over HTTP using key
// id/secret basic auth. Signatures are HMAC-SHA256 over
// "order_id|payment_id" keyed with the secret, per the gateway's
// verification scheme.
type RazorpayGateway struct {
	keyID     string
	keySecret string
	baseURL   string
	client    *http.Client
}

func NewRazorpayGateway(keyID, keySecret, baseURL string) *RazorpayGateway {
	return &RazorpayGateway{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewRazorpayGatewayWithConfig builds the gateway from application config.
func NewRazorpayGatewayWithConfig(cfg *config.PaymentConfig) *RazorpayGateway {
	return NewRazorpayGateway(cfg.KeyID, cfg.KeySecret, cfg.BaseURL)
}

func (g *RazorpayGateway) Name() string {
	return "razorpay"
}

// CreateOrder registers an order with the gateway. Amount arrives in
// major units and is converted to paise on the wire.
func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount int, currency, receipt string) (*interfaces.Order, error) {
	body, err := json.Marshal(map[string]interface{}{
		"amount":   amount * 100,
		"currency": currency,
		"receipt":  receipt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(g.keyID, g.keySecret)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("order request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read order response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, respBody)
	}

	var order interfaces.Order
	if err := json.Unmarshal(respBody, &order); err != nil {
		return nil, fmt.Errorf("failed to decode order response: %w", err)
	}

	return &order, nil
}

func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

var _ interfaces.PaymentGateway = (*RazorpayGateway)(nil)
