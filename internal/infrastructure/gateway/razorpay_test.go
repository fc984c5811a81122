package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRazorpayGateway_CreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/orders" {
			t.Errorf("Expected POST /orders, got %s %s", r.Method, r.URL.Path)
		}

		user, pass, ok := r.BasicAuth()
		if !ok || user != "key_test" || pass != "secret_test" {
			t.Errorf("Expected basic auth with key credentials, got %s/%s", user, pass)
		}

		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode request body: %v", err)
		}
		if body["amount"] != float64(29900) {
			t.Errorf("Expected amount in paise 29900, got %v", body["amount"])
		}
		if body["currency"] != "INR" {
			t.Errorf("Expected currency INR, got %v", body["currency"])
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "order_test_1",
			"amount":   29900,
			"currency": "INR",
			"receipt":  body["receipt"],
		})
	}))
	defer server.Close()

	g := NewRazorpayGateway("key_test", "secret_test", server.URL)

	order, err := g.CreateOrder(context.Background(), 299, "INR", "TECH14-20250915-ABC123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if order.ID != "order_test_1" {
		t.Errorf("Expected order id order_test_1, got %s", order.ID)
	}
	if order.Amount != 29900 {
		t.Errorf("Expected amount 29900, got %d", order.Amount)
	}
	if order.Receipt != "TECH14-20250915-ABC123" {
		t.Errorf("Expected receipt echoed back, got %s", order.Receipt)
	}
}

func TestRazorpayGateway_CreateOrder_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"description":"Authentication failed"}}`))
	}))
	defer server.Close()

	g := NewRazorpayGateway("key_bad", "secret_bad", server.URL)

	order, err := g.CreateOrder(context.Background(), 299, "INR", "TECH14-20250915-ABC123")
	if err == nil {
		t.Fatal("Expected error for gateway rejection, got nil")
	}
	if order != nil {
		t.Fatal("Expected nil order on error")
	}
}

func TestRazorpayGateway_VerifySignature(t *testing.T) {
	g := NewRazorpayGateway("key_test", "secret_test", "http://unused")

	mac := hmac.New(sha256.New, []byte("secret_test"))
	mac.Write([]byte("order_1|pay_1"))
	signature := hex.EncodeToString(mac.Sum(nil))

	if !g.VerifySignature("order_1", "pay_1", signature) {
		t.Error("Expected correctly signed payload to verify")
	}
	if g.VerifySignature("order_2", "pay_1", signature) {
		t.Error("Expected signature bound to a different order to fail")
	}
	if g.VerifySignature("order_1", "pay_2", signature) {
		t.Error("Expected signature bound to a different payment to fail")
	}
	if g.VerifySignature("order_1", "pay_1", "deadbeef") {
		t.Error("Expected garbage signature to fail")
	}
	if g.VerifySignature("order_1", "pay_1", "") {
		t.Error("Expected empty signature to fail")
	}
}
