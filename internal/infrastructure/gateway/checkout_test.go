package gateway

import (
	"context"
	"testing"
	"time"

	interfaces "technopedia-registration/internal/interfaces/infrastructure"
)

func checkoutRequest(orderID string) *interfaces.CheckoutRequest {
	return &interfaces.CheckoutRequest{
		Order: &interfaces.Order{
			ID:       orderID,
			Amount:   29900,
			Currency: "INR",
			Receipt:  "TECH14-20250915-ABC123",
		},
		Merchant: "TECHNOPEDIA 14",
	}
}

func TestSessionBroker_Complete(t *testing.T) {
	broker := NewSessionBroker()

	payload := interfaces.CheckoutPayload{
		PaymentID: "pay_1",
		OrderID:   "order_1",
		Signature: "sig_1",
	}

	done := make(chan *interfaces.CheckoutResult, 1)
	go func() {
		result, err := broker.Open(context.Background(), checkoutRequest("order_1"))
		if err != nil {
			t.Errorf("Expected no error from Open, got %v", err)
		}
		done <- result
	}()

	// Wait for the session to register before resolving it.
	var err error
	for i := 0; i < 100; i++ {
		if err = broker.Complete("order_1", payload); err == nil {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("Expected Complete to find the session, got %v", err)
	}

	result := <-done
	if result.Outcome != interfaces.CheckoutCompleted {
		t.Errorf("Expected completed outcome, got %s", result.Outcome)
	}
	if result.Payload != payload {
		t.Errorf("Expected payload %+v, got %+v", payload, result.Payload)
	}
}

func TestSessionBroker_Dismiss(t *testing.T) {
	broker := NewSessionBroker()

	done := make(chan *interfaces.CheckoutResult, 1)
	go func() {
		result, _ := broker.Open(context.Background(), checkoutRequest("order_2"))
		done <- result
	}()

	var err error
	for i := 0; i < 100; i++ {
		if err = broker.Dismiss("order_2"); err == nil {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("Expected Dismiss to find the session, got %v", err)
	}

	result := <-done
	if result.Outcome != interfaces.CheckoutDismissed {
		t.Errorf("Expected dismissed outcome, got %s", result.Outcome)
	}
}

func TestSessionBroker_UnknownOrder(t *testing.T) {
	broker := NewSessionBroker()

	if err := broker.Complete("order_missing", interfaces.CheckoutPayload{}); err == nil {
		t.Error("Expected error completing an unknown order")
	}
	if err := broker.Dismiss("order_missing"); err == nil {
		t.Error("Expected error dismissing an unknown order")
	}
}

func TestSessionBroker_ResolvesOnce(t *testing.T) {
	broker := NewSessionBroker()

	done := make(chan struct{})
	go func() {
		broker.Open(context.Background(), checkoutRequest("order_3"))
		close(done)
	}()

	var err error
	for i := 0; i < 100; i++ {
		if err = broker.Dismiss("order_3"); err == nil {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("Expected first Dismiss to succeed, got %v", err)
	}
	<-done

	if err := broker.Dismiss("order_3"); err == nil {
		t.Error("Expected second resolution to fail")
	}
}

func TestSessionBroker_ContextCancellation(t *testing.T) {
	broker := NewSessionBroker()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := broker.Open(ctx, checkoutRequest("order_4"))
	if err == nil {
		t.Fatal("Expected error when context is cancelled")
	}

	// The abandoned session was cleaned up; the order id is free again.
	if err := broker.Dismiss("order_4"); err == nil {
		t.Error("Expected no session to remain after cancellation")
	}
}

func TestSessionBroker_DuplicateOpen(t *testing.T) {
	broker := NewSessionBroker()

	go broker.Open(context.Background(), checkoutRequest("order_5"))

	// Wait until the first session registers.
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		broker.mutex.Lock()
		_, registered := broker.sessions["order_5"]
		broker.mutex.Unlock()
		if registered {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	_, err := broker.Open(context.Background(), checkoutRequest("order_5"))
	if err == nil {
		t.Fatal("Expected second Open on the same order to fail")
	}

	broker.Dismiss("order_5")
}
