package gateway

import (
	"context"
	"fmt"
	"sync"

	interfaces "technopedia-registration/internal/interfaces/infrastructure"
)

// MockGateway is an in-memory PaymentGateway for testing. Failure
// modes are toggled per test.
type MockGateway struct {
	FailCreateOrder  bool
	RejectSignatures bool

	orders  map[string]*interfaces.Order
	counter int
	mutex   sync.Mutex
}

func NewMockGateway() *MockGateway {
	return &MockGateway{
		orders: make(map[string]*interfaces.Order),
	}
}

func (g *MockGateway) Name() string {
	return "mock"
}

func (g *MockGateway) CreateOrder(ctx context.Context, amount int, currency, receipt string) (*interfaces.Order, error) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if g.FailCreateOrder {
		return nil, fmt.Errorf("order creation refused")
	}

	g.counter++
	order := &interfaces.Order{
		ID:       fmt.Sprintf("order_mock_%d", g.counter),
		Amount:   amount * 100,
		Currency: currency,
		Receipt:  receipt,
	}
	g.orders[order.ID] = order
	return order, nil
}

func (g *MockGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return !g.RejectSignatures
}

// Orders returns every order created so far.
func (g *MockGateway) Orders() []*interfaces.Order {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	orders := make([]*interfaces.Order, 0, len(g.orders))
	for _, order := range g.orders {
		orders = append(orders, order)
	}
	return orders
}

var _ interfaces.PaymentGateway = (*MockGateway)(nil)

// MockCheckout resolves every opened session with a scripted result
// instead of waiting for HTTP callbacks.
type MockCheckout struct {
	// Result is returned from every Open call. Defaults to a completed
	// checkout echoing the order id.
	Result *interfaces.CheckoutResult

	opened []*interfaces.CheckoutRequest
	mutex  sync.Mutex
}

func NewMockCheckout() *MockCheckout {
	return &MockCheckout{}
}

func (c *MockCheckout) Open(ctx context.Context, req *interfaces.CheckoutRequest) (*interfaces.CheckoutResult, error) {
	c.mutex.Lock()
	c.opened = append(c.opened, req)
	c.mutex.Unlock()

	if c.Result != nil {
		return c.Result, nil
	}
	return &interfaces.CheckoutResult{
		Outcome: interfaces.CheckoutCompleted,
		Payload: interfaces.CheckoutPayload{
			PaymentID: "pay_mock_1",
			OrderID:   req.Order.ID,
			Signature: "sig_mock",
		},
	}, nil
}

func (c *MockCheckout) Complete(orderID string, payload interfaces.CheckoutPayload) error {
	return nil
}

func (c *MockCheckout) Dismiss(orderID string) error {
	return nil
}

// Opened returns the checkout requests seen so far.
func (c *MockCheckout) Opened() []*interfaces.CheckoutRequest {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.opened
}

var _ interfaces.CheckoutProvider = (*MockCheckout)(nil)
