package gateway

import (
	"context"
	"fmt"
	"sync"

	interfaces "technopedia-registration/internal/interfaces/infrastructure"
)

// SessionBroker hands out checkout sessions keyed by order id. Open
// parks the caller on a channel; the HTTP callback and dismiss
// endpoints resolve it. A session resolves exactly once.
type SessionBroker struct {
	sessions map[string]chan *interfaces.CheckoutResult
	mutex    sync.Mutex
}

func NewSessionBroker() *SessionBroker {
	return &SessionBroker{
		sessions: make(map[string]chan *interfaces.CheckoutResult),
	}
}

// Open registers a session for the request's order and blocks until
// Complete or Dismiss resolves it, or ctx is done.
func (b *SessionBroker) Open(ctx context.Context, req *interfaces.CheckoutRequest) (*interfaces.CheckoutResult, error) {
	if req == nil || req.Order == nil {
		return nil, fmt.Errorf("checkout request has no order")
	}

	ch := make(chan *interfaces.CheckoutResult, 1)

	b.mutex.Lock()
	if _, exists := b.sessions[req.Order.ID]; exists {
		b.mutex.Unlock()
		return nil, fmt.Errorf("checkout already open for order %s", req.Order.ID)
	}
	b.sessions[req.Order.ID] = ch
	b.mutex.Unlock()

	select {
	case result := <-ch:
		return result, nil
	case <-ctx.Done():
		b.remove(req.Order.ID)
		return nil, ctx.Err()
	}
}

// Complete resolves a pending session with the checkout payload.
func (b *SessionBroker) Complete(orderID string, payload interfaces.CheckoutPayload) error {
	return b.resolve(orderID, &interfaces.CheckoutResult{
		Outcome: interfaces.CheckoutCompleted,
		Payload: payload,
	})
}

// Dismiss resolves a pending session as cancelled by the user.
func (b *SessionBroker) Dismiss(orderID string) error {
	return b.resolve(orderID, &interfaces.CheckoutResult{
		Outcome: interfaces.CheckoutDismissed,
	})
}

func (b *SessionBroker) resolve(orderID string, result *interfaces.CheckoutResult) error {
	b.mutex.Lock()
	ch, exists := b.sessions[orderID]
	if exists {
		delete(b.sessions, orderID)
	}
	b.mutex.Unlock()

	if !exists {
		return fmt.Errorf("no open checkout for order %s", orderID)
	}

	ch <- result
	return nil
}

func (b *SessionBroker) remove(orderID string) {
	b.mutex.Lock()
	delete(b.sessions, orderID)
	b.mutex.Unlock()
}

var _ interfaces.CheckoutProvider = (*SessionBroker)(nil)
