package interfaces

import "context"

// Order is the gateway's handle for a checkout. Amount is in currency
// minor units (paise), the way the gateway expects it.
type Order struct {
	ID       string `json:"id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// CheckoutPayload is the success callback body from the hosted
// checkout: gateway payment id, the order it settles, and a signature
// binding the two.
type CheckoutPayload struct {
	PaymentID string `json:"razorpay_payment_id"`
	OrderID   string `json:"razorpay_order_id"`
	Signature string `json:"razorpay_signature"`
}

// CheckoutOutcome is how a checkout session resolved.
type CheckoutOutcome string

const (
	CheckoutCompleted CheckoutOutcome = "completed"
	CheckoutDismissed CheckoutOutcome = "dismissed"
	CheckoutFailed    CheckoutOutcome = "failed"
)

// CheckoutResult is the single value a suspended checkout resolves to.
type CheckoutResult struct {
	Outcome CheckoutOutcome
	Payload CheckoutPayload
	Err     error
}

// CheckoutPrefill carries the registrant contact details shown in the
// hosted checkout form.
type CheckoutPrefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

// CheckoutRequest opens one hosted checkout for one order.
type CheckoutRequest struct {
	Order       *Order
	Merchant    string
	Description string
	Prefill     CheckoutPrefill
}

// PaymentGateway creates orders and verifies checkout signatures. The
// hosted vendor behind it is opaque to the rest of the system.
type PaymentGateway interface {
	Name() string
	// CreateOrder registers an order for amount (major units) and
	// returns the gateway's handle.
	CreateOrder(ctx context.Context, amount int, currency, receipt string) (*Order, error)
	// VerifySignature checks the callback signature against the order
	// and payment ids. Callbacks are never trusted without it.
	VerifySignature(orderID, paymentID, signature string) bool
}

// CheckoutProvider suspends the caller on an open checkout until it is
// completed, dismissed, or aborted. There is no timeout; dismissal is
// user-initiated only.
type CheckoutProvider interface {
	// Open blocks until the session resolves or ctx is done.
	Open(ctx context.Context, req *CheckoutRequest) (*CheckoutResult, error)
	// Complete resolves a pending session with a success payload.
	Complete(orderID string, payload CheckoutPayload) error
	// Dismiss resolves a pending session as user-cancelled.
	Dismiss(orderID string) error
}
