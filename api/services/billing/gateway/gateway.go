package gateway

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v82"
)

// CheckoutParams carries everything needed to open a hosted checkout session
// for one catalog plan.
type CheckoutParams struct {
	PlanID      string
	DisplayName string
	UnitAmount  int64
	TierCode    string
	// UserRef becomes the session's client_reference_id. Empty when the
	// caller is not authenticated yet.
	UserRef    string
	SuccessURL string
	CancelURL  string
}

// StripeGateway abstracts Stripe SDK operations needed by the app layer.
// Methods return values (not pointers) to respect the project's preference
// to avoid pointer types in public interfaces.
type StripeGateway interface {
	CreateCheckoutSession(p CheckoutParams) (stripe.CheckoutSession, error)
	GetCheckoutSession(id string) (stripe.CheckoutSession, error)
	ListLineItems(sessionID string) ([]stripe.LineItem, error)
}

// ProfileGateway abstracts the external user-profile backend that owns the
// full user record. Only partial plan updates are issued from here.
type ProfileGateway interface {
	UpdatePlan(ctx context.Context, userID, tierCode string) (map[string]any, error)
}

// UpstreamError reports a non-success response from the profile backend.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("profile backend responded %d: %s", e.StatusCode, e.Message)
}
