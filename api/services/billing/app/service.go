package app

import (
	"context"

	"github.com/go-playground/validator/v10"
	stripe "github.com/stripe/stripe-go/v82"

	gw "github.com/bearisterai/bearister-api/api/services/billing/gateway"
)

// Service defines the business operations for the billing domain.
type Service interface {
	CreateCheckout(planID, userRef, origin string) (CheckoutResponse, error)
	VerifySession(sessionID string) (SessionVerification, error)
	UpdatePlan(ctx context.Context, in PlanUpdateInput) (PlanUpdateResult, error)
	ConfirmPlan(ctx context.Context, sessionID, userID string) (PlanUpdateResult, error)
	HandleWebhookEvent(ctx context.Context, event stripe.Event) error
}

// serviceImpl is a concrete implementation.
type serviceImpl struct {
	gw       gw.StripeGateway
	profile  gw.ProfileGateway
	siteBase string
	validate *validator.Validate
}

// NewService wires the Stripe gateway and the profile backend gateway.
// siteBase is the fallback origin for checkout redirect URLs.
func NewService(g gw.StripeGateway, p gw.ProfileGateway, siteBase string) Service {
	return serviceImpl{
		gw:       g,
		profile:  p,
		siteBase: siteBase,
		validate: validator.New(),
	}
}
