package app

import (
	"context"

	stripe "github.com/stripe/stripe-go/v82"

	gw "github.com/bearisterai/bearister-api/api/services/billing/gateway"
)

// fakeStripeGateway records calls so tests can assert the provider was (not)
// contacted and inspect the params handed to it.
type fakeStripeGateway struct {
	createCalls int
	lastParams  gw.CheckoutParams
	createErr   error

	session stripe.CheckoutSession
	getErr  error

	items    []stripe.LineItem
	itemsErr error
}

func (f *fakeStripeGateway) CreateCheckoutSession(p gw.CheckoutParams) (stripe.CheckoutSession, error) {
	f.createCalls++
	f.lastParams = p
	if f.createErr != nil {
		return stripe.CheckoutSession{}, f.createErr
	}
	if f.session.ID == "" {
		return stripe.CheckoutSession{ID: "cs_test_123"}, nil
	}
	return f.session, nil
}

func (f *fakeStripeGateway) GetCheckoutSession(id string) (stripe.CheckoutSession, error) {
	if f.getErr != nil {
		return stripe.CheckoutSession{}, f.getErr
	}
	return f.session, nil
}

func (f *fakeStripeGateway) ListLineItems(sessionID string) ([]stripe.LineItem, error) {
	if f.itemsErr != nil {
		return nil, f.itemsErr
	}
	return f.items, nil
}

// fakeProfileGateway records plan updates pushed to the external backend.
type fakeProfileGateway struct {
	calls      int
	lastUserID string
	lastTier   string
	err        error
	data       map[string]any
}

func (f *fakeProfileGateway) UpdatePlan(ctx context.Context, userID, tierCode string) (map[string]any, error) {
	f.calls++
	f.lastUserID = userID
	f.lastTier = tierCode
	if f.err != nil {
		return nil, f.err
	}
	if f.data == nil {
		return map[string]any{"planType": tierCode}, nil
	}
	return f.data, nil
}

func newTestService(sg *fakeStripeGateway, pg *fakeProfileGateway) Service {
	return NewService(sg, pg, "http://localhost:3000")
}

func lineItem(priceID string, unitAmount int64) stripe.LineItem {
	return stripe.LineItem{Price: &stripe.Price{ID: priceID, UnitAmount: unitAmount}}
}
