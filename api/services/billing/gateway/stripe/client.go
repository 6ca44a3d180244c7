package stripegw

import (
	"fmt"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"

	gw "github.com/bearisterai/bearister-api/api/services/billing/gateway"
)

// SetKey configures the Stripe SDK key once during bootstrap.
func SetKey(key string) { stripe.Key = key }

// client is the Stripe SDK-backed implementation of the gateway.
type client struct{}

// New returns a StripeGateway backed by the official Stripe SDK.
func New() gw.StripeGateway { return client{} }

func (client) CreateCheckoutSession(p gw.CheckoutParams) (stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(p.DisplayName),
						Description: stripe.String(fmt.Sprintf("Monthly subscription to %s", p.DisplayName)),
					},
					UnitAmount: stripe.Int64(p.UnitAmount),
					Recurring: &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
						Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(p.SuccessURL),
		CancelURL:  stripe.String(p.CancelURL),
	}
	if p.UserRef != "" {
		params.ClientReferenceID = stripe.String(p.UserRef)
	}
	params.AddMetadata("priceId", p.PlanID)
	params.AddMetadata("planType", p.TierCode)

	sessPtr, err := session.New(params)
	if err != nil {
		return stripe.CheckoutSession{}, err
	}
	if sessPtr == nil {
		return stripe.CheckoutSession{}, nil
	}
	return *sessPtr, nil
}

func (client) GetCheckoutSession(id string) (stripe.CheckoutSession, error) {
	sessPtr, err := session.Get(id, nil)
	if err != nil {
		return stripe.CheckoutSession{}, err
	}
	if sessPtr == nil {
		return stripe.CheckoutSession{}, nil
	}
	return *sessPtr, nil
}

func (client) ListLineItems(sessionID string) ([]stripe.LineItem, error) {
	params := &stripe.CheckoutSessionListLineItemsParams{
		Session: stripe.String(sessionID),
	}
	iter := session.ListLineItems(params)
	var items []stripe.LineItem
	for iter.Next() {
		items = append(items, *iter.LineItem())
	}
	return items, iter.Err()
}
