package app

import (
	"fmt"
	"strings"

	gw "github.com/bearisterai/bearister-api/api/services/billing/gateway"
)

// CreateCheckout opens a provider-hosted subscription checkout session for
// one catalog plan. Unknown price ids fail before the provider is contacted;
// session creation is atomic from this system's perspective so a provider
// failure leaves no partial state behind.
func (s serviceImpl) CreateCheckout(planID, userRef, origin string) (CheckoutResponse, error) {
	entry, ok := CatalogEntry(planID)
	if !ok {
		return CheckoutResponse{}, fmt.Errorf("%w: %q", ErrInvalidPlan, planID)
	}

	origin = strings.TrimRight(origin, "/")
	if origin == "" {
		origin = strings.TrimRight(s.siteBase, "/")
	}

	sess, err := s.gw.CreateCheckoutSession(gw.CheckoutParams{
		PlanID:      entry.PlanID,
		DisplayName: entry.DisplayName,
		UnitAmount:  entry.UnitAmount,
		TierCode:    string(entry.Tier),
		UserRef:     userRef,
		SuccessURL:  origin + "/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   origin + "/pricing",
	})
	if err != nil {
		return CheckoutResponse{}, fmt.Errorf("%w: error creating checkout session: %v", ErrGateway, err)
	}
	return CheckoutResponse{SessionID: sess.ID}, nil
}
