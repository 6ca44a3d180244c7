package app

import (
	"fmt"
)

// VerifySession retrieves the provider-confirmed state of a checkout session.
// The plan id is taken from session metadata preferentially; inspecting the
// first purchased line item is the documented fallback only. The tier comes
// from explicit metadata when present, else from the amount threshold rule.
func (s serviceImpl) VerifySession(sessionID string) (SessionVerification, error) {
	if sessionID == "" {
		return SessionVerification{}, fmt.Errorf("%w: session_id is required", ErrMissingParameter)
	}

	sess, err := s.gw.GetCheckoutSession(sessionID)
	if err != nil {
		return SessionVerification{}, fmt.Errorf("%w: %v", ErrSessionNotFound, err)
	}

	v := SessionVerification{
		Status:      string(sess.Status),
		AmountTotal: sess.AmountTotal,
		PlanID:      sess.Metadata["priceId"],
	}
	if sess.CustomerDetails != nil {
		v.CustomerEmail = sess.CustomerDetails.Email
	}
	if tier := TierCode(sess.Metadata["planType"]); tier.Valid() {
		v.Tier = tier
	}

	if v.PlanID == "" || v.Tier == "" {
		items, err := s.gw.ListLineItems(sessionID)
		if err == nil && len(items) > 0 && items[0].Price != nil {
			if v.PlanID == "" {
				v.PlanID = items[0].Price.ID
			}
			if v.Tier == "" {
				if tier, ok := ResolveTier("", items[0].Price.UnitAmount); ok {
					v.Tier = tier
				}
			}
		}
	}
	return v, nil
}
