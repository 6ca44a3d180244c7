package app

import (
	"context"
	"fmt"
	"log/slog"

	stripe "github.com/stripe/stripe-go/v82"

	billingdb "github.com/bearisterai/bearister-api/api/services/billing/db"
)

// ConfirmPlan is the redirect-path flow driven by the success page: verify
// the session, require provider-confirmed completion, resolve the tier, then
// apply the plan update. A session whose status is still "open" never issues
// an update; reaching the success page is not proof of payment.
func (s serviceImpl) ConfirmPlan(ctx context.Context, sessionID, userID string) (PlanUpdateResult, error) {
	if sessionID == "" {
		return PlanUpdateResult{}, fmt.Errorf("%w: session_id is required", ErrMissingParameter)
	}
	if userID == "" {
		return PlanUpdateResult{}, fmt.Errorf("%w: user_id is required", ErrMissingParameter)
	}

	v, err := s.VerifySession(sessionID)
	if err != nil {
		return PlanUpdateResult{}, err
	}
	if v.Status != string(stripe.CheckoutSessionStatusComplete) {
		return PlanUpdateResult{}, fmt.Errorf("%w: session %s has status %q", ErrSessionNotComplete, sessionID, v.Status)
	}

	tier := v.Tier
	if tier == "" {
		resolved, ok := ResolveTier("", v.AmountTotal)
		if !ok {
			return PlanUpdateResult{}, fmt.Errorf("%w: session %s", ErrUnresolvedTier, sessionID)
		}
		tier = resolved
	}

	processed, err := billingdb.SessionProcessed(sessionID)
	if err != nil {
		slog.Error("processed-session store unavailable", "session_id", sessionID, "err", err)
	}
	if processed {
		slog.Info("checkout session already applied", "session_id", sessionID)
		return PlanUpdateResult{Success: true, Message: "Plan already updated"}, nil
	}

	result, err := s.UpdatePlan(ctx, PlanUpdateInput{UserID: userID, Tier: string(tier), SessionID: sessionID})
	if err != nil {
		return PlanUpdateResult{}, err
	}
	if err := billingdb.MarkSessionProcessed(sessionID); err != nil {
		slog.Error("failed to record processed session", "session_id", sessionID, "err", err)
	}
	return result, nil
}
