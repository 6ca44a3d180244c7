package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	stripe "github.com/stripe/stripe-go/v82"

	billingdb "github.com/bearisterai/bearister-api/api/services/billing/db"
)

// HandleWebhookEvent processes a signature-verified provider event. Only
// checkout.session.completed triggers work; every other type is acknowledged
// without side effects. Plan update failures are logged but never surfaced:
// the provider must receive its acknowledgment or it will retry the event
// indefinitely.
func (s serviceImpl) HandleWebhookEvent(ctx context.Context, event stripe.Event) error {
	if event.Type != "checkout.session.completed" {
		slog.Info("ignoring stripe event", "type", event.Type, "event_id", event.ID)
		return nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return fmt.Errorf("%w: error unmarshaling into CheckoutSession: %v", ErrBadEvent, err)
	}

	userID := session.ClientReferenceID
	if userID == "" {
		userID = session.Metadata["userId"]
	}
	if userID == "" {
		return fmt.Errorf("%w: no user id in CheckoutSession %s", ErrMissingUserReference, session.ID)
	}

	tier, err := s.resolveSessionTier(session.ID)
	if err != nil {
		return err
	}

	processed, err := billingdb.SessionProcessed(session.ID)
	if err != nil {
		slog.Error("processed-session store unavailable", "session_id", session.ID, "err", err)
	}
	if processed {
		slog.Info("checkout session already applied", "session_id", session.ID)
		return nil
	}

	if _, err := s.profile.UpdatePlan(ctx, userID, string(tier)); err != nil {
		slog.Error("failed to update user plan via webhook", "user_id", userID, "session_id", session.ID, "err", err)
		return nil
	}
	slog.Info("updated user plan via webhook", "user_id", userID, "plan_type", tier, "session_id", session.ID)

	if err := billingdb.MarkSessionProcessed(session.ID); err != nil {
		slog.Error("failed to record processed session", "session_id", session.ID, "err", err)
	}
	return nil
}

// resolveSessionTier re-fetches the session's line items from the provider
// and applies the amount threshold rule. Price data embedded in the webhook
// payload is not trusted on its own.
func (s serviceImpl) resolveSessionTier(sessionID string) (TierCode, error) {
	items, err := s.gw.ListLineItems(sessionID)
	if err != nil {
		return "", fmt.Errorf("%w: error listing line items for session %s: %v", ErrUnresolvedTier, sessionID, err)
	}
	var amount int64
	if len(items) > 0 && items[0].Price != nil {
		amount = items[0].Price.UnitAmount
	}
	tier, ok := ResolveTier("", amount)
	if !ok {
		return "", fmt.Errorf("%w: session %s amount %d below lowest threshold", ErrUnresolvedTier, sessionID, amount)
	}
	return tier, nil
}
