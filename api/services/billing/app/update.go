package app

import (
	"context"
	"fmt"
	"log/slog"
)

// UpdatePlan pushes a resolved tier to the external user-profile backend.
// Validation runs before any network call; the update itself is a partial
// PATCH and is never retried from here.
func (s serviceImpl) UpdatePlan(ctx context.Context, in PlanUpdateInput) (PlanUpdateResult, error) {
	if err := s.validate.Struct(in); err != nil {
		return PlanUpdateResult{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	slog.Info("updating user plan", "user_id", in.UserID, "plan_type", in.Tier, "session_id", in.SessionID)

	data, err := s.profile.UpdatePlan(ctx, in.UserID, in.Tier)
	if err != nil {
		return PlanUpdateResult{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	return PlanUpdateResult{
		Success: true,
		Data:    data,
		Message: "Plan updated successfully",
	}, nil
}
