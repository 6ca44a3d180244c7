package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	assistantapp "github.com/bearisterai/bearister-api/api/services/assistant/app"
	billingapp "github.com/bearisterai/bearister-api/api/services/billing/app"
	gw "github.com/bearisterai/bearister-api/api/services/billing/gateway"
)

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// handleServiceError maps app-layer sentinel errors onto HTTP statuses.
// Client-facing paths get the detailed message to aid user-visible retry.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, billingapp.ErrInvalidPlan):
		respondError(c, http.StatusBadRequest, "Invalid price ID")
	case errors.Is(err, billingapp.ErrMissingParameter):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, billingapp.ErrValidation):
		respondError(c, http.StatusBadRequest, "Invalid plan type")
	case errors.Is(err, billingapp.ErrMissingUserReference):
		respondError(c, http.StatusBadRequest, "No user ID found")
	case errors.Is(err, billingapp.ErrUnresolvedTier):
		respondError(c, http.StatusBadRequest, "Could not determine plan type")
	case errors.Is(err, billingapp.ErrBadEvent):
		respondError(c, http.StatusBadRequest, "Malformed event")
	case errors.Is(err, billingapp.ErrSessionNotFound):
		respondError(c, http.StatusNotFound, "Session not found")
	case errors.Is(err, billingapp.ErrSessionNotComplete):
		respondError(c, http.StatusConflict, "Payment has not been completed for this session")
	case errors.Is(err, billingapp.ErrUpstream):
		var upstream *gw.UpstreamError
		details := ""
		message := "Failed to update user plan"
		if errors.As(err, &upstream) {
			message = upstream.Message
			details = fmt.Sprintf("Server responded with %d", upstream.StatusCode)
		}
		slog.Error("upstream plan update failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": message, "details": details})
	case errors.Is(err, billingapp.ErrGateway):
		slog.Error("stripe gateway error", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating checkout session", "details": err.Error()})
	case errors.Is(err, assistantapp.ErrMissingQuestion):
		respondError(c, http.StatusBadRequest, "Question is required")
	case errors.Is(err, assistantapp.ErrPrediction):
		slog.Error("prediction endpoint error", "err", err)
		respondError(c, http.StatusBadGateway, "Assistant is unavailable")
	default:
		slog.Error("unhandled service error", "err", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
