package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82/webhook"

	billingapp "github.com/bearisterai/bearister-api/api/services/billing/app"
)

// Stripe documents 64KiB as a safe upper bound for event payloads.
const webhookBodyLimit = int64(65536)

// BillingHandler exposes the checkout and plan-reconciliation flow over HTTP.
type BillingHandler struct {
	svc           billingapp.Service
	webhookSecret string
}

func NewBillingHandler(svc billingapp.Service, webhookSecret string) *BillingHandler {
	return &BillingHandler{svc: svc, webhookSecret: webhookSecret}
}

type checkoutRequest struct {
	PriceID string `json:"priceId" binding:"required"`
	// Optional authenticated user id; becomes the session's client_reference_id
	// so the webhook path can identify the purchaser without a browser.
	UserID string `json:"userId"`
}

// CreateCheckout handles POST /api/checkout.
func (h *BillingHandler) CreateCheckout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := h.svc.CreateCheckout(req.PriceID, req.UserID, c.GetHeader("Origin"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VerifySession handles GET /api/verify-session?session_id=...
func (h *BillingHandler) VerifySession(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		respondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	v, err := h.svc.VerifySession(sessionID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

type updatePlanRequest struct {
	UserID    string `json:"userId"`
	PlanType  string `json:"planType"`
	SessionID string `json:"sessionId"`
}

// UpdatePlan handles POST /api/update-plan. Input validation happens in the
// service before any upstream call.
func (h *BillingHandler) UpdatePlan(c *gin.Context) {
	var req updatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := h.svc.UpdatePlan(c.Request.Context(), billingapp.PlanUpdateInput{
		UserID:    req.UserID,
		Tier:      req.PlanType,
		SessionID: req.SessionID,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type confirmPlanRequest struct {
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
}

// ConfirmPlan handles POST /api/confirm-plan, the redirect-path flow driven
// by the success page.
func (h *BillingHandler) ConfirmPlan(c *gin.Context) {
	var req confirmPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := h.svc.ConfirmPlan(c.Request.Context(), req.SessionID, req.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// StripeWebhook handles POST /api/webhooks/stripe. Signature verification is
// the sole authenticity gate; the body is trusted only after it passes.
func (h *BillingHandler) StripeWebhook(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, webhookBodyLimit)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Failed to read request body")
		return
	}

	sig := c.GetHeader("Stripe-Signature")
	if sig == "" {
		respondError(c, http.StatusBadRequest, "Missing signature")
		return
	}

	event, err := webhook.ConstructEventWithOptions(payload, sig, h.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		slog.Error("webhook signature verification failed", "err", err)
		respondError(c, http.StatusBadRequest, "Invalid signature")
		return
	}

	if err := h.svc.HandleWebhookEvent(c.Request.Context(), event); err != nil {
		// Only pre-update failures (bad event, missing user, unresolved tier)
		// reach here; update failures are swallowed so Stripe gets its ack.
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
