package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	bootstrap "github.com/bearisterai/bearister-api/api/bootstrap"
	config "github.com/bearisterai/bearister-api/api/config"
	handlers "github.com/bearisterai/bearister-api/api/handlers"
)

// NewRouter returns the central HTTP router for the API.
func NewRouter() http.Handler {
	// Initialize app dependencies (non-fatal if it fails here; handlers re-check).
	if err := bootstrap.Ensure(); err != nil {
		slog.Error("bootstrap ensure failed", "err", err)
	}

	webhookSecret := ""
	if config.AppConfig != nil {
		webhookSecret = config.AppConfig.StripeWebhookSecret
	}

	billing := handlers.NewBillingHandler(bootstrap.GetBillingService(), webhookSecret)
	assistant := handlers.NewAssistantHandler(bootstrap.GetAssistantService())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "Stripe-Signature", "X-Request-ID")

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handlers.RequestID())
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	api.POST("/checkout", billing.CreateCheckout)
	api.GET("/verify-session", billing.VerifySession)
	api.POST("/update-plan", billing.UpdatePlan)
	api.POST("/confirm-plan", billing.ConfirmPlan)
	api.POST("/webhooks/stripe", billing.StripeWebhook)
	api.POST("/chat", assistant.Chat)

	return r
}
