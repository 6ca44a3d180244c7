package bootstrap

import (
	"fmt"
	"sync"

	config "github.com/bearisterai/bearister-api/api/config"
	database "github.com/bearisterai/bearister-api/api/database"
	assistantapp "github.com/bearisterai/bearister-api/api/services/assistant/app"
	flowisegw "github.com/bearisterai/bearister-api/api/services/assistant/gateway/flowise"
	billingapp "github.com/bearisterai/bearister-api/api/services/billing/app"
	profilegw "github.com/bearisterai/bearister-api/api/services/billing/gateway/profile"
	stripegw "github.com/bearisterai/bearister-api/api/services/billing/gateway/stripe"
)

var billingService billingapp.Service
var assistantService assistantapp.Service
var initOnce sync.Once
var initErr error

// Init initializes config, the optional database, and third-party clients,
// and wires services.
func Init() error {
	// If a service has already been injected (e.g., tests), do not override or init heavy deps.
	if billingService != nil {
		return nil
	}
	var err error
	if config.AppConfig == nil {
		config.AppConfig, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := database.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	stripegw.SetKey(config.AppConfig.StripeSecretKey)

	billingService = billingapp.NewService(
		stripegw.New(),
		profilegw.New(config.AppConfig.ProfileAPIBaseURL),
		config.AppConfig.SiteBaseURL,
	)

	if config.AppConfig.AssistantPredictionURL != "" {
		assistantService = assistantapp.NewService(flowisegw.New(config.AppConfig.AssistantPredictionURL))
	}
	return nil
}

func GetBillingService() billingapp.Service { return billingService }

// SetBillingService allows tests to inject a stub implementation.
func SetBillingService(s billingapp.Service) { billingService = s }

func GetAssistantService() assistantapp.Service { return assistantService }

// SetAssistantService allows tests to inject a stub implementation.
func SetAssistantService(s assistantapp.Service) { assistantService = s }

// Ensure runs Init() once per process and returns any initialization error.
func Ensure() error {
	initOnce.Do(func() {
		initErr = Init()
	})
	return initErr
}
