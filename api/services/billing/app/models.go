package app

// TierCode is the canonical plan level stored on the external user record.
type TierCode string

const (
	TierBasic    TierCode = "BASIC"
	TierCore     TierCode = "CORE"
	TierAdvanced TierCode = "ADVANCED"
	TierPro      TierCode = "PRO"
)

// Valid reports whether t is one of the four enumerated tier codes.
func (t TierCode) Valid() bool {
	switch t {
	case TierBasic, TierCore, TierAdvanced, TierPro:
		return true
	}
	return false
}

// Amount thresholds for deriving a tier from a paid amount (minor currency
// units, inclusive lower bounds). An amount of exactly 9900 is PRO, not
// ADVANCED; edge-priced purchases must never be silently downgraded.
const (
	ProThreshold      int64 = 9900
	AdvancedThreshold int64 = 4000
	CoreThreshold     int64 = 2000
)

// PlanCatalogEntry is one row of the static price catalog.
type PlanCatalogEntry struct {
	PlanID      string
	DisplayName string
	// UnitAmount is the monthly price in minor currency units.
	UnitAmount int64
	Tier       TierCode
}

// CheckoutResponse is handed to the client-side redirect mechanism.
type CheckoutResponse struct {
	SessionID string `json:"sessionId"`
}

// SessionVerification is the provider-confirmed state of a checkout session.
type SessionVerification struct {
	Status        string   `json:"status"`
	CustomerEmail string   `json:"customer_email"`
	AmountTotal   int64    `json:"amount_total"`
	PlanID        string   `json:"priceId,omitempty"`
	Tier          TierCode `json:"planType,omitempty"`
}

// PlanUpdateInput is validated before any network call is attempted.
type PlanUpdateInput struct {
	UserID    string `validate:"required"`
	Tier      string `validate:"required,oneof=BASIC CORE ADVANCED PRO"`
	SessionID string
}

// PlanUpdateResult is the outcome reported to client-facing paths.
type PlanUpdateResult struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data,omitempty"`
	Message string         `json:"message"`
}
