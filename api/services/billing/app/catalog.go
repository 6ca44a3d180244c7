package app

// priceCatalog is the static plan catalog. Read-only after process start;
// amounts are what the thresholds in plan.go are calibrated against.
var priceCatalog = map[string]PlanCatalogEntry{
	"price_core": {
		PlanID:      "price_core",
		DisplayName: "Core Plan",
		UnitAmount:  2000, // $20.00
		Tier:        TierCore,
	},
	"price_advanced": {
		PlanID:      "price_advanced",
		DisplayName: "Advanced Plan",
		UnitAmount:  4000, // $40.00
		Tier:        TierAdvanced,
	},
	"price_pro": {
		PlanID:      "price_pro",
		DisplayName: "Pro Plan",
		UnitAmount:  9900, // $99.00
		Tier:        TierPro,
	},
}

// CatalogEntry looks up a plan by its price id.
func CatalogEntry(planID string) (PlanCatalogEntry, bool) {
	entry, ok := priceCatalog[planID]
	return entry, ok
}
