package app

// ResolveTier derives the canonical plan tier for a purchase. An explicit
// tier string wins when it is a member of the valid set; otherwise the paid
// amount is matched against descending inclusive thresholds. Pure function,
// both confirmation paths rely on it being deterministic so their writes
// converge.
//
// Returns false when neither input resolves; the caller must treat that as a
// hard failure, never default to a paid tier.
func ResolveTier(explicit string, amount int64) (TierCode, bool) {
	if explicit != "" {
		if t := TierCode(explicit); t.Valid() {
			return t, true
		}
	}
	switch {
	case amount >= ProThreshold:
		return TierPro, true
	case amount >= AdvancedThreshold:
		return TierAdvanced, true
	case amount >= CoreThreshold:
		return TierCore, true
	}
	return "", false
}
