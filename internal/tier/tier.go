package tier

import "VitalSentinel/internal/model"

// DefaultThresholds is the out-of-the-box balance→tier mapping.
var DefaultThresholds = model.TierThresholds{
	Rich:   1_000_000,
	Normal: 200_000,
	Tight:  50_000,
	Danger: 10_000,
}

// table flattens the thresholds richest-first. Hibernate has no threshold:
// it catches everything below danger, including negative balances.
func table(th model.TierThresholds) []struct {
	Min  int64
	Tier model.SurvivalTier
} {
	return []struct {
		Min  int64
		Tier model.SurvivalTier
	}{
		{th.Rich, model.TierRich},
		{th.Normal, model.TierNormal},
		{th.Tight, model.TierTight},
		{th.Danger, model.TierDanger},
	}
}

// Classify maps a token balance to the richest tier whose threshold is
// at or below that balance. Pure function of its inputs.
func Classify(balance int64, th model.TierThresholds) model.SurvivalTier {
	for _, t := range table(th) {
		if balance >= t.Min {
			return t.Tier
		}
	}
	return model.TierHibernate
}
