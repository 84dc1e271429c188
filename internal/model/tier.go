package model

// SurvivalTier classifies resource health. Ordering is total, richest first.
type SurvivalTier string

const (
	TierRich      SurvivalTier = "rich"
	TierNormal    SurvivalTier = "normal"
	TierTight     SurvivalTier = "tight"
	TierDanger    SurvivalTier = "danger"
	TierHibernate SurvivalTier = "hibernate"
)

// TierOrder lists tiers richest to poorest. Position defines severity:
// a larger index is strictly worse.
var TierOrder = []SurvivalTier{TierRich, TierNormal, TierTight, TierDanger, TierHibernate}

// Index returns the tier's position in TierOrder, or len(TierOrder) for
// an unknown value so that corrupt data sorts as worst.
func (t SurvivalTier) Index() int {
	for i, v := range TierOrder {
		if v == t {
			return i
		}
	}
	return len(TierOrder)
}

// WorseThan reports whether t is strictly poorer than other.
func (t SurvivalTier) WorseThan(other SurvivalTier) bool {
	return t.Index() > other.Index()
}
