package tier

import (
	"testing"

	"VitalSentinel/internal/model"
)

func TestClassify_Boundaries(t *testing.T) {
	cases := []struct {
		balance int64
		want    model.SurvivalTier
	}{
		{1_100_000, model.TierRich},
		{1_000_000, model.TierRich},
		{999_999, model.TierNormal},
		{250_000, model.TierNormal},
		{200_000, model.TierNormal},
		{199_999, model.TierTight},
		{50_000, model.TierTight},
		{49_999, model.TierDanger},
		{10_000, model.TierDanger},
		{9_000, model.TierHibernate},
		{0, model.TierHibernate},
		{-5_000, model.TierHibernate},
	}
	for _, c := range cases {
		if got := Classify(c.balance, DefaultThresholds); got != c.want {
			t.Errorf("Classify(%d) = %s, want %s", c.balance, got, c.want)
		}
	}
}

func TestClassify_Monotonic(t *testing.T) {
	prev := Classify(-100_000, DefaultThresholds)
	for balance := int64(-100_000); balance <= 2_000_000; balance += 1_000 {
		cur := Classify(balance, DefaultThresholds)
		if cur.Index() > prev.Index() {
			t.Fatalf("tier worsened from %s to %s as balance rose to %d", prev, cur, balance)
		}
		prev = cur
	}
}

func TestTierOrdering(t *testing.T) {
	if !model.TierHibernate.WorseThan(model.TierDanger) {
		t.Error("hibernate should be worse than danger")
	}
	if model.TierRich.WorseThan(model.TierNormal) {
		t.Error("rich should not be worse than normal")
	}
	if model.SurvivalTier("garbage").Index() <= model.TierHibernate.Index() {
		t.Error("unknown tier should sort as worst")
	}
}
