package entity

// Medal is a purchasable cosmetic from the VoteQuest store. Medals are bought
// with coins and can be gifted; the recipient of a gift earns a fraction of
// the medal's cost as a GIFT transaction.
type Medal struct {
	Name            string
	Cost            int64   // Purchase price in whole coins
	GiftRewardRatio float64 // Fraction of Cost credited to a gift recipient
}

// GiftReward returns the coin amount credited to a gift recipient,
// floor(Cost * GiftRewardRatio). Always non-negative.
func (m Medal) GiftReward() int64 {
	if m.GiftRewardRatio <= 0 || m.Cost <= 0 {
		return 0
	}
	return int64(float64(m.Cost) * m.GiftRewardRatio)
}

// PurchaseReason returns the reason code recorded for buying this medal
func (m Medal) PurchaseReason() string {
	return ReasonPrefixMedalPurchase + m.Name
}

// GiftReason returns the reason code recorded for gifting this medal
func (m Medal) GiftReason() string {
	return ReasonPrefixMedalGift + m.Name
}

// DefaultMedalCatalog is the built-in store catalog, used when no catalog is
// configured.
func DefaultMedalCatalog() []Medal {
	return []Medal{
		{Name: "bronze_gavel", Cost: 50, GiftRewardRatio: 0.10},
		{Name: "silver_gavel", Cost: 200, GiftRewardRatio: 0.10},
		{Name: "golden_gavel", Cost: 1000, GiftRewardRatio: 0.15},
		{Name: "orator", Cost: 500, GiftRewardRatio: 0.10},
		{Name: "peacemaker", Cost: 750, GiftRewardRatio: 0.12},
	}
}
