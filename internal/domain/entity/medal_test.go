package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGiftReward(t *testing.T) {
	tests := []struct {
		name     string
		medal    Medal
		expected int64
	}{
		{"ten percent of 50", Medal{Name: "bronze_gavel", Cost: 50, GiftRewardRatio: 0.10}, 5},
		{"fifteen percent of 1000", Medal{Name: "golden_gavel", Cost: 1000, GiftRewardRatio: 0.15}, 150},
		{"floors fractional reward", Medal{Name: "odd", Cost: 75, GiftRewardRatio: 0.10}, 7},
		{"zero ratio", Medal{Name: "plain", Cost: 100, GiftRewardRatio: 0}, 0},
		{"zero cost", Medal{Name: "free", Cost: 0, GiftRewardRatio: 0.10}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.medal.GiftReward())
		})
	}
}

func TestMedalReasons(t *testing.T) {
	m := Medal{Name: "orator", Cost: 500, GiftRewardRatio: 0.10}

	assert.Equal(t, "MEDAL_PURCHASE:orator", m.PurchaseReason())
	assert.Equal(t, "MEDAL_GIFT:orator", m.GiftReason())
	assert.True(t, IsStandardReason(m.PurchaseReason()))
	assert.True(t, IsStandardReason(m.GiftReason()))
}

func TestDefaultMedalCatalog(t *testing.T) {
	catalog := DefaultMedalCatalog()

	assert.NotEmpty(t, catalog)
	seen := make(map[string]bool)
	for _, m := range catalog {
		assert.False(t, seen[m.Name], "duplicate medal name %s", m.Name)
		seen[m.Name] = true
		assert.Positive(t, m.Cost)
		assert.GreaterOrEqual(t, m.GiftRewardRatio, 0.0)
	}
}
