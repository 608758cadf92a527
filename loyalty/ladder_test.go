package loyalty

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLadder_Validation(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		_, err := NewLadder(DefaultThresholds)
		require.NoError(t, err)
	})

	t.Run("missing tier", func(t *testing.T) {
		_, err := NewLadder(map[Tier]float64{Bronze: 0, Silver: 1, Gold: 2})
		assert.Error(t, err)
	})

	t.Run("equal thresholds", func(t *testing.T) {
		_, err := NewLadder(map[Tier]float64{Bronze: 0, Silver: 10, Gold: 10, Diamond: 20})
		assert.ErrorIs(t, err, ErrThresholdOrder)
	})

	t.Run("decreasing thresholds", func(t *testing.T) {
		_, err := NewLadder(map[Tier]float64{Bronze: 0, Silver: 30, Gold: 20, Diamond: 40})
		assert.ErrorIs(t, err, ErrThresholdOrder)
	})

	t.Run("infinite threshold", func(t *testing.T) {
		_, err := NewLadder(map[Tier]float64{Bronze: 0, Silver: 10, Gold: 20, Diamond: math.Inf(1)})
		assert.Error(t, err)
	})
}

func TestLadder_NextTier(t *testing.T) {
	l := DefaultLadder()

	for i, tier := range Tiers[:len(Tiers)-1] {
		next, ok := l.NextTier(tier)
		require.True(t, ok, tier)
		assert.Equal(t, Tiers[i+1], next)
	}

	next, ok := l.NextTier(Diamond)
	assert.False(t, ok)
	assert.Equal(t, Tier(""), next)
}

func TestLadder_ProgressPercent(t *testing.T) {
	l := DefaultLadder()

	tests := []struct {
		name  string
		tier  Tier
		spent float64
		want  float64
	}{
		{name: "bronze halfway", tier: Bronze, spent: 5_000_000, want: 50},
		{name: "bronze at zero", tier: Bronze, spent: 0, want: 0},
		{name: "silver quarter", tier: Silver, spent: 15_000_000, want: 25},
		{name: "gold nearly there", tier: Gold, spent: 49_000_000, want: 95},
		{name: "top tier", tier: Diamond, spent: 1, want: 100},
		{name: "negative spend clamps", tier: Silver, spent: -1_000_000, want: 0},
		{name: "overshoot clamps", tier: Bronze, spent: 90_000_000, want: 100},
		{name: "unknown tier treated as bronze", tier: Tier("PLATINUM"), spent: 2_500_000, want: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, l.ProgressPercent(tt.tier, tt.spent), 1e-9)
		})
	}
}

func TestLadder_ProgressPercentAlwaysInRange(t *testing.T) {
	l := DefaultLadder()
	spends := []float64{
		math.Inf(-1), -math.MaxFloat64, -1, 0, 1, 9_999_999, 10_000_000,
		29_999_999.99, 50_000_000, math.MaxFloat64, math.Inf(1), math.NaN(),
	}

	for _, tier := range Tiers {
		for _, s := range spends {
			got := l.ProgressPercent(tier, s)
			assert.GreaterOrEqual(t, got, 0.0, "%s %v", tier, s)
			assert.LessOrEqual(t, got, 100.0, "%s %v", tier, s)
		}
	}
}

func TestLadder_AmountToNextTier(t *testing.T) {
	l := DefaultLadder()

	assert.Equal(t, 5_000_000.0, l.AmountToNextTier(Bronze, 5_000_000))
	assert.Equal(t, 20_000_000.0, l.AmountToNextTier(Silver, 10_000_000))
	assert.Equal(t, 0.0, l.AmountToNextTier(Diamond, 80_000_000))
	assert.Equal(t, 0.0, l.AmountToNextTier(Silver, 31_000_000), "clamped when spend passed the next threshold")
}

func TestLadder_Progress(t *testing.T) {
	l := DefaultLadder()

	p := l.Progress(Silver, 20_000_000)
	require.NotNil(t, p.Next)
	assert.Equal(t, Gold, *p.Next)
	assert.Equal(t, 30_000_000.0, p.NextThreshold)
	assert.InDelta(t, 50.0, p.ProgressPercent, 1e-9)
	assert.Equal(t, 10_000_000.0, p.AmountToNext)

	top := l.Progress(Diamond, 60_000_000)
	assert.Nil(t, top.Next)
	assert.Equal(t, 100.0, top.ProgressPercent)
	assert.Zero(t, top.AmountToNext)
}

func TestLadder_TierForSpend(t *testing.T) {
	l := DefaultLadder()

	assert.Equal(t, Bronze, l.TierForSpend(-5))
	assert.Equal(t, Bronze, l.TierForSpend(9_999_999))
	assert.Equal(t, Silver, l.TierForSpend(10_000_000))
	assert.Equal(t, Gold, l.TierForSpend(49_999_999))
	assert.Equal(t, Diamond, l.TierForSpend(50_000_000))
}

func TestLadder_Steps(t *testing.T) {
	steps := DefaultLadder().Steps()

	require.Len(t, steps, 4)
	assert.Equal(t, TierStep{Tier: Bronze, Threshold: 0}, steps[0])
	assert.Equal(t, TierStep{Tier: Diamond, Threshold: 50_000_000}, steps[3])
}
