package loyalty

import (
	"errors"
	"fmt"
	"math"
)

var ErrThresholdOrder = errors.New("tier thresholds must be strictly increasing")

// DefaultThresholds are the minimum cumulative spend (VND) per tier.
var DefaultThresholds = map[Tier]float64{
	Bronze:  0,
	Silver:  10_000_000,
	Gold:    30_000_000,
	Diamond: 50_000_000,
}

// Ladder holds one spend threshold per tier, indexed by Tier.Position.
type Ladder struct {
	thresholds []float64
}

// TierStep describes one rung of the ladder for display.
type TierStep struct {
	Tier      Tier    `json:"tier"`
	Threshold float64 `json:"threshold"`
}

// RankProgress is what the account page renders under the rank badge.
type RankProgress struct {
	Current         Tier    `json:"current"`
	Next            *Tier   `json:"next,omitempty"`
	TotalSpent      float64 `json:"total_spent"`
	NextThreshold   float64 `json:"next_threshold,omitempty"`
	ProgressPercent float64 `json:"progress_percent"`
	AmountToNext    float64 `json:"amount_to_next"`
}

// NewLadder validates that every tier has a threshold and that thresholds
// strictly increase with tier order.
func NewLadder(thresholds map[Tier]float64) (*Ladder, error) {
	l := &Ladder{thresholds: make([]float64, len(Tiers))}
	for i, t := range Tiers {
		v, ok := thresholds[t]
		if !ok {
			return nil, fmt.Errorf("missing threshold for %s", t)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("invalid threshold for %s: %v", t, v)
		}
		if i > 0 && v <= l.thresholds[i-1] {
			return nil, fmt.Errorf("%w: %s (%v) <= %s (%v)", ErrThresholdOrder, t, v, Tiers[i-1], l.thresholds[i-1])
		}
		l.thresholds[i] = v
	}
	return l, nil
}

// DefaultLadder returns a ladder built from DefaultThresholds.
func DefaultLadder() *Ladder {
	l, err := NewLadder(DefaultThresholds)
	if err != nil {
		panic(err)
	}
	return l
}

func (l *Ladder) Threshold(t Tier) float64 {
	return l.thresholds[normalize(t).Position()]
}

// NextTier returns the tier immediately above t. ok is false at the top tier.
func (l *Ladder) NextTier(t Tier) (next Tier, ok bool) {
	pos := normalize(t).Position()
	if pos+1 >= len(Tiers) {
		return "", false
	}
	return Tiers[pos+1], true
}

// ProgressPercent is the share of the gap between the current and next
// threshold already covered, clamped into [0, 100]. The top tier is 100.
func (l *Ladder) ProgressPercent(t Tier, totalSpent float64) float64 {
	next, ok := l.NextTier(t)
	if !ok {
		return 100
	}

	floor := l.Threshold(t)
	span := l.Threshold(next) - floor
	pct := (spend(totalSpent) - floor) / span * 100
	return math.Max(0, math.Min(100, pct))
}

// AmountToNextTier is the spend still missing to reach the next tier, never
// below zero. The top tier returns 0.
func (l *Ladder) AmountToNextTier(t Tier, totalSpent float64) float64 {
	next, ok := l.NextTier(t)
	if !ok {
		return 0
	}
	return math.Max(0, l.Threshold(next)-spend(totalSpent))
}

// Progress bundles NextTier, ProgressPercent and AmountToNextTier.
func (l *Ladder) Progress(t Tier, totalSpent float64) RankProgress {
	t = normalize(t)
	p := RankProgress{
		Current:         t,
		TotalSpent:      totalSpent,
		ProgressPercent: l.ProgressPercent(t, totalSpent),
		AmountToNext:    l.AmountToNextTier(t, totalSpent),
	}
	if next, ok := l.NextTier(t); ok {
		p.Next = &next
		p.NextThreshold = l.Threshold(next)
	}
	return p
}

// TierForSpend is the backend assignment rule: the highest tier whose
// threshold does not exceed totalSpent. Read paths take the stored tier
// instead of calling this.
func (l *Ladder) TierForSpend(totalSpent float64) Tier {
	s := spend(totalSpent)
	tier := Tiers[0]
	for i, t := range Tiers {
		if s >= l.thresholds[i] {
			tier = t
		}
	}
	return tier
}

func (l *Ladder) Steps() []TierStep {
	steps := make([]TierStep, len(Tiers))
	for i, t := range Tiers {
		steps[i] = TierStep{Tier: t, Threshold: l.thresholds[i]}
	}
	return steps
}

// normalize maps unknown tiers onto the lowest tier.
func normalize(t Tier) Tier {
	if !t.Valid() {
		return Tiers[0]
	}
	return t
}

func spend(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
