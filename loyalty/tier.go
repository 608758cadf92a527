package loyalty

import (
	"fmt"
	"slices"
	"strings"
)

// Tier is a loyalty rank assigned by the backend from cumulative spend.
type Tier string

const (
	Bronze  Tier = "BRONZE"
	Silver  Tier = "SILVER"
	Gold    Tier = "GOLD"
	Diamond Tier = "DIAMOND"
)

// Tiers is the fixed ordering, lowest first.
var Tiers = []Tier{Bronze, Silver, Gold, Diamond}

// Position returns the index of t in Tiers, or -1 for an unknown tier.
func (t Tier) Position() int {
	return slices.Index(Tiers, t)
}

func (t Tier) Valid() bool {
	return t.Position() >= 0
}

// ParseTier accepts any casing ("gold", "Gold").
func ParseTier(raw string) (Tier, error) {
	t := Tier(strings.ToUpper(strings.TrimSpace(raw)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown tier %q", raw)
	}
	return t, nil
}
