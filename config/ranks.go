package config

import (
	"fmt"
	"os"

	"github.com/phnam24/frontend-v1-sub001/loyalty"
	"gopkg.in/yaml.v3"
)

// rankFile is the RANK_CONFIG layout:
//
//	thresholds:
//	  BRONZE: 0
//	  SILVER: 10000000
//	  GOLD: 30000000
//	  DIAMOND: 50000000
type rankFile struct {
	Thresholds map[string]float64 `yaml:"thresholds"`
}

// LoadLadder builds the rank ladder from path, or the default ladder when
// path is empty. Tiers missing from the file keep their default threshold.
func LoadLadder(path string) (*loyalty.Ladder, error) {
	if path == "" {
		return loyalty.DefaultLadder(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rank config: %w", err)
	}
	return parseLadder(raw)
}

func parseLadder(raw []byte) (*loyalty.Ladder, error) {
	var f rankFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse rank config: %w", err)
	}

	thresholds := make(map[loyalty.Tier]float64, len(loyalty.Tiers))
	for t, v := range loyalty.DefaultThresholds {
		thresholds[t] = v
	}
	for name, v := range f.Thresholds {
		tier, err := loyalty.ParseTier(name)
		if err != nil {
			return nil, fmt.Errorf("rank config: %w", err)
		}
		thresholds[tier] = v
	}

	return loyalty.NewLadder(thresholds)
}
