package main

import (
	"github.com/google/uuid"
	"github.com/phnam24/frontend-v1-sub001/loyalty"
	"github.com/phnam24/frontend-v1-sub001/models"
)

type rankChange struct {
	UserID uuid.UUID
	Email  string
	From   loyalty.Tier
	To     loyalty.Tier
}

// assignRanks sets each user's rank from their lifetime spend.
func assignRanks(users []models.User, ladder *loyalty.Ladder) []models.User {
	out := make([]models.User, len(users))
	for i, u := range users {
		u.Rank = ladder.TierForSpend(u.TotalSpent)
		out[i] = u
	}
	return out
}

// rankChanges lists users whose stored rank differs from what their spend earns.
func rankChanges(users []models.User, ladder *loyalty.Ladder) []rankChange {
	var changes []rankChange
	for _, u := range users {
		if want := ladder.TierForSpend(u.TotalSpent); want != u.Rank {
			changes = append(changes, rankChange{UserID: u.ID, Email: u.Email, From: u.Rank, To: want})
		}
	}
	return changes
}
