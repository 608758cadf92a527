package main

import (
	"testing"

	"github.com/google/uuid"
	"github.com/phnam24/frontend-v1-sub001/loyalty"
	"github.com/phnam24/frontend-v1-sub001/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignRanks_DemoUsers(t *testing.T) {
	users := assignRanks(demoUsers(), loyalty.DefaultLadder())

	got := make([]loyalty.Tier, len(users))
	for i, u := range users {
		got[i] = u.Rank
	}
	assert.Equal(t, []loyalty.Tier{loyalty.Bronze, loyalty.Silver, loyalty.Gold, loyalty.Diamond}, got)

	// the demo slice itself is left untouched
	assert.Empty(t, demoUsers()[0].Rank)
}

func TestRankChanges(t *testing.T) {
	stale := uuid.New()
	users := []models.User{
		{ID: uuid.New(), Email: "ok@shop.local", Rank: loyalty.Silver, TotalSpent: 12_000_000},
		{ID: stale, Email: "up@shop.local", Rank: loyalty.Silver, TotalSpent: 31_000_000},
	}

	changes := rankChanges(users, loyalty.DefaultLadder())
	require.Len(t, changes, 1)
	assert.Equal(t, rankChange{UserID: stale, Email: "up@shop.local", From: loyalty.Silver, To: loyalty.Gold}, changes[0])
}

func TestDemoCatalog(t *testing.T) {
	seen := map[string]bool{}
	for _, v := range demoVouchers() {
		assert.True(t, v.MinRank.Valid(), v.Code)
		assert.False(t, seen[v.Code], "duplicate voucher %s", v.Code)
		seen[v.Code] = true
	}

	for _, p := range demoProducts() {
		assert.GreaterOrEqual(t, p.ListPrice, p.SalePrice, p.Name)
	}
}
