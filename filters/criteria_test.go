package filters

import (
	"encoding/json"
	"testing"

	"github.com/phnam24/frontend-v1-sub001/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFacet(t *testing.T) {
	f, err := ParseFacet(" GPU ")
	require.NoError(t, err)
	assert.Equal(t, FacetGPU, f)

	_, err = ParseFacet("colour")
	assert.ErrorIs(t, err, ErrUnknownFacet)
}

func TestCriteria_Normalize(t *testing.T) {
	c := Criteria{
		CategoryIDs: []int64{5, 5, 1},
		BrandIDs:    []int64{},
		Price:       FullPriceRange(),
		CPU:         []string{"i7", " i5 ", "i7"},
		GPU:         []string{" "},
		SortBy:      "Discount_Desc",
	}

	got := c.Normalize()

	assert.Equal(t, []int64{1, 5}, got.CategoryIDs)
	assert.Nil(t, got.BrandIDs)
	assert.Equal(t, []string{"i5", "i7"}, got.CPU)
	assert.Nil(t, got.GPU)
	assert.Equal(t, pricing.SortDiscountDesc, got.SortBy)
}

func TestCriteria_JSONKeepsUnboundedPrice(t *testing.T) {
	c := NewCriteria()
	c.BrandIDs = []int64{3}

	blob, err := json.Marshal(c)
	require.NoError(t, err)

	decoded := NewCriteria()
	require.NoError(t, json.Unmarshal(blob, &decoded))

	assert.Equal(t, c, decoded)
	assert.True(t, decoded.Price.IsFull())
}

func TestCriteria_CloneIsDeep(t *testing.T) {
	c := NewCriteria()
	c.RAM = []string{"8GB"}
	c.CategoryIDs = []int64{1}

	clone := c.Clone()
	clone.RAM[0] = "64GB"
	clone.CategoryIDs[0] = 2

	assert.Equal(t, "8GB", c.RAM[0])
	assert.Equal(t, int64(1), c.CategoryIDs[0])
}
