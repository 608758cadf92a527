package filters

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/phnam24/frontend-v1-sub001/pricing"
)

// PriceUnbounded is the "no upper limit" sentinel for PriceRange.Max.
const PriceUnbounded = math.MaxFloat64

var ErrUnknownFacet = errors.New("unknown facet")

// Facet names a hardware attribute the catalog can be narrowed by.
type Facet string

const (
	FacetCPU        Facet = "cpu"
	FacetRAM        Facet = "ram"
	FacetStorage    Facet = "storage"
	FacetScreenSize Facet = "screen"
	FacetGPU        Facet = "gpu"
)

var Facets = []Facet{FacetCPU, FacetRAM, FacetStorage, FacetScreenSize, FacetGPU}

func ParseFacet(raw string) (Facet, error) {
	f := Facet(strings.ToLower(strings.TrimSpace(raw)))
	if !slices.Contains(Facets, f) {
		return "", fmt.Errorf("%w: %q", ErrUnknownFacet, raw)
	}
	return f, nil
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FullPriceRange is the default, unfiltered range.
func FullPriceRange() PriceRange {
	return PriceRange{Min: 0, Max: PriceUnbounded}
}

func (r PriceRange) IsFull() bool {
	return r == FullPriceRange()
}

// Criteria is the set of catalog filters a shopper has picked.
// Sets are kept sorted and duplicate-free; an empty set is nil.
type Criteria struct {
	CategoryIDs []int64         `json:"category_ids,omitempty"`
	BrandIDs    []int64         `json:"brand_ids,omitempty"`
	Price       PriceRange      `json:"price"`
	CPU         []string        `json:"cpu,omitempty"`
	RAM         []string        `json:"ram,omitempty"`
	Storage     []string        `json:"storage,omitempty"`
	ScreenSize  []string        `json:"screen,omitempty"`
	GPU         []string        `json:"gpu,omitempty"`
	SortBy      pricing.SortKey `json:"sort_by"`
}

// NewCriteria returns the empty selection with the default sort.
func NewCriteria() Criteria {
	return Criteria{Price: FullPriceRange(), SortBy: pricing.SortNewest}
}

// ActiveCount counts one per selected category, brand and facet value, plus
// one when the price range is narrowed.
func (c Criteria) ActiveCount() int {
	n := len(c.CategoryIDs) + len(c.BrandIDs)
	if !c.Price.IsFull() {
		n++
	}
	for _, f := range Facets {
		n += len(c.Values(f))
	}
	return n
}

// Values returns the selected values for f.
func (c Criteria) Values(f Facet) []string {
	if p := c.facet(f); p != nil {
		return *p
	}
	return nil
}

func (c Criteria) Clone() Criteria {
	out := c
	out.CategoryIDs = slices.Clone(c.CategoryIDs)
	out.BrandIDs = slices.Clone(c.BrandIDs)
	for _, f := range Facets {
		*out.facet(f) = slices.Clone(c.Values(f))
	}
	return out
}

// Normalize puts decoded or hand-built criteria into canonical form.
func (c Criteria) Normalize() Criteria {
	out := c
	out.CategoryIDs = canonical(c.CategoryIDs)
	out.BrandIDs = canonical(c.BrandIDs)
	for _, f := range Facets {
		*out.facet(f) = canonical(trimAll(c.Values(f)))
	}
	out.SortBy = pricing.ParseSortKey(string(c.SortBy))
	return out
}

func (c *Criteria) facet(f Facet) *[]string {
	switch f {
	case FacetCPU:
		return &c.CPU
	case FacetRAM:
		return &c.RAM
	case FacetStorage:
		return &c.Storage
	case FacetScreenSize:
		return &c.ScreenSize
	case FacetGPU:
		return &c.GPU
	}
	return nil
}

// ─────────────────────────────────────────────────────────────
// Set helpers
// ─────────────────────────────────────────────────────────────

// toggle adds v when absent and removes it when present. set is never modified in place.
func toggle[T cmp.Ordered](set []T, v T) []T {
	i, found := slices.BinarySearch(set, v)
	if found {
		if len(set) == 1 {
			return nil
		}
		return slices.Delete(slices.Clone(set), i, i+1)
	}
	return slices.Insert(slices.Clone(set), i, v)
}

func canonical[T cmp.Ordered](vals []T) []T {
	if len(vals) == 0 {
		return nil
	}
	out := slices.Clone(vals)
	slices.Sort(out)
	return slices.Compact(out)
}

func trimAll(vals []string) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
