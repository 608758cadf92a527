package filters

import (
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/phnam24/frontend-v1-sub001/pricing"
)

// Observer is called with a snapshot after every state transition. A
// returned error is handed back to the caller of the mutating method; the
// transition itself is not rolled back.
type Observer func(Criteria) error

// State is the filter selection of one shopper session. It performs no I/O;
// persistence hangs off it as an Observer.
type State struct {
	mu        sync.Mutex
	criteria  Criteria
	observers []Observer
}

func NewState(initial Criteria, observers ...Observer) *State {
	return &State{
		criteria:  initial.Normalize(),
		observers: observers,
	}
}

// Subscribe registers an observer for subsequent transitions.
func (s *State) Subscribe(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

func (s *State) Snapshot() Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria.Clone()
}

func (s *State) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria.ActiveCount()
}

// ── Categories & brands ──────────────────────────────────────────────────────

func (s *State) ToggleCategory(id int64) error {
	return s.update(func(c *Criteria) { c.CategoryIDs = toggle(c.CategoryIDs, id) })
}

func (s *State) SetCategories(ids []int64) error {
	return s.update(func(c *Criteria) { c.CategoryIDs = canonical(ids) })
}

func (s *State) ClearCategories() error {
	return s.update(func(c *Criteria) { c.CategoryIDs = nil })
}

func (s *State) ToggleBrand(id int64) error {
	return s.update(func(c *Criteria) { c.BrandIDs = toggle(c.BrandIDs, id) })
}

func (s *State) SetBrands(ids []int64) error {
	return s.update(func(c *Criteria) { c.BrandIDs = canonical(ids) })
}

func (s *State) ClearBrands() error {
	return s.update(func(c *Criteria) { c.BrandIDs = nil })
}

// ── Hardware facets ──────────────────────────────────────────────────────────

// ToggleFacet adds or removes value from facet f. Blank values are ignored.
func (s *State) ToggleFacet(f Facet, value string) error {
	if !slices.Contains(Facets, f) {
		return ErrUnknownFacet
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return s.update(func(c *Criteria) {
		p := c.facet(f)
		*p = toggle(*p, value)
	})
}

func (s *State) SetFacet(f Facet, values []string) error {
	if !slices.Contains(Facets, f) {
		return ErrUnknownFacet
	}
	return s.update(func(c *Criteria) { *c.facet(f) = canonical(trimAll(values)) })
}

func (s *State) ClearFacet(f Facet) error {
	return s.SetFacet(f, nil)
}

// ── Price & sort ─────────────────────────────────────────────────────────────

// SetPriceRange stores the range as given; min > max is not rejected.
func (s *State) SetPriceRange(minPrice, maxPrice float64) error {
	return s.update(func(c *Criteria) { c.Price = PriceRange{Min: minPrice, Max: maxPrice} })
}

func (s *State) ClearPriceRange() error {
	return s.update(func(c *Criteria) { c.Price = FullPriceRange() })
}

func (s *State) SetSort(key pricing.SortKey) error {
	return s.update(func(c *Criteria) { c.SortBy = pricing.ParseSortKey(string(key)) })
}

// Reset clears every filter and keeps the sort selection.
func (s *State) Reset() error {
	return s.update(func(c *Criteria) {
		sortBy := c.SortBy
		*c = NewCriteria()
		c.SortBy = sortBy
	})
}

func (s *State) update(mutate func(*Criteria)) error {
	s.mu.Lock()
	mutate(&s.criteria)
	snap := s.criteria.Clone()
	observers := slices.Clone(s.observers)
	s.mu.Unlock()

	var errs []error
	for _, o := range observers {
		if err := o(snap); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
