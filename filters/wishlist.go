package filters

import (
	"errors"
	"slices"
	"sync"
)

// Wishlist is the set of product ids a shopper saved. Like State it only
// notifies observers; storing is their job.
type Wishlist struct {
	mu        sync.Mutex
	ids       []int64
	observers []func([]int64) error
}

func NewWishlist(ids []int64, observers ...func([]int64) error) *Wishlist {
	return &Wishlist{ids: canonical(ids), observers: observers}
}

func (w *Wishlist) IDs() []int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.ids)
}

func (w *Wishlist) Has(id int64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, found := slices.BinarySearch(w.ids, id)
	return found
}

// Toggle saves id when absent and drops it otherwise. It reports whether id
// is saved afterwards.
func (w *Wishlist) Toggle(id int64) (bool, error) {
	var saved bool
	err := w.update(func(ids []int64) []int64 {
		next := toggle(ids, id)
		saved = len(next) > len(ids)
		return next
	})
	return saved, err
}

func (w *Wishlist) Remove(id int64) error {
	return w.update(func(ids []int64) []int64 {
		if _, found := slices.BinarySearch(ids, id); found {
			return toggle(ids, id)
		}
		return ids
	})
}

func (w *Wishlist) Clear() error {
	return w.update(func([]int64) []int64 { return nil })
}

func (w *Wishlist) update(mutate func([]int64) []int64) error {
	w.mu.Lock()
	w.ids = mutate(w.ids)
	snap := slices.Clone(w.ids)
	observers := slices.Clone(w.observers)
	w.mu.Unlock()

	var errs []error
	for _, o := range observers {
		if err := o(snap); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
