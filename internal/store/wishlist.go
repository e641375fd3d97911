package store

import (
	"log/slog"
	"sync"

	"github.com/aureliacouture/boutique/internal/models"
)

const wishlistKey = "wishlist"

// Wishlist is the shopper-maintained set of product ids, persisted
// independently of the catalog. Deleting a product does not clean the
// wishlist; dangling ids are simply skipped when deriving views.
type Wishlist struct {
	mu    sync.RWMutex
	store *Store
	ids   []string
}

func NewWishlist(s *Store) *Wishlist {
	w := &Wishlist{store: s}
	s.Get(wishlistKey, &w.ids)
	return w
}

// Toggle adds the id if absent and removes it if present, reporting whether
// the id is a member afterwards. Toggling twice restores the original state.
func (w *Wishlist) Toggle(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, existing := range w.ids {
		if existing == id {
			w.ids = append(w.ids[:i], w.ids[i+1:]...)
			w.persistLocked()
			return false
		}
	}
	w.ids = append(w.ids, id)
	w.persistLocked()
	return true
}

// Has reports membership of a single id.
func (w *Wishlist) Has(id string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, existing := range w.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Members returns the wishlisted ids.
func (w *Wishlist) Members() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]string, len(w.ids))
	copy(out, w.ids)
	return out
}

func (w *Wishlist) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.ids)
}

// Products selects the wishlisted subset of the given catalog listing,
// keeping the listing's order. Ids without a matching product are excluded.
func (w *Wishlist) Products(catalog []models.Product) []models.Product {
	members := make(map[string]struct{})
	for _, id := range w.Members() {
		members[id] = struct{}{}
	}

	var out []models.Product
	for _, p := range catalog {
		if _, ok := members[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}

func (w *Wishlist) persistLocked() {
	if err := w.store.Put(wishlistKey, w.ids); err != nil {
		slog.Error("Failed to persist wishlist", "error", err)
	}
}
