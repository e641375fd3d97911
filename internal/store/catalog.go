package store

import (
	"log/slog"
	"sync"
	"time"

	"github.com/aureliacouture/boutique/internal/models"
	"github.com/google/uuid"
)

const productsKey = "products"

// Catalog owns the ordered product list, newest first. Every mutation
// rewrites the whole list to the store; a write failure is logged and the
// in-memory state stays authoritative for the rest of the process.
type Catalog struct {
	mu       sync.RWMutex
	store    *Store
	products []models.Product
}

// NewCatalog loads the persisted catalog. An absent or unreadable document
// yields an empty catalog.
func NewCatalog(s *Store) *Catalog {
	c := &Catalog{store: s}
	s.Get(productsKey, &c.products)
	return c
}

// Create assigns a fresh id and creation timestamp to the draft and puts it
// at the front of the catalog.
func (c *Catalog) Create(draft models.Product) models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	draft.ID = uuid.New().String()
	draft.CreatedAt = time.Now().UTC()
	c.products = append([]models.Product{draft}, c.products...)
	c.persistLocked()
	return draft
}

// Update replaces the product with the given id. The id and creation
// timestamp are carried over from the stored record regardless of what the
// patch contains. Returns false when no product has that id.
func (c *Catalog) Update(id string, patch models.Product) (models.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, p := range c.products {
		if p.ID == id {
			patch.ID = p.ID
			patch.CreatedAt = p.CreatedAt
			c.products[i] = patch
			c.persistLocked()
			return patch, true
		}
	}
	return models.Product{}, false
}

// Remove deletes the product with the given id, reporting whether it existed.
func (c *Catalog) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, p := range c.products {
		if p.ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			c.persistLocked()
			return true
		}
	}
	return false
}

// SetVisibility flips the shopper-facing flag in place; position and every
// other field are untouched.
func (c *Catalog) SetVisibility(id string, visible bool) (models.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID == id {
			c.products[i].Visible = visible
			c.persistLocked()
			return c.products[i], true
		}
	}
	return models.Product{}, false
}

// Get returns the product with the given id.
func (c *Catalog) Get(id string) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Exists reports whether a product with the given id is in the catalog.
func (c *Catalog) Exists(id string) bool {
	_, ok := c.Get(id)
	return ok
}

// List returns the catalog in order, most recently created first.
func (c *Catalog) List() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) persistLocked() {
	if err := c.store.Put(productsKey, c.products); err != nil {
		slog.Error("Failed to persist catalog", "error", err)
	}
}
