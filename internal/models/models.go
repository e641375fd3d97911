package models

import (
	"time"
)

// Categories is the fixed set of product categories the boutique sells.
var Categories = []string{"Sarees", "Chudidars", "Bangles", "Jewellery"}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// FallbackImage is shown for products with no uploaded images. It is a
// display-time substitute only and is never written into a product record.
const FallbackImage = "https://images.unsplash.com/photo-1605022600070-c8aa0c19e53d?q=80&w=1200&auto=format&fit=crop"

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Images      []string  `json:"images"`
	Description string    `json:"description"`
	Visible     bool      `json:"visible"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DisplayName substitutes a label for products saved without a name.
func (p Product) DisplayName() string {
	if p.Name == "" {
		return "Unnamed"
	}
	return p.Name
}

// Cover is the image used on listing cards: the first uploaded image, or the
// fallback when none were uploaded.
func (p Product) Cover() string {
	if len(p.Images) == 0 {
		return FallbackImage
	}
	return p.Images[0]
}

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"` // bcrypt hash
}
