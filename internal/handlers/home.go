package handlers

import (
	"net/http"
	"strconv"

	"github.com/aureliacouture/boutique/internal/store"
	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
)

// defaultMaxPrice matches the top of the storefront's price slider.
const defaultMaxPrice = 100000

type HeroSlide struct {
	Title    string
	Subtitle string
	Image    string
}

var heroSlides = []HeroSlide{
	{
		Title:    "New Arrivals",
		Subtitle: "Handwoven Sarees",
		Image:    "https://images.unsplash.com/photo-1605022600070-c8aa0c19e53d?q=80&w=1600&auto=format&fit=crop",
	},
	{
		Title:    "Festive Edit",
		Subtitle: "Designer Chudidars",
		Image:    "https://images.unsplash.com/photo-1555679423-7d5f4f8753d1?q=80&w=1600&auto=format&fit=crop",
	},
	{
		Title:    "Timeless Shine",
		Subtitle: "Bangles & Jewellery",
		Image:    "https://images.unsplash.com/photo-1598908314072-c2a3c9630a1b?q=80&w=1600&auto=format&fit=crop",
	},
}

type CategoryTile struct {
	Name  string
	Image string
}

var categoryTiles = []CategoryTile{
	{Name: "Sarees", Image: "https://images.unsplash.com/photo-1591348277618-98ebd70cf2c6?q=80&w=1200&auto=format&fit=crop"},
	{Name: "Chudidars", Image: "https://images.unsplash.com/photo-1604335399105-a0d7b1498a94?q=80&w=1200&auto=format&fit=crop"},
	{Name: "Bangles", Image: "https://images.unsplash.com/photo-1596461404969-9ae70c1cb9ce?q=80&w=1200&auto=format&fit=crop"},
	{Name: "Jewellery", Image: "https://images.unsplash.com/photo-1610030469976-96efff889df4?q=80&w=1200&auto=format&fit=crop"},
}

type HomeHandler struct {
	Catalog        *store.Catalog
	Wishlist       *store.Wishlist
	Templates      *TemplateCache
	SessionStore   *sessions.CookieStore
	Brand          string
	WhatsAppNumber string
}

// Index renders the storefront: hero carousel, category tiles and the
// filtered gallery. Filter state travels in the query string.
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := store.Filter{
		Query:    query.Get("q"),
		Category: query.Get("category"),
		MaxPrice: defaultMaxPrice,
	}
	if filter.Category == "" {
		filter.Category = "All"
	}
	if s := query.Get("max"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil && v > 0 {
			filter.MaxPrice = v
		}
	}

	// The displayed hero slide cycles; prev/next links wrap around.
	slide := 0
	if s := query.Get("slide"); s != "" {
		if i, err := strconv.Atoi(s); err == nil {
			n := len(heroSlides)
			slide = ((i % n) + n) % n
		}
	}

	products := store.FilterProducts(h.Catalog.List(), filter)

	wished := make(map[string]bool)
	for _, id := range h.Wishlist.Members() {
		wished[id] = true
	}

	tmpl := h.Templates.Get("home.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	publicSession, _ := h.SessionStore.Get(r, "public-session")
	adminSession, _ := h.SessionStore.Get(r, "admin-session")
	isAdmin := false
	if auth, ok := adminSession.Values["authenticated"].(bool); ok && auth {
		isAdmin = true
	}

	data := map[string]interface{}{
		"Brand":         h.Brand,
		"Slides":        heroSlides,
		"Slide":         slide,
		"PrevSlide":     (slide - 1 + len(heroSlides)) % len(heroSlides),
		"NextSlide":     (slide + 1) % len(heroSlides),
		"CategoryTiles": categoryTiles,
		"Products":      products,
		"Query":         filter.Query,
		"Category":      filter.Category,
		"MaxPrice":      filter.MaxPrice,
		"Wished":        wished,
		"WishlistCount": h.Wishlist.Len(),
		"ChatURL":       ChatLink(h.WhatsAppNumber),
		"IsAdmin":       isAdmin,
		"CsrfField":     csrf.TemplateField(r),
		"Flashes":       GetFlash(publicSession),
	}
	publicSession.Save(r, w)
	tmpl.Execute(w, data)
}

// Detail renders a single product with its image carousel and enquiry link.
func (h *HomeHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	product, ok := h.Catalog.Get(id)
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	images := product.Images
	if len(images) == 0 {
		images = []string{product.Cover()}
	}

	idx := 0
	if s := r.URL.Query().Get("img"); s != "" {
		if i, err := strconv.Atoi(s); err == nil {
			n := len(images)
			idx = ((i % n) + n) % n
		}
	}

	tmpl := h.Templates.Get("product.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	session, _ := h.SessionStore.Get(r, "public-session")
	data := map[string]interface{}{
		"Brand":      h.Brand,
		"Product":    product,
		"Images":     images,
		"Img":        idx,
		"PrevImg":    (idx - 1 + len(images)) % len(images),
		"NextImg":    (idx + 1) % len(images),
		"Wished":     h.Wishlist.Has(product.ID),
		"EnquiryURL": EnquiryLink(h.WhatsAppNumber, product),
		"CsrfField":  csrf.TemplateField(r),
		"Flashes":    GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}
