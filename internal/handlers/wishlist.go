package handlers

import (
	"net/http"

	"github.com/aureliacouture/boutique/internal/store"
	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
)

type WishlistHandler struct {
	Catalog        *store.Catalog
	Wishlist       *store.Wishlist
	Templates      *TemplateCache
	SessionStore   *sessions.CookieStore
	Brand          string
	WhatsAppNumber string
}

// Show lists the wishlisted products in catalog order. Ids left behind by
// deleted products are not rendered.
func (h *WishlistHandler) Show(w http.ResponseWriter, r *http.Request) {
	items := h.Wishlist.Products(h.Catalog.List())

	tmpl := h.Templates.Get("wishlist.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	session, _ := h.SessionStore.Get(r, "public-session")
	data := map[string]interface{}{
		"Brand":     h.Brand,
		"Items":     items,
		"ChatURL":   ChatLink(h.WhatsAppNumber),
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

// Toggle flips wishlist membership for one product and sends the shopper
// back where they came from.
func (h *WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "public-session")
	defer session.Save(r, w)

	id := r.FormValue("id")
	if id == "" {
		session.AddFlash(FlashMessage{Type: "error", Message: "Invalid product."})
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if h.Wishlist.Toggle(id) {
		session.AddFlash(FlashMessage{Type: "success", Message: "Added to wishlist."})
	} else {
		session.AddFlash(FlashMessage{Type: "success", Message: "Removed from wishlist."})
	}

	back := r.Referer()
	if back == "" {
		back = "/"
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}
