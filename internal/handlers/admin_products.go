package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/aureliacouture/boutique/internal/models"
	"github.com/gorilla/csrf"
)

// parseDraft reads the editing form into a product draft. The draft is a
// free-standing copy; nothing in the catalog changes until save.
func parseDraft(r *http.Request) (models.Product, map[string]string) {
	draft := models.Product{
		Name:        r.FormValue("name"),
		Category:    r.FormValue("category"),
		Description: r.FormValue("description"),
		Visible:     r.FormValue("visible") == "on",
	}

	errors := make(map[string]string)
	priceStr := r.FormValue("price")
	if priceStr == "" {
		errors["price"] = "Price is required."
	} else if price, err := strconv.ParseFloat(priceStr, 64); err != nil {
		errors["price"] = "Invalid price format."
	} else if price < 0 {
		errors["price"] = "Price cannot be negative."
	} else {
		draft.Price = price
	}
	if !models.ValidCategory(draft.Category) {
		errors["category"] = "Invalid category selected."
	}
	return draft, errors
}

func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	// Admin sees ALL products including hidden ones
	products := h.Catalog.List()

	tmpl := h.Templates.Get("admin_products.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, "admin-session")
	data := map[string]interface{}{
		"Products":  products,
		"Flashes":   GetFlash(session),
		"CsrfField": csrf.TemplateField(r),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

func (h *AdminHandler) NewProductForm(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("admin_product_new.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, "admin-session")
	data := map[string]interface{}{
		"Categories": models.Categories,
		"CsrfField":  csrf.TemplateField(r),
		"Flashes":    GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	if err := r.ParseMultipartForm(20 << 20); err != nil { // 20MB
		session.AddFlash(FlashMessage{Type: "error", Message: "Upload too large. Max 20MB."})
		http.Redirect(w, r, "/admin/products/new", http.StatusSeeOther)
		return
	}

	draft, errors := parseDraft(r)
	if len(errors) > 0 {
		for _, msg := range errors {
			session.AddFlash(FlashMessage{Type: "error", Message: msg})
		}
		http.Redirect(w, r, "/admin/products/new", http.StatusSeeOther)
		return
	}

	// Each upload stands alone: failures are reported per file and the
	// rest of the batch still goes through.
	handles, failures := h.Ingestor.IngestBatch(r.MultipartForm.File["images"])
	for _, f := range failures {
		session.AddFlash(FlashMessage{Type: "error", Message: "Skipped " + f.Filename + ": not a usable image."})
	}
	draft.Images = handles

	product := h.Catalog.Create(draft)

	session.AddFlash(FlashMessage{Type: "success", Message: product.DisplayName() + " added!"})
	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}

func (h *AdminHandler) EditProductForm(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	product, ok := h.Catalog.Get(id)
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	tmpl := h.Templates.Get("admin_product_edit.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, "admin-session")
	data := map[string]interface{}{
		"Product":    product,
		"Categories": models.Categories,
		"CsrfField":  csrf.TemplateField(r),
		"Flashes":    GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	if err := r.ParseMultipartForm(20 << 20); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Upload too large. Max 20MB."})
		http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
		return
	}

	id := r.FormValue("id")
	existing, found := h.Catalog.Get(id)

	draft, errors := parseDraft(r)
	if len(errors) > 0 {
		for _, msg := range errors {
			session.AddFlash(FlashMessage{Type: "error", Message: msg})
		}
		http.Redirect(w, r, fmt.Sprintf("/admin/products/edit?id=%s", id), http.StatusSeeOther)
		return
	}

	// Image ordering survives edits: kept images stay in sequence, new
	// uploads are appended behind them.
	if found {
		removed := make(map[int]bool)
		for _, s := range r.Form["remove_image"] {
			if idx, err := strconv.Atoi(s); err == nil {
				removed[idx] = true
			}
		}
		for i, img := range existing.Images {
			if !removed[i] {
				draft.Images = append(draft.Images, img)
			}
		}
	}
	handles, failures := h.Ingestor.IngestBatch(r.MultipartForm.File["images"])
	for _, f := range failures {
		session.AddFlash(FlashMessage{Type: "error", Message: "Skipped " + f.Filename + ": not a usable image."})
	}
	draft.Images = append(draft.Images, handles...)

	// Save decides create-vs-update by id presence, so an edit of a
	// product deleted mid-session lands as a fresh listing.
	if found {
		product, ok := h.Catalog.Update(id, draft)
		if !ok {
			session.AddFlash(FlashMessage{Type: "error", Message: "Product no longer exists."})
			http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
			return
		}
		session.AddFlash(FlashMessage{Type: "success", Message: product.DisplayName() + " updated!"})
	} else {
		product := h.Catalog.Create(draft)
		session.AddFlash(FlashMessage{Type: "success", Message: product.DisplayName() + " added!"})
	}
	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	id := r.FormValue("id")
	if !h.Catalog.Remove(id) {
		session.AddFlash(FlashMessage{Type: "error", Message: "Product not found."})
		http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Product deleted."})
	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}

func (h *AdminHandler) ToggleVisibility(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	id := r.FormValue("id")
	product, ok := h.Catalog.Get(id)
	if !ok {
		session.AddFlash(FlashMessage{Type: "error", Message: "Product not found."})
		http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
		return
	}

	product, _ = h.Catalog.SetVisibility(id, !product.Visible)
	state := "hidden from"
	if product.Visible {
		state = "shown in"
	}
	session.AddFlash(FlashMessage{Type: "success", Message: product.DisplayName() + " is now " + state + " the gallery."})
	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}
