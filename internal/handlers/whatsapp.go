package handlers

import (
	"fmt"
	"net/url"

	"github.com/aureliacouture/boutique/internal/models"
)

// WhatsAppLink builds a wa.me chat URL carrying a prefilled message. An
// empty number yields the generic share form, which WhatsApp accepts.
func WhatsAppLink(number, text string) string {
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(text)
}

// EnquiryLink is the per-product "Enquire Now" chat URL.
func EnquiryLink(number string, p models.Product) string {
	text := fmt.Sprintf("Hello! I'm interested in %s (₹%s).", p.DisplayName(), FormatINR(p.Price))
	return WhatsAppLink(number, text)
}

// ChatLink is the storefront's floating chat button URL.
func ChatLink(number string) string {
	return WhatsAppLink(number, "Hello! I have a question about your collection.")
}
