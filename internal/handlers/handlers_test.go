package handlers

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aureliacouture/boutique/internal/images"
	"github.com/aureliacouture/boutique/internal/models"
	"github.com/aureliacouture/boutique/internal/store"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	store    *store.Store
	catalog  *store.Catalog
	wishlist *store.Wishlist
	home     *HomeHandler
	wish     *WishlistHandler
	admin    *AdminHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	s, err := store.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, s.InitSchema())
	t.Cleanup(func() { s.Close() })

	catalog := store.NewCatalog(s)
	wishlist := store.NewWishlist(s)

	templates := NewTemplateCache()
	require.NoError(t, templates.Load(filepath.Join("..", "..", "templates")))

	sessionStore := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))

	ingestor := images.NewIngestor(t.TempDir())

	return &testEnv{
		store:    s,
		catalog:  catalog,
		wishlist: wishlist,
		home: &HomeHandler{
			Catalog:      catalog,
			Wishlist:     wishlist,
			Templates:    templates,
			SessionStore: sessionStore,
			Brand:        "Aurelia Couture",
		},
		wish: &WishlistHandler{
			Catalog:      catalog,
			Wishlist:     wishlist,
			Templates:    templates,
			SessionStore: sessionStore,
			Brand:        "Aurelia Couture",
		},
		admin: &AdminHandler{
			Store:        s,
			Catalog:      catalog,
			Wishlist:     wishlist,
			Ingestor:     ingestor,
			SessionStore: sessionStore,
			Templates:    templates,
		},
	}
}

func seedGallery(t *testing.T, env *testEnv) (a, b, c models.Product) {
	t.Helper()
	// Created oldest-first so A ends up last in catalog order.
	c = env.catalog.Create(models.Product{Name: "Hidden Saree", Category: "Sarees", Price: 500, Visible: false})
	b = env.catalog.Create(models.Product{Name: "Bangle Set", Category: "Bangles", Price: 2000, Visible: true})
	a = env.catalog.Create(models.Product{Name: "Silk Saree", Category: "Sarees", Price: 500, Visible: true})
	return a, b, c
}

func TestHomeIndexFiltersByCategoryAndPrice(t *testing.T) {
	env := newTestEnv(t)
	seedGallery(t, env)

	req := httptest.NewRequest("GET", "/?category=Sarees&max=1000", nil)
	rec := httptest.NewRecorder()
	env.home.Index(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Silk Saree")
	assert.NotContains(t, body, "Bangle Set")
	assert.NotContains(t, body, "Hidden Saree")
}

func TestHomeIndexSearch(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.Create(models.Product{Name: "Cotton Saree", Category: "Sarees", Price: 900, Visible: true})
	env.catalog.Create(models.Product{Name: "Festival Drape", Description: "pure silk", Category: "Sarees", Price: 900, Visible: true})

	req := httptest.NewRequest("GET", "/?q=silk", nil)
	rec := httptest.NewRecorder()
	env.home.Index(rec, req)

	body := rec.Body.String()
	assert.Contains(t, body, "Festival Drape", "description match")
	assert.NotContains(t, body, "Cotton Saree")
}

func TestHomeIndexSlideWrapsAround(t *testing.T) {
	env := newTestEnv(t)

	for _, raw := range []string{"-1", "7", "abc"} {
		req := httptest.NewRequest("GET", "/?slide="+url.QueryEscape(raw), nil)
		rec := httptest.NewRecorder()
		env.home.Index(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "slide=%s", raw)
	}
}

func TestHomeDetailUnknownProduct(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest("GET", "/product?id=missing", nil)
	rec := httptest.NewRecorder()
	env.home.Detail(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHomeDetailShowsFallbackImage(t *testing.T) {
	env := newTestEnv(t)
	p := env.catalog.Create(models.Product{Name: "No Photos Yet", Category: "Sarees", Price: 100, Visible: true})

	req := httptest.NewRequest("GET", "/product?id="+p.ID, nil)
	rec := httptest.NewRecorder()
	env.home.Detail(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), models.FallbackImage)

	// The record itself keeps its empty image list.
	stored, ok := env.catalog.Get(p.ID)
	require.True(t, ok)
	assert.Empty(t, stored.Images)
}

func TestWishlistToggleRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	p := env.catalog.Create(models.Product{Name: "Silk Saree", Category: "Sarees", Price: 500, Visible: true})

	toggle := func() *httptest.ResponseRecorder {
		form := url.Values{"id": {p.ID}}
		req := httptest.NewRequest("POST", "/wishlist/toggle", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Referer", "/product?id="+p.ID)
		rec := httptest.NewRecorder()
		env.wish.Toggle(rec, req)
		return rec
	}

	rec := toggle()
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/product?id="+p.ID, rec.Header().Get("Location"))
	assert.True(t, env.wishlist.Has(p.ID))

	toggle()
	assert.False(t, env.wishlist.Has(p.ID))
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, env.store.CreateUser("juliette", string(hash)))

	post := func(username, password string) *httptest.ResponseRecorder {
		form := url.Values{"username": {username}, "password": {password}}
		req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		env.admin.LoginPost(rec, req)
		return rec
	}

	rec := post("juliette", "wrong")
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	rec = post("nobody", "correct horse")
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	rec = post("juliette", "correct horse")
	assert.Equal(t, "/admin", rec.Header().Get("Location"))
	assert.NotEmpty(t, rec.Header().Get("Set-Cookie"))
}

func productForm(t *testing.T, fields map[string]string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for name, data := range files {
		fw, err := mw.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestAdminCreateProduct(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := productForm(t,
		map[string]string{
			"name":        "Silk Saree",
			"price":       "12500",
			"category":    "Sarees",
			"description": "pure silk",
			"visible":     "on",
		},
		map[string][]byte{
			"photo.png":  tinyPNG(t),
			"broken.txt": []byte("not an image"),
		},
	)

	req := httptest.NewRequest("POST", "/admin/products", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	env.admin.CreateProduct(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/products", rec.Header().Get("Location"))

	list := env.catalog.List()
	require.Len(t, list, 1)
	p := list[0]
	assert.Equal(t, "Silk Saree", p.Name)
	assert.Equal(t, 12500.0, p.Price)
	assert.Equal(t, "Sarees", p.Category)
	assert.True(t, p.Visible)
	assert.Len(t, p.Images, 1, "bad upload is skipped, good one kept")
}

func TestAdminCreateProductRejectsBadCategory(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := productForm(t, map[string]string{
		"name":     "Mystery Item",
		"price":    "100",
		"category": "Hats",
	}, nil)

	req := httptest.NewRequest("POST", "/admin/products", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	env.admin.CreateProduct(rec, req)

	assert.Equal(t, "/admin/products/new", rec.Header().Get("Location"))
	assert.Empty(t, env.catalog.List())
}

func TestAdminUpdateProductKeepsAndRemovesImages(t *testing.T) {
	env := newTestEnv(t)
	p := env.catalog.Create(models.Product{
		Name:     "Silk Saree",
		Price:    12500,
		Category: "Sarees",
		Visible:  true,
		Images:   []string{"/static/uploads/a.jpg", "/static/uploads/b.jpg", "/static/uploads/c.jpg"},
	})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range map[string]string{
		"id":       p.ID,
		"name":     "Silk Saree",
		"price":    "13000",
		"category": "Sarees",
		"visible":  "on",
	} {
		require.NoError(t, mw.WriteField(k, v))
	}
	// Drop the middle image only.
	require.NoError(t, mw.WriteField("remove_image", "1"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/admin/products/update", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	env.admin.UpdateProduct(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	updated, ok := env.catalog.Get(p.ID)
	require.True(t, ok)
	assert.Equal(t, 13000.0, updated.Price)
	assert.Equal(t, []string{"/static/uploads/a.jpg", "/static/uploads/c.jpg"}, updated.Images)
	assert.True(t, p.CreatedAt.Equal(updated.CreatedAt))
}

func TestAdminToggleVisibility(t *testing.T) {
	env := newTestEnv(t)
	p := env.catalog.Create(models.Product{Name: "Silk Saree", Category: "Sarees", Price: 500, Visible: true})

	form := url.Values{"id": {p.ID}}
	req := httptest.NewRequest("POST", "/admin/products/toggle", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	env.admin.ToggleVisibility(rec, req)

	hidden, ok := env.catalog.Get(p.ID)
	require.True(t, ok)
	assert.False(t, hidden.Visible)
}

func TestAuthMiddlewareRedirectsAnonymous(t *testing.T) {
	env := newTestEnv(t)

	called := false
	protected := env.admin.AuthMiddleware(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest("GET", "/admin", nil)
	rec := httptest.NewRecorder()
	protected(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{500, "500"},
		{2500, "2,500"},
		{100000, "1,00,000"},
		{1234567, "12,34,567"},
		{2500.5, "2,500.5"},
		{-12500, "-12,500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatINR(tt.in), "FormatINR(%v)", tt.in)
	}
}

func TestWhatsAppLinks(t *testing.T) {
	p := models.Product{Name: "Silk Saree", Price: 12500}

	link := EnquiryLink("911234567890", p)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/911234567890?text="), link)
	assert.Contains(t, link, url.QueryEscape("Silk Saree"))
	assert.Contains(t, link, url.QueryEscape("12,500"))

	// No configured number still yields a usable share link.
	assert.True(t, strings.HasPrefix(ChatLink(""), "https://wa.me/?text="))
}
