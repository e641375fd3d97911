package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, ValidCategory(c), c)
	}
	assert.False(t, ValidCategory("Hats"))
	assert.False(t, ValidCategory(""))
	assert.False(t, ValidCategory("sarees"), "categories are case-sensitive")
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Unnamed", Product{}.DisplayName())
	assert.Equal(t, "Silk Saree", Product{Name: "Silk Saree"}.DisplayName())
}

func TestCoverFallback(t *testing.T) {
	assert.Equal(t, FallbackImage, Product{}.Cover())
	assert.Equal(t, "/static/uploads/a.jpg", Product{Images: []string{"/static/uploads/a.jpg", "/static/uploads/b.jpg"}}.Cover())
}

func TestProductJSONLayout(t *testing.T) {
	p := Product{
		ID:          "abc",
		Name:        "Silk Saree",
		Price:       12500,
		Category:    "Sarees",
		Images:      []string{"/static/uploads/a.jpg"},
		Description: "pure silk",
		Visible:     true,
		CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "abc", decoded["id"])
	assert.Equal(t, 12500.0, decoded["price"], "price is a plain JSON number")
	assert.Equal(t, "2025-06-01T12:00:00Z", decoded["createdAt"], "timestamps are ISO-8601")
	assert.Equal(t, true, decoded["visible"])
}
