package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIngredientListRoundTrip(t *testing.T) {
	original := IngredientList{"harina", "azúcar", "huevos; frescos"}

	encoded, err := original.Value()
	assert.NoError(t, err)

	var decoded IngredientList
	err = decoded.Scan(encoded)
	assert.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestIngredientListValueEmpty(t *testing.T) {
	encoded, err := IngredientList{}.Value()
	assert.NoError(t, err)
	assert.Equal(t, "[]", encoded)

	encoded, err = IngredientList(nil).Value()
	assert.NoError(t, err)
	assert.Equal(t, "[]", encoded)
}

func TestIngredientListScanCorruptFallsBack(t *testing.T) {
	cases := []string{
		"harina, azucar",
		"[not json",
		`{"harina": 1}`,
		"[1, 2, 3]",
		"null",
	}
	for _, raw := range cases {
		var decoded IngredientList
		err := decoded.Scan(raw)
		assert.NoError(t, err)
		assert.Equal(t, IngredientList{raw}, decoded, "raw=%q", raw)
	}
}

func TestIngredientListScanNilAndEmpty(t *testing.T) {
	var decoded IngredientList
	assert.NoError(t, decoded.Scan(nil))
	assert.Empty(t, decoded)

	assert.NoError(t, decoded.Scan(""))
	assert.Empty(t, decoded)

	assert.NoError(t, decoded.Scan([]byte("  ")))
	assert.Empty(t, decoded)
}

func TestNewRecipeID(t *testing.T) {
	id := NewRecipeID()
	assert.True(t, strings.HasPrefix(id, "REC-"))
	assert.Len(t, id, 12)
	assert.Equal(t, strings.ToUpper(id), id)

	assert.NotEqual(t, id, NewRecipeID())
}

func TestToResponse(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	r := Recipe{
		RecipeID:    "REC-00ABCDEF",
		Title:       "Tarta",
		Description: "rica",
		PrepMinutes: 30,
		Difficulty:  "Media",
		Ingredients: IngredientList{"harina", "azucar"},
		CreatedAt:   created,
	}

	resp := r.ToResponse()
	assert.Equal(t, "REC-00ABCDEF", resp.ID)
	assert.Equal(t, []string{"harina", "azucar"}, resp.Ingredients)
	assert.Equal(t, "2024-05-01T12:30:00Z", resp.CreatedAtISO)
}

func TestToResponseNilIngredients(t *testing.T) {
	r := Recipe{RecipeID: "REC-00000000"}
	resp := r.ToResponse()
	assert.NotNil(t, resp.Ingredients)
	assert.Empty(t, resp.Ingredients)
}
