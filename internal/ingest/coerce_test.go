package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIngredientsDelimited(t *testing.T) {
	got := ParseIngredients("harina; azucar ;; huevos ")
	assert.Equal(t, []string{"harina", "azucar", "huevos"}, got)
}

func TestParseIngredientsJSONArray(t *testing.T) {
	got := ParseIngredients(`["harina", "azucar", "huevos"]`)
	assert.Equal(t, []string{"harina", "azucar", "huevos"}, got)
}

func TestParseIngredientsSingleQuoted(t *testing.T) {
	got := ParseIngredients(`['harina', 'azucar']`)
	assert.Equal(t, []string{"harina", "azucar"}, got)
}

func TestParseIngredientsFallback(t *testing.T) {
	got := ParseIngredients("harina con azucar")
	assert.Equal(t, []string{"harina con azucar"}, got)

	got = ParseIngredients("[1, 2, 3]")
	assert.Equal(t, []string{"[1, 2, 3]"}, got)

	// a JSON null is not an array; the raw cell is kept as one token
	got = ParseIngredients("null")
	assert.Equal(t, []string{"null"}, got)
}

func TestParseIngredientsEmpty(t *testing.T) {
	assert.Empty(t, ParseIngredients(""))
	assert.Empty(t, ParseIngredients("   "))
}

func TestParseIngredientsNeverEmptyForMalformed(t *testing.T) {
	malformed := []string{"[broken", "{}", "null", "'a', 'b'", "∆∆∆"}
	for _, raw := range malformed {
		got := ParseIngredients(raw)
		assert.NotEmpty(t, got, "raw=%q", raw)
	}
}

func TestCoerceRowComplete(t *testing.T) {
	row := map[string]string{
		"receta_id":          "REC-11111111",
		"titulo":             "Tortilla",
		"descripcion":        "Clásica",
		"tiempo_preparacion": "25",
		"dificultad":         "Media",
		"ingredientes":       "huevos;patatas;aceite",
		"imagen_url":         "http://example.com/tortilla.jpg",
	}

	rec := CoerceRow(row, nil)
	assert.Equal(t, "REC-11111111", rec.RecipeID)
	assert.Equal(t, "Tortilla", rec.Title)
	assert.Equal(t, "Clásica", rec.Description)
	assert.Equal(t, 25, rec.PrepMinutes)
	assert.Equal(t, "Media", rec.Difficulty)
	assert.Equal(t, []string{"huevos", "patatas", "aceite"}, []string(rec.Ingredients))
	if assert.NotNil(t, rec.ImageURL) {
		assert.Equal(t, "http://example.com/tortilla.jpg", *rec.ImageURL)
	}
}

func TestCoerceRowDefaults(t *testing.T) {
	rec := CoerceRow(map[string]string{"titulo": "Gazpacho"}, nil)
	assert.Equal(t, "Sin descripción.", rec.Description)
	assert.Equal(t, 15, rec.PrepMinutes)
	assert.Equal(t, "Fácil", rec.Difficulty)
	assert.Empty(t, rec.Ingredients)
	assert.Nil(t, rec.ImageURL)
}

func TestCoerceRowPrepTimeFallbacks(t *testing.T) {
	cases := map[string]int{
		"":     15,
		"abc":  15,
		"-5":   15,
		"0":    15,
		" 40 ": 40,
	}
	for raw, want := range cases {
		rec := CoerceRow(map[string]string{"titulo": "x", "tiempo_preparacion": raw}, nil)
		assert.Equal(t, want, rec.PrepMinutes, "raw=%q", raw)
	}
}

func TestCoerceRowDescriptionFromPasos(t *testing.T) {
	rec := CoerceRow(map[string]string{"titulo": "Paella", "pasos": "Sofreír y añadir arroz."}, nil)
	assert.Equal(t, "Sofreír y añadir arroz.", rec.Description)

	// configured source order wins over the default
	rec = CoerceRow(map[string]string{"descripcion": "desc", "pasos": "steps"}, []string{"pasos", "descripcion"})
	assert.Equal(t, "steps", rec.Description)
}

func TestCoerceRowMissingTitleTolerated(t *testing.T) {
	rec := CoerceRow(map[string]string{"dificultad": "Alta"}, nil)
	assert.Empty(t, rec.Title)
	assert.Equal(t, "Alta", rec.Difficulty)
}
