package ingest

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/recetasproyecto/ms-catalogo/internal/model"
)

// Defaults applied when a source column is missing or unparsable. Historical
// CSV exports were inconsistent, so every field has a fallback; a row is
// never dropped during coercion.
const (
	DefaultDescription = "Sin descripción."
	DefaultPrepMinutes = 15
	DefaultDifficulty  = "Fácil"
)

// DefaultDescriptionColumns is the ordered list of source columns the
// description is taken from. Some exports carried the text in a "pasos"
// column instead of "descripcion".
var DefaultDescriptionColumns = []string{"descripcion", "pasos"}

// ingredientDecoder attempts to decode one raw cell into an ordered token
// sequence. Decoders run in order; the first success wins.
type ingredientDecoder func(string) ([]string, bool)

var ingredientDecoders = []ingredientDecoder{
	decodeDelimited,
	decodeJSONArray,
	decodeSingleQuoted,
}

// ParseIngredients turns a raw CSV cell into an ordered sequence of trimmed,
// non-empty tokens. It never fails: when no decoder matches, the whole cell
// becomes a single-element sequence.
func ParseIngredients(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}
	for _, decode := range ingredientDecoders {
		if tokens, ok := decode(raw); ok {
			return tokens
		}
	}
	return []string{raw}
}

// decodeDelimited splits semicolon-delimited text. It only claims the cell
// when the delimiter is actually present, so JSON-shaped cells fall through
// to the stricter decoders.
func decodeDelimited(raw string) ([]string, bool) {
	if !strings.Contains(raw, ";") {
		return nil, false
	}
	tokens := cleanTokens(strings.Split(raw, ";"))
	if len(tokens) == 0 {
		return nil, false
	}
	return tokens, true
}

func decodeJSONArray(raw string) ([]string, bool) {
	var parsed []string
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, false
	}
	// a JSON literal null unmarshals into a nil slice; that is not an array
	if parsed == nil {
		return nil, false
	}
	return cleanTokens(parsed), true
}

// decodeSingleQuoted handles pseudo-JSON arrays written with single quotes,
// another shape seen in older exports.
func decodeSingleQuoted(raw string) ([]string, bool) {
	if !strings.HasPrefix(raw, "[") {
		return nil, false
	}
	return decodeJSONArray(strings.ReplaceAll(raw, "'", `"`))
}

func cleanTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// CoerceRow transforms one raw CSV row, keyed by canonical column names,
// into a recipe record. Pure: id and creation timestamp are assigned by the
// caller. descriptionColumns configures where the description is sourced
// from; nil means DefaultDescriptionColumns.
func CoerceRow(row map[string]string, descriptionColumns []string) model.Recipe {
	if descriptionColumns == nil {
		descriptionColumns = DefaultDescriptionColumns
	}

	title := strings.TrimSpace(row["titulo"])
	if title == "" {
		title = strings.TrimSpace(row["title"])
	}

	description := ""
	for _, col := range descriptionColumns {
		if v := strings.TrimSpace(row[col]); v != "" {
			description = v
			break
		}
	}
	if description == "" {
		description = DefaultDescription
	}

	prep := DefaultPrepMinutes
	if raw, ok := row["tiempo_preparacion"]; ok {
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && n > 0 {
			prep = n
		}
	}

	difficulty := strings.TrimSpace(row["dificultad"])
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}

	rec := model.Recipe{
		RecipeID:    strings.TrimSpace(row["receta_id"]),
		Title:       title,
		Description: description,
		PrepMinutes: prep,
		Difficulty:  difficulty,
		Ingredients: ParseIngredients(row["ingredientes"]),
	}

	if url := strings.TrimSpace(row["imagen_url"]); url != "" {
		rec.ImageURL = &url
	}

	return rec
}
