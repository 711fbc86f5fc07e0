package model

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// IngredientList is a custom type for the ingredient sequence persisted as a
// JSON array of strings in a text column.
type IngredientList []string

// Value implements the driver.Valuer interface
func (l IngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface. A stored value that does not
// parse as a JSON string array degrades to a single-element list wrapping
// the raw text, so reads never fail on a corrupt encoding.
func (l *IngredientList) Scan(value interface{}) error {
	if value == nil {
		*l = IngredientList{}
		return nil
	}

	var raw string
	switch v := value.(type) {
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		*l = IngredientList{}
		return nil
	}

	if strings.TrimSpace(raw) == "" {
		*l = IngredientList{}
		return nil
	}

	var parsed []string
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil || parsed == nil {
		*l = IngredientList{raw}
		return nil
	}
	*l = parsed
	return nil
}

// Recipe is the sole persisted entity, one row in the recetas table.
// RecipeID is the external identifier; the numeric primary key never leaves
// the service.
type Recipe struct {
	ID          uint           `gorm:"primaryKey" json:"-"`
	RecipeID    string         `gorm:"column:receta_id;size:50;uniqueIndex;not null" json:"id"`
	Title       string         `gorm:"column:titulo;size:255;not null" json:"titulo"`
	Description string         `gorm:"column:descripcion;type:text" json:"descripcion"`
	PrepMinutes int            `gorm:"column:tiempo_preparacion" json:"tiempo_preparacion"`
	Difficulty  string         `gorm:"column:dificultad;size:50" json:"dificultad"`
	Ingredients IngredientList `gorm:"column:ingredientes;type:text" json:"ingredientes"`
	ImageURL    *string        `gorm:"column:imagen_url;size:255" json:"imagen_url,omitempty"`
	CreatedAt   time.Time      `gorm:"column:fecha_creacion" json:"fecha_creacion"`
}

// TableName overrides the default table name
func (Recipe) TableName() string {
	return "recetas"
}

// NewRecipeID generates an external identifier in the REC-XXXXXXXX form.
func NewRecipeID() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "REC-" + strings.ToUpper(hex[:8])
}

// RecipeResponse is the outward representation of a record.
type RecipeResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"titulo"`
	Description  string   `json:"descripcion"`
	PrepMinutes  int      `json:"tiempo_preparacion"`
	Difficulty   string   `json:"dificultad"`
	Ingredients  []string `json:"ingredientes"`
	ImageURL     *string  `json:"imagen_url,omitempty"`
	CreatedAtISO string   `json:"fecha_creacion"`
}

// ToResponse serializes the record for API responses. Ingredients come back
// as a native list (the tolerant decode already happened in Scan) and the
// creation timestamp is formatted as ISO-8601.
func (r *Recipe) ToResponse() RecipeResponse {
	ingredients := []string(r.Ingredients)
	if ingredients == nil {
		ingredients = []string{}
	}
	return RecipeResponse{
		ID:           r.RecipeID,
		Title:        r.Title,
		Description:  r.Description,
		PrepMinutes:  r.PrepMinutes,
		Difficulty:   r.Difficulty,
		Ingredients:  ingredients,
		ImageURL:     r.ImageURL,
		CreatedAtISO: r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
