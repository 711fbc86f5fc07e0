package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/recetasproyecto/ms-catalogo/internal/ingest"
	"github.com/recetasproyecto/ms-catalogo/internal/model"
	"github.com/recetasproyecto/ms-catalogo/internal/testdb"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recetas.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportAgainstPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	td := testdb.Setup(t)

	csv := "Título,Descripción,Tiempo Preparación,Dificultad,Ingredientes\n" +
		"Tortilla,Clásica,25,Media,huevos;patatas;aceite\n" +
		"Paella,,abc,,\"['arroz', 'azafrán']\"\n"

	im := ingest.NewImporter(td.DB, zaptest.NewLogger(t), ingest.Options{Path: writeCSV(t, csv)})
	count, err := im.Import(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var stored int64
	require.NoError(t, td.DB.Model(&model.Recipe{}).Count(&stored).Error)
	assert.EqualValues(t, count, stored)

	var paella model.Recipe
	require.NoError(t, td.DB.First(&paella, "titulo = ?", "Paella").Error)
	assert.Equal(t, ingest.DefaultDescription, paella.Description)
	assert.Equal(t, ingest.DefaultPrepMinutes, paella.PrepMinutes)
	assert.Equal(t, ingest.DefaultDifficulty, paella.Difficulty)
	assert.Equal(t, []string{"arroz", "azafrán"}, []string(paella.Ingredients))
}

func TestImportAtomicityAgainstPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	td := testdb.Setup(t)

	require.NoError(t, td.DB.Create(&model.Recipe{RecipeID: "REC-BEFORE01", Title: "Antes"}).Error)

	csv := "receta_id,titulo\nREC-DUP00001,Una\nREC-DUP00001,Otra\n"
	im := ingest.NewImporter(td.DB, zaptest.NewLogger(t), ingest.Options{Path: writeCSV(t, csv)})
	_, err := im.Import(context.Background())
	require.Error(t, err)

	var recipes []model.Recipe
	require.NoError(t, td.DB.Find(&recipes).Error)
	require.Len(t, recipes, 1)
	assert.Equal(t, "REC-BEFORE01", recipes[0].RecipeID)
}
