package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recetasproyecto/ms-catalogo/internal/ingest"
	"github.com/recetasproyecto/ms-catalogo/internal/service"
)

// AdminHandler triggers the bulk CSV import.
type AdminHandler struct {
	importer *ingest.Importer
	recipes  *service.RecipeService
	log      *zap.Logger
}

func NewAdminHandler(importer *ingest.Importer, recipes *service.RecipeService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{importer: importer, recipes: recipes, log: log}
}

func (h *AdminHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/cargar_datos", h.ImportRecipes)
	router.POST("/import", h.ImportRecipes)
}

func (h *AdminHandler) ImportRecipes(c *gin.Context) {
	count, err := h.importer.Import(c.Request.Context())
	if err != nil {
		h.log.Error("bulk import failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error interno del servidor durante la ingesta de datos."})
		return
	}

	h.recipes.InvalidateList(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"mensaje": fmt.Sprintf("Se eliminaron y cargaron %d recetas.", count),
		"total":   count,
	})
}
