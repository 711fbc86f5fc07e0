package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/recetasproyecto/ms-catalogo/internal/model"
	"github.com/recetasproyecto/ms-catalogo/internal/service"
)

// RecipeHandler exposes the catalog CRUD surface.
type RecipeHandler struct {
	recipes *service.RecipeService
	log     *zap.Logger
}

func NewRecipeHandler(recipes *service.RecipeService, log *zap.Logger) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, log: log}
}

func (h *RecipeHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("", h.ListRecipes)
	router.GET("/:id", h.GetRecipe)
	router.POST("", h.CreateRecipe)
}

// createRecipeRequest uses pointers so missing keys can be told apart from
// zero values, mirroring the original validation messages.
type createRecipeRequest struct {
	Title       *string   `json:"titulo"`
	Description *string   `json:"descripcion"`
	PrepMinutes *int      `json:"tiempo_preparacion"`
	Difficulty  *string   `json:"dificultad"`
	Ingredients *[]string `json:"ingredientes"`
	ImageURL    *string   `json:"imagen_url"`
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.List(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list recipes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error interno al obtener recetas."})
		return
	}

	responses := make([]model.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		responses = append(responses, recipes[i].ToResponse())
	}
	c.JSON(http.StatusOK, responses)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id := c.Param("id")
	recipe, err := h.recipes.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Receta con ID %s no encontrada.", id)})
			return
		}
		h.log.Error("failed to get recipe", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error interno al obtener el detalle de la receta."})
		return
	}
	c.JSON(http.StatusOK, recipe.ToResponse())
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	if !strings.HasPrefix(c.ContentType(), "application/json") {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"message": "Content-Type debe ser application/json"})
		return
	}

	var req createRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "ingredientes" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "El campo 'ingredientes' debe ser una lista."})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cuerpo de la petición inválido."})
		return
	}

	if req.Title == nil || req.Description == nil || req.PrepMinutes == nil ||
		req.Difficulty == nil || req.Ingredients == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Faltan campos obligatorios para crear la receta."})
		return
	}
	if *req.PrepMinutes <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "El campo 'tiempo_preparacion' debe ser un número entero positivo."})
		return
	}

	recipe := model.Recipe{
		Title:       *req.Title,
		Description: *req.Description,
		PrepMinutes: *req.PrepMinutes,
		Difficulty:  *req.Difficulty,
		Ingredients: model.IngredientList(*req.Ingredients),
		ImageURL:    req.ImageURL,
	}

	if err := h.recipes.Create(c.Request.Context(), &recipe); err != nil {
		h.log.Error("failed to create recipe", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error interno del servidor al crear la receta."})
		return
	}

	c.JSON(http.StatusCreated, recipe.ToResponse())
}
