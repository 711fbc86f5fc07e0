package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recetasproyecto/ms-catalogo/internal/api"
	"github.com/recetasproyecto/ms-catalogo/internal/middleware"
)

// Setup configures the application routes. The catalog is served under the
// Spanish paths the rest of the platform uses, with English aliases.
func Setup(
	recipeHandler *api.RecipeHandler,
	adminHandler *api.AdminHandler,
	healthHandler *api.HealthHandler,
	log *zap.Logger,
) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS())

	healthHandler.RegisterRoutes(router)

	recipeHandler.RegisterRoutes(router.Group("/recetas"))
	recipeHandler.RegisterRoutes(router.Group("/recipes"))

	adminHandler.RegisterRoutes(router.Group("/admin"))

	return router
}
