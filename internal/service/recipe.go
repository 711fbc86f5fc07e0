package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/recetasproyecto/ms-catalogo/internal/model"
)

const (
	listCacheKey = "catalogo:recetas"
	listCacheTTL = time.Minute
)

// RecipeService handles recipe persistence over an explicit database
// handle. The Redis client is optional; nil disables the list cache.
type RecipeService struct {
	db    *gorm.DB
	cache *redis.Client
	log   *zap.Logger
}

func NewRecipeService(db *gorm.DB, cache *redis.Client, log *zap.Logger) *RecipeService {
	return &RecipeService{db: db, cache: cache, log: log}
}

// Create inserts one record, assigning its external id.
func (s *RecipeService) Create(ctx context.Context, recipe *model.Recipe) error {
	if recipe.RecipeID == "" {
		recipe.RecipeID = model.NewRecipeID()
	}
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return err
	}
	s.InvalidateList(ctx)
	return nil
}

// List returns all records, newest first.
func (s *RecipeService) List(ctx context.Context) ([]model.Recipe, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, listCacheKey).Bytes(); err == nil {
			var cached []model.Recipe
			if json.Unmarshal(data, &cached) == nil {
				return cached, nil
			}
		}
	}

	var recipes []model.Recipe
	if err := s.db.WithContext(ctx).
		Order("fecha_creacion DESC, id DESC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(recipes); err == nil {
			if err := s.cache.Set(ctx, listCacheKey, data, listCacheTTL).Err(); err != nil {
				s.log.Warn("failed to cache recipe list", zap.Error(err))
			}
		}
	}

	return recipes, nil
}

// Get retrieves a record by its external id. Returns
// gorm.ErrRecordNotFound when absent.
func (s *RecipeService) Get(ctx context.Context, recipeID string) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "receta_id = ?", recipeID).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// InvalidateList drops the cached listing after any write.
func (s *RecipeService) InvalidateList(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, listCacheKey).Err(); err != nil {
		s.log.Warn("failed to invalidate recipe list cache", zap.Error(err))
	}
}
