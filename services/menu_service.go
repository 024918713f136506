package services

import (
	"context"

	"github.com/Fromshel/ontaste-api/models"
	"github.com/Fromshel/ontaste-api/repository"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SeedResult reports the outcome of a seed request.
type SeedResult struct {
	Seeded  bool   `json:"seeded"`
	Message string `json:"message,omitempty"`
}

// MenuService defines the business logic for menu listing and seeding.
type MenuService interface {
	ListMenu(ctx context.Context) ([]models.MenuItem, *ServiceError)
	SeedMenu(ctx context.Context) (*SeedResult, *ServiceError)
}

type menuServiceImpl struct {
	repo   repository.MenuRepository
	cache  *MenuCache
	logger *zap.Logger
}

// NewMenuService creates a new MenuService.
func NewMenuService(repo repository.MenuRepository, cache *MenuCache, logger *zap.Logger) MenuService {
	return &menuServiceImpl{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// ListMenu returns every menu item, serving from the cache when possible.
func (s *menuServiceImpl) ListMenu(ctx context.Context) ([]models.MenuItem, *ServiceError) {
	if items, ok := s.cache.Get(ctx); ok {
		return items, nil
	}

	items, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch menu", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch menu"}
	}
	if items == nil {
		items = []models.MenuItem{}
	}

	s.cache.SetAsync(items)
	return items, nil
}

// SeedMenu inserts the fixed catalog when the collection is empty. The check
// and the insert are not atomic; the unique name index catches a concurrent
// seeder, whose duplicate-key failure is reported as an ordinary "already
// seeded" outcome.
func (s *menuServiceImpl) SeedMenu(ctx context.Context) (*SeedResult, *ServiceError) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Error("Failed to count menu items", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to seed menu"}
	}
	if count > 0 {
		return &SeedResult{Seeded: false, Message: "already seeded"}, nil
	}

	if err := s.repo.InsertCatalog(ctx, models.SeedCatalog()); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &SeedResult{Seeded: false, Message: "already seeded"}, nil
		}
		s.logger.Error("Failed to insert seed catalog", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to seed menu"}
	}

	s.cache.Invalidate(ctx)
	s.logger.Info("Menu seeded", zap.Int("items", len(models.SeedCatalog())))
	return &SeedResult{Seeded: true}, nil
}
