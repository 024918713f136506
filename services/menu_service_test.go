package services_test

import (
	"context"
	"testing"

	"github.com/Fromshel/ontaste-api/models"
	"github.com/Fromshel/ontaste-api/repository"
	"github.com/Fromshel/ontaste-api/services"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// --- Mock Repository ---

type mockMenuRepo struct {
	items     []models.MenuItem
	findErr   error
	countErr  error
	insertErr error
}

func (m *mockMenuRepo) FindAll(_ context.Context) ([]models.MenuItem, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.items, nil
}

func (m *mockMenuRepo) Count(_ context.Context) (int64, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return int64(len(m.items)), nil
}

func (m *mockMenuRepo) InsertCatalog(_ context.Context, items []models.MenuItem) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.items = append(m.items, items...)
	return nil
}

func (m *mockMenuRepo) EnsureIndexes(_ context.Context) error { return nil }

// --- Helpers ---

func newMenuService(repo repository.MenuRepository) services.MenuService {
	logger, _ := zap.NewDevelopment()
	return services.NewMenuService(repo, services.NewMenuCache(nil), logger)
}

// --- Tests ---

func TestMenuService_SeedMenu_EmptyCollection(t *testing.T) {
	repo := &mockMenuRepo{}
	svc := newMenuService(repo)

	result, svcErr := svc.SeedMenu(context.Background())
	assert.Nil(t, svcErr)
	assert.True(t, result.Seeded)
	assert.Len(t, repo.items, 6)
}

func TestMenuService_SeedMenu_Idempotent(t *testing.T) {
	repo := &mockMenuRepo{}
	svc := newMenuService(repo)

	first, svcErr := svc.SeedMenu(context.Background())
	assert.Nil(t, svcErr)
	assert.True(t, first.Seeded)

	second, svcErr := svc.SeedMenu(context.Background())
	assert.Nil(t, svcErr)
	assert.False(t, second.Seeded)
	assert.Equal(t, "already seeded", second.Message)
	assert.Len(t, repo.items, 6, "second seed must not change the count")
}

func TestMenuService_SeedMenu_ConcurrentLoserSeesAlreadySeeded(t *testing.T) {
	// A concurrent seeder that lost the race hits the unique name index.
	repo := &mockMenuRepo{
		insertErr: mongo.WriteException{
			WriteErrors: mongo.WriteErrors{{Code: 11000}},
		},
	}
	svc := newMenuService(repo)

	result, svcErr := svc.SeedMenu(context.Background())
	assert.Nil(t, svcErr)
	assert.False(t, result.Seeded)
	assert.Equal(t, "already seeded", result.Message)
}

func TestMenuService_SeedMenu_StoreError(t *testing.T) {
	repo := &mockMenuRepo{countErr: assert.AnError}
	svc := newMenuService(repo)

	_, svcErr := svc.SeedMenu(context.Background())
	assert.NotNil(t, svcErr)
	assert.Equal(t, 500, svcErr.StatusCode)
}

func TestMenuService_ListMenu_ReturnsAllItems(t *testing.T) {
	repo := &mockMenuRepo{items: models.SeedCatalog()}
	svc := newMenuService(repo)

	items, svcErr := svc.ListMenu(context.Background())
	assert.Nil(t, svcErr)
	assert.Len(t, items, 6)
}

func TestMenuService_ListMenu_EmptyIsNotNil(t *testing.T) {
	repo := &mockMenuRepo{}
	svc := newMenuService(repo)

	items, svcErr := svc.ListMenu(context.Background())
	assert.Nil(t, svcErr)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestMenuService_ListMenu_StoreError(t *testing.T) {
	repo := &mockMenuRepo{findErr: assert.AnError}
	svc := newMenuService(repo)

	_, svcErr := svc.ListMenu(context.Background())
	assert.NotNil(t, svcErr)
	assert.Equal(t, 500, svcErr.StatusCode)
}
