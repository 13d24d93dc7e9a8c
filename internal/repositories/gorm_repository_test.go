package repositories_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"boutique/internal/models"
	"boutique/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupDB opens a uniquely named in-memory SQLite database so tests do
// not share state through the connection pool.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.CartItem{}, &models.Order{}))
	return db
}

func TestGORMProductRepository(t *testing.T) {
	repo := repositories.NewGORMProductRepository(setupDB(t))
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	product := &models.Product{Name: "Classic Monogram Handbag", Price: 125000, Category: "Handbags"}
	require.NoError(t, repo.Create(ctx, product))
	assert.NotEmpty(t, product.ID)

	fetched, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Classic Monogram Handbag", fetched.Name)
	assert.Equal(t, int64(125000), fetched.Price)

	fetched.Price = 130000
	require.NoError(t, repo.Update(ctx, fetched))
	updated, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(130000), updated.Price)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGORMCartRepository(t *testing.T) {
	repo := repositories.NewGORMCartRepository(setupDB(t))
	ctx := context.Background()

	item := &models.CartItem{SessionID: "s1", ProductID: "p1", Quantity: 2}
	require.NoError(t, repo.Create(ctx, item))

	found, err := repo.FindBySessionAndProduct(ctx, "s1", "p1")
	require.NoError(t, err)
	assert.Equal(t, item.ID, found.ID)

	_, err = repo.FindBySessionAndProduct(ctx, "s2", "p1")
	assert.ErrorIs(t, err, repositories.ErrCartItemNotFound)

	require.NoError(t, repo.UpdateQuantity(ctx, "s1", item.ID, 5))
	fetched, err := repo.GetByID(ctx, "s1", item.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, fetched.Quantity)

	// Another session cannot see or touch the line.
	_, err = repo.GetByID(ctx, "s2", item.ID)
	assert.ErrorIs(t, err, repositories.ErrCartItemNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "s2", item.ID), repositories.ErrCartItemNotFound)

	require.NoError(t, repo.Delete(ctx, "s1", item.ID))
	assert.ErrorIs(t, repo.Delete(ctx, "s1", item.ID), repositories.ErrCartItemNotFound)
}

func TestGORMCartRepository_DeleteItemsIsScoped(t *testing.T) {
	repo := repositories.NewGORMCartRepository(setupDB(t))
	ctx := context.Background()

	first := &models.CartItem{SessionID: "s1", ProductID: "p1", Quantity: 1}
	second := &models.CartItem{SessionID: "s1", ProductID: "p2", Quantity: 1}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	// Clearing only the first line leaves the second untouched.
	require.NoError(t, repo.DeleteItems(ctx, "s1", []string{first.ID}))

	remaining, err := repo.GetBySession(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, second.ID, remaining[0].ID)

	// Deleting already-gone items is idempotent.
	assert.NoError(t, repo.DeleteItems(ctx, "s1", []string{first.ID, second.ID}))
	assert.NoError(t, repo.DeleteItems(ctx, "s1", nil))
}

func TestGORMOrderRepository(t *testing.T) {
	repo := repositories.NewGORMOrderRepository(setupDB(t))
	ctx := context.Background()

	older := &models.Order{
		ID:       "ORD-1000-aaaa",
		Customer: models.Customer{Name: "A", Email: "a@x.com"},
		Items: []models.OrderItem{
			{ProductID: "p1", Name: "Classic Monogram Handbag", Price: 125000, Quantity: 2, ItemTotal: 250000},
		},
		Total:     250000,
		Status:    models.OrderStatusConfirmed,
		CreatedAt: time.Now().Add(-time.Hour),
	}
	newer := &models.Order{
		ID:        "ORD-2000-bbbb",
		Customer:  models.Customer{Name: "A", Email: "a@x.com"},
		Items:     []models.OrderItem{{ProductID: "p2", Name: "Leather Traveler Wallet", Price: 45000, Quantity: 1, ItemTotal: 45000}},
		Total:     45000,
		Status:    models.OrderStatusConfirmed,
		CreatedAt: time.Now(),
	}
	other := &models.Order{
		ID:        "ORD-3000-cccc",
		Customer:  models.Customer{Name: "B", Email: "b@x.com"},
		Total:     15000,
		Status:    models.OrderStatusConfirmed,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, other))

	fetched, err := repo.GetByID(ctx, "ORD-1000-aaaa")
	require.NoError(t, err)
	assert.Equal(t, int64(250000), fetched.Total)
	require.Len(t, fetched.Items, 1)
	assert.Equal(t, "Classic Monogram Handbag", fetched.Items[0].Name)
	assert.Equal(t, int64(250000), fetched.Items[0].ItemTotal)

	_, err = repo.GetByID(ctx, "ORD-missing")
	assert.ErrorIs(t, err, repositories.ErrOrderNotFound)

	// Exact email match, newest first.
	history, err := repo.ListByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "ORD-2000-bbbb", history[0].ID)
	assert.Equal(t, "ORD-1000-aaaa", history[1].ID)

	// Case-sensitive: a different casing matches nothing.
	none, err := repo.ListByEmail(ctx, "A@X.COM")
	require.NoError(t, err)
	assert.Empty(t, none)
}
