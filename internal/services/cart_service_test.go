package services_test

import (
	"context"
	"testing"

	"boutique/internal/models"
	"boutique/internal/repositories"
	"boutique/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCartFixture wires a CartService over in-memory stores with a small
// seeded catalog.
func newCartFixture(t *testing.T) (*services.CartService, *repositories.MockProductRepository, *repositories.MockCartRepository) {
	t.Helper()

	productRepo := repositories.NewMockProductRepository()
	cartRepo := repositories.NewMockCartRepository()

	ctx := context.Background()
	require.NoError(t, productRepo.Create(ctx, &models.Product{
		ID: "handbag", Name: "Classic Monogram Handbag", Price: 125000, Category: "Handbags",
	}))
	require.NoError(t, productRepo.Create(ctx, &models.Product{
		ID: "wallet", Name: "Leather Traveler Wallet", Price: 45000, Category: "Accessories",
	}))

	return services.NewCartService(cartRepo, productRepo), productRepo, cartRepo
}

func TestCartService_AddItemCreatesLine(t *testing.T) {
	service, _, _ := newCartFixture(t)
	ctx := context.Background()

	item, err := service.AddItem(ctx, "s1", "handbag", 2)

	assert.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "handbag", item.ProductID)
	assert.Equal(t, 2, item.Quantity)
}

func TestCartService_AddItemMergesQuantities(t *testing.T) {
	service, _, _ := newCartFixture(t)
	ctx := context.Background()

	first, err := service.AddItem(ctx, "s1", "handbag", 2)
	require.NoError(t, err)

	second, err := service.AddItem(ctx, "s1", "handbag", 3)
	require.NoError(t, err)

	// Same line, quantities summed, never overwritten.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Quantity)

	cart, err := service.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, int64(5*125000), cart.Total)
}

func TestCartService_AddItemInvalidQuantity(t *testing.T) {
	service, _, _ := newCartFixture(t)

	for _, quantity := range []int{0, -1} {
		item, err := service.AddItem(context.Background(), "s1", "handbag", quantity)
		assert.ErrorIs(t, err, services.ErrInvalidQuantity)
		assert.Nil(t, item)
	}
}

func TestCartService_AddItemUnknownProduct(t *testing.T) {
	service, _, _ := newCartFixture(t)

	item, err := service.AddItem(context.Background(), "s1", "no-such-product", 1)

	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	assert.Nil(t, item)
}

func TestCartService_SetQuantity(t *testing.T) {
	service, _, _ := newCartFixture(t)
	ctx := context.Background()

	added, err := service.AddItem(ctx, "s1", "handbag", 1)
	require.NoError(t, err)

	updated, err := service.SetQuantity(ctx, "s1", added.ID, 4)
	assert.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)

	_, err = service.SetQuantity(ctx, "s1", "no-such-line", 2)
	assert.ErrorIs(t, err, repositories.ErrCartItemNotFound)
}

func TestCartService_SetQuantityZeroRemovesLine(t *testing.T) {
	service, _, _ := newCartFixture(t)
	ctx := context.Background()

	added, err := service.AddItem(ctx, "s1", "handbag", 2)
	require.NoError(t, err)

	item, err := service.SetQuantity(ctx, "s1", added.ID, 0)
	assert.NoError(t, err)
	assert.Nil(t, item)

	// Same observable effect as RemoveItem.
	cart, err := service.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)

	err = service.RemoveItem(ctx, "s1", added.ID)
	assert.ErrorIs(t, err, repositories.ErrCartItemNotFound)
}

func TestCartService_RemoveItem(t *testing.T) {
	service, _, _ := newCartFixture(t)
	ctx := context.Background()

	added, err := service.AddItem(ctx, "s1", "wallet", 1)
	require.NoError(t, err)

	assert.NoError(t, service.RemoveItem(ctx, "s1", added.ID))
	assert.ErrorIs(t, service.RemoveItem(ctx, "s1", added.ID), repositories.ErrCartItemNotFound)
}

func TestCartService_GetCartTotalIsExact(t *testing.T) {
	service, _, _ := newCartFixture(t)
	ctx := context.Background()

	_, err := service.AddItem(ctx, "s1", "handbag", 2)
	require.NoError(t, err)
	_, err = service.AddItem(ctx, "s1", "wallet", 3)
	require.NoError(t, err)

	cart, err := service.GetCart(ctx, "s1")
	require.NoError(t, err)

	assert.Len(t, cart.Items, 2)
	var sum int64
	for _, line := range cart.Items {
		assert.Equal(t, line.Product.Price*int64(line.Quantity), line.ItemTotal)
		sum += line.ItemTotal
	}
	assert.Equal(t, sum, cart.Total)
	assert.Equal(t, int64(2*125000+3*45000), cart.Total)
}

func TestCartService_SessionIsolation(t *testing.T) {
	service, _, _ := newCartFixture(t)
	ctx := context.Background()

	_, err := service.AddItem(ctx, "alice", "handbag", 1)
	require.NoError(t, err)
	_, err = service.AddItem(ctx, "bob", "wallet", 2)
	require.NoError(t, err)

	aliceCart, err := service.GetCart(ctx, "alice")
	require.NoError(t, err)
	bobCart, err := service.GetCart(ctx, "bob")
	require.NoError(t, err)

	assert.Len(t, aliceCart.Items, 1)
	assert.Equal(t, "handbag", aliceCart.Items[0].Product.ID)
	assert.Len(t, bobCart.Items, 1)
	assert.Equal(t, "wallet", bobCart.Items[0].Product.ID)
}
