package impl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func catalogFixture() []entity.Product {
	return []entity.Product{
		{ID: "p1", Name: "Rectifier diode", Price: decimal.NewFromInt(50), Category: "diodes", Quantity: 10},
		{ID: "p2", Name: "Ceramic capacitor", Price: decimal.NewFromInt(25), Category: "capacitors", Quantity: 5},
		{ID: "p3", Name: "Relay module", Price: decimal.NewFromInt(120), Category: "modules", Quantity: 0},
		{ID: "p4", Name: "Stepper driver", Price: decimal.NewFromInt(300), Category: "modules", Quantity: -1},
	}
}

type catalogFixtures struct {
	products *mockProductRepo
	settings *mockSettingsRepo
	orders   *mockOrderRepo
	prefs    *mockPrefStore
	notifier *mockNotifier
}

func newTestCatalog(t *testing.T) (usecase.CatalogUsecase, *catalogFixtures) {
	t.Helper()

	f := &catalogFixtures{
		products: &mockProductRepo{products: catalogFixture()},
		settings: &mockSettingsRepo{settings: entity.DefaultStoreSettings()},
		orders:   &mockOrderRepo{},
		prefs:    &mockPrefStore{},
		notifier: &mockNotifier{},
	}

	svc := NewCatalogService(f.products, f.settings, f.orders, f.prefs, f.notifier, testLogger())
	require.NoError(t, svc.LoadCatalog(context.Background()))

	return svc, f
}

func TestLoadCatalog_PopulatesFromDatabase(t *testing.T) {
	svc, f := newTestCatalog(t)

	assert.Len(t, svc.Products(), 4)
	assert.NotNil(t, f.prefs.snapshot, "a successful load refreshes the fallback snapshot")

	view := svc.View("s1")
	assert.False(t, view.Stale)
	assert.Equal(t, usecase.SortName, view.Preferences.Sort)
	assert.Equal(t, usecase.GridMedium, view.Preferences.Grid)
}

func TestLoadCatalog_FallsBackToSnapshot(t *testing.T) {
	prefs := &mockPrefStore{
		snapshot: &repository.CatalogSnapshot{
			Products: catalogFixture()[:2],
			Settings: entity.DefaultStoreSettings(),
		},
	}
	products := &mockProductRepo{findAllErr: errors.New("connection refused")}
	svc := NewCatalogService(products, &mockSettingsRepo{}, &mockOrderRepo{}, prefs, &mockNotifier{}, testLogger())

	require.NoError(t, svc.LoadCatalog(context.Background()))

	assert.Len(t, svc.Products(), 2)
	assert.True(t, svc.View("s1").Stale, "snapshot-backed catalog is flagged stale")
}

func TestLoadCatalog_NoSnapshotStartsEmpty(t *testing.T) {
	products := &mockProductRepo{findAllErr: errors.New("connection refused")}
	svc := NewCatalogService(products, &mockSettingsRepo{}, &mockOrderRepo{}, &mockPrefStore{}, &mockNotifier{}, testLogger())

	require.NoError(t, svc.LoadCatalog(context.Background()))

	assert.Empty(t, svc.Products())
	assert.Equal(t, entity.DefaultStoreSettings().Categories, svc.Settings().Categories)
	assert.True(t, svc.View("s1").Stale)
}

func TestAddToCart_NewLine(t *testing.T) {
	svc, _ := newTestCatalog(t)

	items, err := svc.AddToCart("s1", "p1", 3)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].Product.ID)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAddToCart_TopUpClampsToStock(t *testing.T) {
	svc, _ := newTestCatalog(t)

	_, err := svc.AddToCart("s1", "p2", 3)
	require.NoError(t, err)

	// p2 has 5 in stock; 3+4 clamps to 5.
	items, err := svc.AddToCart("s1", "p2", 4)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddToCart_NonPositiveQuantityMeansOne(t *testing.T) {
	svc, _ := newTestCatalog(t)

	items, err := svc.AddToCart("s1", "p1", 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	svc, _ := newTestCatalog(t)

	_, err := svc.AddToCart("s1", "ghost", 1)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestAddToCart_IgnoresNonOrderable(t *testing.T) {
	svc, _ := newTestCatalog(t)

	// p3 is out of stock, p4 is coming soon; neither enters the cart.
	items, err := svc.AddToCart("s1", "p3", 1)
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = svc.AddToCart("s1", "p4", 1)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUpdateCartQuantity_NonPositiveRemoves(t *testing.T) {
	svc, _ := newTestCatalog(t)

	_, err := svc.AddToCart("s1", "p1", 2)
	require.NoError(t, err)

	items := svc.UpdateCartQuantity("s1", "p1", 0)
	assert.Empty(t, items)

	_, err = svc.AddToCart("s1", "p1", 2)
	require.NoError(t, err)

	items = svc.UpdateCartQuantity("s1", "p1", -3)
	assert.Empty(t, items)
}

func TestUpdateCartQuantity_DoesNotClamp(t *testing.T) {
	svc, _ := newTestCatalog(t)

	_, err := svc.AddToCart("s1", "p2", 1)
	require.NoError(t, err)

	// Replacement is verbatim even beyond the 5 in stock.
	items := svc.UpdateCartQuantity("s1", "p2", 99)
	require.Len(t, items, 1)
	assert.Equal(t, 99, items[0].Quantity)
}

func TestRemoveFromCart(t *testing.T) {
	svc, _ := newTestCatalog(t)

	_, err := svc.AddToCart("s1", "p1", 1)
	require.NoError(t, err)
	_, err = svc.AddToCart("s1", "p2", 1)
	require.NoError(t, err)

	items := svc.RemoveFromCart("s1", "p1")
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].Product.ID)

	// Removing a missing line is a no-op.
	items = svc.RemoveFromCart("s1", "ghost")
	assert.Len(t, items, 1)
}

func TestCart_SessionsAreIsolated(t *testing.T) {
	svc, _ := newTestCatalog(t)

	_, err := svc.AddToCart("shopper-a", "p1", 2)
	require.NoError(t, err)

	assert.Empty(t, svc.Cart("shopper-b"))
	assert.Len(t, svc.Cart("shopper-a"), 1)
}

func TestSetSort_RejectsUnknownKey(t *testing.T) {
	svc, _ := newTestCatalog(t)

	err := svc.SetSort("s1", usecase.SortKey("rating"))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidSortKey)

	require.NoError(t, svc.SetSort("s1", usecase.SortPriceDesc))
	assert.Equal(t, usecase.SortPriceDesc, svc.View("s1").Preferences.Sort)
}

func TestSetGridSize_RejectsUnknownSize(t *testing.T) {
	svc, _ := newTestCatalog(t)

	err := svc.SetGridSize("s1", usecase.GridSize("huge"))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidGridSize)

	require.NoError(t, svc.SetGridSize("s1", usecase.GridLarge))
	assert.Equal(t, usecase.GridLarge, svc.View("s1").Preferences.Grid)
}

func TestView_AppliesSessionPreferences(t *testing.T) {
	svc, _ := newTestCatalog(t)

	svc.SetFilter("s1", "", "modules")
	require.NoError(t, svc.SetSort("s1", usecase.SortPriceAsc))

	view := svc.View("s1")
	require.Len(t, view.Products, 2)
	assert.Equal(t, "p3", view.Products[0].ID)
	assert.Equal(t, "p4", view.Products[1].ID)
}

func TestSubmitOrder_HappyPath(t *testing.T) {
	svc, f := newTestCatalog(t)
	ctx := context.Background()

	_, err := svc.AddToCart("s1", "p1", 3) // 3 x 50
	require.NoError(t, err)
	_, err = svc.AddToCart("s1", "p2", 4) // 4 x 25
	require.NoError(t, err)

	order, err := svc.SubmitOrder(ctx, "s1", "  Jan Novák  ")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.ID, "ORD-"))
	assert.Equal(t, "Jan Novák", order.CustomerName)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.True(t, order.Total.Equal(decimal.NewFromInt(250)), "got total %s", order.Total)

	// Persisted, stock decremented, operator notified, cart cleared.
	assert.Len(t, f.orders.orders, 1)
	assert.Equal(t, 7, f.products.quantityOf("p1"))
	assert.Equal(t, 1, f.products.quantityOf("p2"))
	assert.Len(t, f.notifier.notified, 1)
	assert.Empty(t, svc.Cart("s1"))
}

func TestSubmitOrder_BlankCustomerName(t *testing.T) {
	svc, _ := newTestCatalog(t)

	_, err := svc.AddToCart("s1", "p1", 1)
	require.NoError(t, err)

	_, err = svc.SubmitOrder(context.Background(), "s1", "   ")
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCustomerName)
	assert.Len(t, svc.Cart("s1"), 1, "cart survives a rejected submit")
}

func TestSubmitOrder_EmptyCart(t *testing.T) {
	svc, _ := newTestCatalog(t)

	_, err := svc.SubmitOrder(context.Background(), "s1", "Jan")
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestSubmitOrder_PersistFailureAbortsBeforeDecrements(t *testing.T) {
	svc, f := newTestCatalog(t)
	f.orders.createErr = errors.New("insert failed")

	_, err := svc.AddToCart("s1", "p1", 2)
	require.NoError(t, err)

	_, err = svc.SubmitOrder(context.Background(), "s1", "Jan")
	assert.ErrorIs(t, err, domainerrors.ErrOrderCreationFailed)

	assert.Equal(t, 10, f.products.quantityOf("p1"), "no decrement before the order row exists")
	assert.Len(t, svc.Cart("s1"), 1, "cart is kept for retry")
	assert.Empty(t, f.notifier.notified)
}

func TestSubmitOrder_DecrementFailureIsNotRolledBack(t *testing.T) {
	svc, f := newTestCatalog(t)
	f.products.failOnID = "p2"

	_, err := svc.AddToCart("s1", "p1", 3)
	require.NoError(t, err)
	_, err = svc.AddToCart("s1", "p2", 2)
	require.NoError(t, err)

	_, err = svc.SubmitOrder(context.Background(), "s1", "Jan")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manual reconciliation")

	// The order row exists and the first decrement stays applied.
	assert.Len(t, f.orders.orders, 1)
	assert.Equal(t, 7, f.products.quantityOf("p1"))
	assert.Equal(t, 5, f.products.quantityOf("p2"))
	assert.Len(t, svc.Cart("s1"), 2, "cart is not cleared on a failed checkout")
}

func TestSubmitOrder_SkipsVanishedProduct(t *testing.T) {
	svc, f := newTestCatalog(t)
	ctx := context.Background()

	_, err := svc.AddToCart("s1", "p1", 2)
	require.NoError(t, err)

	// The product disappears between carting and checkout.
	require.NoError(t, f.products.Delete(ctx, "p1"))
	require.NoError(t, svc.RefreshProducts(ctx))

	order, err := svc.SubmitOrder(ctx, "s1", "Jan")
	require.NoError(t, err)

	assert.Len(t, f.orders.orders, 1)
	assert.Empty(t, f.products.updatedIDs, "nothing to decrement")
	assert.True(t, order.Total.Equal(decimal.NewFromInt(100)), "the carted price still counts")
}

func TestSubmitOrder_NotifierFailureDoesNotFailCheckout(t *testing.T) {
	svc, f := newTestCatalog(t)
	f.notifier.err = errors.New("relay unreachable")

	_, err := svc.AddToCart("s1", "p1", 1)
	require.NoError(t, err)

	order, err := svc.SubmitOrder(context.Background(), "s1", "Jan")
	require.NoError(t, err)
	assert.NotNil(t, order)
	assert.Empty(t, svc.Cart("s1"))
}

func TestRefreshProducts_UpdatesSnapshot(t *testing.T) {
	svc, f := newTestCatalog(t)
	ctx := context.Background()

	require.NoError(t, f.products.Create(ctx, &entity.Product{Name: "New part", Category: "modules", Quantity: 1}))
	require.NoError(t, svc.RefreshProducts(ctx))

	assert.Len(t, svc.Products(), 5)
	assert.Len(t, f.prefs.snapshot.Products, 5)
}
