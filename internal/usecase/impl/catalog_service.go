// Package impl contains the concrete implementations of the use case
// interfaces.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

// sessionState holds one client's cart and view preferences.
type sessionState struct {
	prefs usecase.ViewPreferences
	cart  []entity.CartItem
}

type catalogService struct {
	productRepo  repository.ProductRepository
	settingsRepo repository.SettingsRepository
	orderRepo    repository.OrderRepository
	prefStore    repository.PreferenceStore
	notifier     service.OrderNotifier
	logger       *slog.Logger

	mu       sync.RWMutex
	products []entity.Product
	settings entity.StoreSettings
	stale    bool // Serving the fallback snapshot instead of live data.
	sessions map[string]*sessionState
}

// NewCatalogService creates the catalog state manager. Call LoadCatalog
// before serving; the fx lifecycle does this at startup.
func NewCatalogService(
	productRepo repository.ProductRepository,
	settingsRepo repository.SettingsRepository,
	orderRepo repository.OrderRepository,
	prefStore repository.PreferenceStore,
	notifier service.OrderNotifier,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  productRepo,
		settingsRepo: settingsRepo,
		orderRepo:    orderRepo,
		prefStore:    prefStore,
		notifier:     notifier,
		logger:       logger,
		settings:     entity.DefaultStoreSettings(),
		sessions:     make(map[string]*sessionState),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// LoadCatalog fetches products and settings from the database. If either
// fetch fails it falls back to the last-known snapshot, and failing that to
// an empty catalog with default settings, so callers never observe a
// partially populated manager. No retry loop; stale-but-available wins.
func (s *catalogService) LoadCatalog(ctx context.Context) error {
	products, productsErr := s.productRepo.FindAll(ctx)
	settings, settingsErr := s.settingsRepo.Get(ctx)

	if productsErr != nil || settingsErr != nil {
		s.log(ctx).Error("Failed to load catalog from database, falling back to snapshot",
			slog.Any("productsError", productsErr),
			slog.Any("settingsError", settingsErr),
		)

		return s.loadFromSnapshot(ctx)
	}

	s.mu.Lock()
	s.products = products
	s.settings = *settings
	s.stale = false
	s.mu.Unlock()

	s.saveSnapshot(ctx, products, *settings)

	return nil
}

func (s *catalogService) loadFromSnapshot(ctx context.Context) error {
	snapshot, err := s.prefStore.LoadSnapshot(ctx)
	if err != nil {
		s.log(ctx).Error("No catalog snapshot available, starting with an empty catalog",
			slog.Any("error", err),
		)

		s.mu.Lock()
		s.products = []entity.Product{}
		s.settings = entity.DefaultStoreSettings()
		s.stale = true
		s.mu.Unlock()

		return nil
	}

	s.mu.Lock()
	s.products = snapshot.Products
	s.settings = snapshot.Settings
	s.stale = true
	s.mu.Unlock()

	s.log(ctx).Warn("Serving catalog from fallback snapshot",
		slog.Time("savedAt", snapshot.SavedAt),
		slog.Int("products", len(snapshot.Products)),
	)

	return nil
}

// saveSnapshot refreshes the fallback snapshot after a successful load.
// Failure only costs us fallback freshness, so it is logged and swallowed.
func (s *catalogService) saveSnapshot(ctx context.Context, products []entity.Product, settings entity.StoreSettings) {
	snapshot := &repository.CatalogSnapshot{
		Products: products,
		Settings: settings,
		SavedAt:  time.Now().UTC(),
	}
	if err := s.prefStore.SaveSnapshot(ctx, snapshot); err != nil {
		s.log(ctx).Warn("Failed to save catalog snapshot", slog.Any("error", err))
	}
}

func (s *catalogService) RefreshProducts(ctx context.Context) error {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to refresh products")
	}

	s.mu.Lock()
	s.products = products
	settings := s.settings
	s.stale = false
	s.mu.Unlock()

	s.saveSnapshot(ctx, products, settings)

	return nil
}

func (s *catalogService) RefreshSettings(ctx context.Context) error {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to refresh settings")
	}

	s.mu.Lock()
	s.settings = *settings
	products := s.products
	s.mu.Unlock()

	s.saveSnapshot(ctx, products, *settings)

	return nil
}

func (s *catalogService) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.products)
}

func (s *catalogService) Settings() entity.StoreSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings
}

func (s *catalogService) View(sessionID string) *usecase.CatalogView {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)

	return &usecase.CatalogView{
		Products:    DeriveView(s.products, sess.prefs.SearchTerm, sess.prefs.Category, sess.prefs.Sort),
		Settings:    s.settings,
		Preferences: sess.prefs,
		Stale:       s.stale,
	}
}

func (s *catalogService) SetFilter(sessionID, searchTerm, category string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	sess.prefs.SearchTerm = searchTerm
	sess.prefs.Category = category
}

func (s *catalogService) SetSort(sessionID string, key usecase.SortKey) error {
	if !key.Valid() {
		return domainerrors.ErrInvalidSortKey.WithDetails(string(key))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session(sessionID).prefs.Sort = key

	return nil
}

func (s *catalogService) SetGridSize(sessionID string, size usecase.GridSize) error {
	if !size.Valid() {
		return domainerrors.ErrInvalidGridSize.WithDetails(string(size))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session(sessionID).prefs.Grid = size

	return nil
}

func (s *catalogService) Cart(sessionID string) []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.session(sessionID).cart)
}

// AddToCart inserts a new line or tops up an existing one. Adding to an
// existing line clamps the result to the product's live stock; products that
// are out of stock or "coming soon" are silently ignored. This clamp is
// intentionally asymmetric with UpdateCartQuantity.
func (s *catalogService) AddToCart(sessionID, productID string, quantity int) ([]entity.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.products, func(p entity.Product) bool { return p.ID == productID })
	if idx < 0 {
		return nil, domainerrors.ErrProductNotFound.WithDetails(productID)
	}
	product := s.products[idx]

	sess := s.session(sessionID)
	if !product.Orderable() {
		return slices.Clone(sess.cart), nil
	}

	for i := range sess.cart {
		if sess.cart[i].Product.ID == productID {
			sess.cart[i].Quantity = min(sess.cart[i].Quantity+quantity, product.Quantity)

			return slices.Clone(sess.cart), nil
		}
	}

	sess.cart = append(sess.cart, entity.CartItem{Product: product, Quantity: quantity})

	return slices.Clone(sess.cart), nil
}

// UpdateCartQuantity treats any non-positive quantity as removal. A positive
// quantity replaces the line unconditionally, NOT reclamped against stock.
// That asymmetry with AddToCart mirrors the original storefront and is kept
// pending product-owner review.
func (s *catalogService) UpdateCartQuantity(sessionID, productID string, quantity int) []entity.CartItem {
	if quantity <= 0 {
		return s.RemoveFromCart(sessionID, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	for i := range sess.cart {
		if sess.cart[i].Product.ID == productID {
			sess.cart[i].Quantity = quantity

			break
		}
	}

	return slices.Clone(sess.cart)
}

func (s *catalogService) RemoveFromCart(sessionID, productID string) []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	sess.cart = slices.DeleteFunc(sess.cart, func(item entity.CartItem) bool {
		return item.Product.ID == productID
	})

	return slices.Clone(sess.cart)
}

// SubmitOrder runs the checkout sequence: persist the order, then decrement
// stock product by product, then refresh the catalog, notify the operator
// and clear the cart. The steps are sequential and deliberately
// non-transactional. An order-persist failure aborts before any decrement
// (fail-fast); a decrement failure partway through leaves earlier decrements
// applied - the order exists and the operator reconciles stock manually.
func (s *catalogService) SubmitOrder(ctx context.Context, sessionID, customerName string) (*entity.Order, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, domainerrors.ErrEmptyCustomerName
	}

	s.mu.Lock()
	sess := s.session(sessionID)
	items := slices.Clone(sess.cart)
	s.mu.Unlock()

	if len(items) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	order := &entity.Order{
		ID:           newOrderID(),
		CustomerName: customerName,
		Items:        items,
		Total:        entity.CartTotal(items),
		Status:       entity.OrderPending,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.log(ctx).Error("Failed to persist order, aborting before any stock decrement",
			slog.String("orderID", order.ID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrOrderCreationFailed
	}

	if err := s.decrementStock(ctx, order); err != nil {
		return nil, err
	}

	if err := s.RefreshProducts(ctx); err != nil {
		s.log(ctx).Error("Failed to refresh products after order",
			slog.String("orderID", order.ID),
			slog.Any("error", err),
		)

		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyOrder(ctx, order); err != nil {
			// Fire-and-forget: the order already exists, a lost email
			// must not fail the checkout.
			s.log(ctx).Warn("Failed to send order notification",
				slog.String("orderID", order.ID),
				slog.Any("error", err),
			)
		}
	}

	s.mu.Lock()
	sess.cart = nil
	s.mu.Unlock()

	s.log(ctx).Info("Order submitted",
		slog.String("orderID", order.ID),
		slog.String("customer", order.CustomerName),
		slog.String("total", order.Total.String()),
	)

	return order, nil
}

// decrementStock applies one repository update per cart line, each awaited
// before the next begins. There is no rollback: an error mid-way leaves the
// already-applied decrements in place.
func (s *catalogService) decrementStock(ctx context.Context, order *entity.Order) error {
	for _, item := range order.Items {
		s.mu.RLock()
		idx := slices.IndexFunc(s.products, func(p entity.Product) bool { return p.ID == item.Product.ID })
		var current int
		if idx >= 0 {
			current = s.products[idx].Quantity
		}
		s.mu.RUnlock()

		if idx < 0 {
			// Product disappeared from the catalog since it was carted;
			// nothing to decrement.
			continue
		}

		remaining := current - item.Quantity
		patch := repository.ProductPatch{Quantity: &remaining}
		if _, err := s.productRepo.Update(ctx, item.Product.ID, patch); err != nil {
			s.log(ctx).Error("Stock decrement failed partway through; earlier decrements are not rolled back",
				slog.String("orderID", order.ID),
				slog.String("productID", item.Product.ID),
				slog.Any("error", err),
			)

			return domainerrors.NewDatabaseExecuteError(err, "failed to update product stock").
				WithDetails(fmt.Sprintf("order %s was recorded; stock requires manual reconciliation", order.ID))
		}
	}

	return nil
}

// session returns the state for a session ID, creating it with default
// preferences on first use. Callers must hold s.mu.
func (s *catalogService) session(sessionID string) *sessionState {
	if sess, ok := s.sessions[sessionID]; ok {
		return sess
	}

	sess := &sessionState{
		prefs: usecase.ViewPreferences{
			Sort: usecase.SortName,
			Grid: usecase.GridMedium,
		},
	}
	s.sessions[sessionID] = sess

	return sess
}

// newOrderID mints identifiers like ORD-1756339200000-1a2b3c4d5, matching
// the format order inquiries have always used.
func newOrderID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]

	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}
