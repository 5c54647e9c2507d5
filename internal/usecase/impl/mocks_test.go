package impl

import (
	"context"
	"fmt"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type mockProductRepo struct {
	m        sync.RWMutex
	products []entity.Product

	findAllErr error
	createErr  error
	updateErr  error
	deleteErr  error

	// failOnID makes Update fail for one specific product.
	failOnID string

	updatedIDs []string
}

func (m *mockProductRepo) FindAll(context.Context) ([]entity.Product, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.findAllErr != nil {
		return nil, m.findAllErr
	}
	out := make([]entity.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *mockProductRepo) FindByID(_ context.Context, id string) (*entity.Product, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	for i := range m.products {
		if m.products[i].ID == id {
			p := m.products[i]
			return &p, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (m *mockProductRepo) Create(_ context.Context, product *entity.Product) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	if product.ID == "" {
		product.ID = fmt.Sprintf("p%d", len(m.products)+1)
	}
	m.products = append(m.products, *product)
	return nil
}

func (m *mockProductRepo) CreateBulk(_ context.Context, drafts []entity.ProductDraft) ([]entity.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.createErr != nil {
		return nil, m.createErr
	}
	created := make([]entity.Product, 0, len(drafts))
	for _, draft := range drafts {
		product := entity.Product{
			ID:          fmt.Sprintf("p%d", len(m.products)+1),
			Name:        draft.Name,
			Price:       draft.Price,
			Category:    draft.Category,
			Quantity:    draft.Quantity,
			Image:       draft.Image,
			Description: draft.Description,
		}
		m.products = append(m.products, product)
		created = append(created, product)
	}
	return created, nil
}

func (m *mockProductRepo) Update(_ context.Context, id string, patch repository.ProductPatch) (*entity.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	if m.failOnID != "" && m.failOnID == id {
		return nil, fmt.Errorf("simulated update failure for %s", id)
	}
	for i := range m.products {
		if m.products[i].ID != id {
			continue
		}
		if patch.Name != nil {
			m.products[i].Name = *patch.Name
		}
		if patch.Price != nil {
			m.products[i].Price = *patch.Price
		}
		if patch.Category != nil {
			m.products[i].Category = *patch.Category
		}
		if patch.Quantity != nil {
			m.products[i].Quantity = *patch.Quantity
		}
		if patch.Image != nil {
			m.products[i].Image = *patch.Image
		}
		if patch.Description != nil {
			m.products[i].Description = *patch.Description
		}
		m.updatedIDs = append(m.updatedIDs, id)
		p := m.products[i]
		return &p, nil
	}
	return nil, repository.ErrProductNotFound
}

func (m *mockProductRepo) Delete(_ context.Context, id string) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for i := range m.products {
		if m.products[i].ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return repository.ErrProductNotFound
}

func (m *mockProductRepo) quantityOf(id string) int {
	m.m.RLock()
	defer m.m.RUnlock()
	for i := range m.products {
		if m.products[i].ID == id {
			return m.products[i].Quantity
		}
	}
	return -1
}

type mockOrderRepo struct {
	m      sync.Mutex
	orders []entity.Order

	createErr error
}

func (m *mockOrderRepo) Create(_ context.Context, order *entity.Order) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.orders = append(m.orders, *order)
	return nil
}

func (m *mockOrderRepo) FindAll(context.Context) ([]entity.Order, error) {
	m.m.Lock()
	defer m.m.Unlock()
	out := make([]entity.Order, len(m.orders))
	copy(out, m.orders)
	return out, nil
}

type mockSettingsRepo struct {
	m        sync.Mutex
	settings entity.StoreSettings

	getErr     error
	replaceErr error
}

func (m *mockSettingsRepo) Get(context.Context) (*entity.StoreSettings, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsRepo) Replace(_ context.Context, settings *entity.StoreSettings) (*entity.StoreSettings, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.replaceErr != nil {
		return nil, m.replaceErr
	}
	m.settings = *settings
	s := m.settings
	return &s, nil
}

type mockPrefStore struct {
	m        sync.Mutex
	snapshot *repository.CatalogSnapshot
	admins   map[string]bool

	saveErr  error
	adminErr error
}

func (m *mockPrefStore) SaveSnapshot(_ context.Context, snapshot *repository.CatalogSnapshot) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.snapshot = snapshot
	return nil
}

func (m *mockPrefStore) LoadSnapshot(context.Context) (*repository.CatalogSnapshot, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.snapshot == nil {
		return nil, repository.ErrSnapshotNotFound
	}
	return m.snapshot, nil
}

func (m *mockPrefStore) SetAdminSession(_ context.Context, sessionID string, isAdmin bool) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.adminErr != nil {
		return m.adminErr
	}
	if m.admins == nil {
		m.admins = make(map[string]bool)
	}
	if isAdmin {
		m.admins[sessionID] = true
	} else {
		delete(m.admins, sessionID)
	}
	return nil
}

func (m *mockPrefStore) AdminSession(_ context.Context, sessionID string) (bool, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.adminErr != nil {
		return false, m.adminErr
	}
	return m.admins[sessionID], nil
}

type mockNotifier struct {
	m        sync.Mutex
	notified []entity.Order

	err error
}

func (m *mockNotifier) NotifyOrder(_ context.Context, order *entity.Order) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	m.notified = append(m.notified, *order)
	return nil
}

func (m *mockNotifier) Close() error { return nil }
