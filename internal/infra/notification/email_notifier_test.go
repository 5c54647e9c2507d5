package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() *entity.Order {
	return &entity.Order{
		ID:           "ORD-1700000000000-abc123def",
		CustomerName: "Jan Novák",
		Items: []entity.CartItem{
			{Product: entity.Product{Name: "BC547 transistor", Price: decimal.NewFromFloat(2.5)}, Quantity: 100},
			{Product: entity.Product{Name: "Soldering iron", Price: decimal.NewFromInt(1250)}, Quantity: 1},
		},
		Total:     decimal.NewFromFloat(1500),
		Status:    entity.OrderPending,
		CreatedAt: time.Now(),
	}
}

func TestNotifyOrder_PostsTemplateParams(t *testing.T) {
	var received emailPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier, err := NewEmailNotifier(&config.NotificationConfig{
		Endpoint:   server.URL,
		ServiceID:  "svc",
		TemplateID: "tpl",
		PublicKey:  "pk",
		Recipient:  "orders@okindustries.cz",
	})
	require.NoError(t, err)
	defer notifier.Close()

	require.NoError(t, notifier.NotifyOrder(context.Background(), testOrder()))

	assert.Equal(t, "svc", received.ServiceID)
	assert.Equal(t, "tpl", received.TemplateID)
	assert.Equal(t, "pk", received.UserID)
	assert.Equal(t, "Jan Novák", received.TemplateParams.CustomerName)
	assert.Equal(t, "ORD-1700000000000-abc123def", received.TemplateParams.OrderID)
	assert.Equal(t, "orders@okindustries.cz", received.TemplateParams.ToEmail)
	assert.Equal(t, "1 500,00 CZK", received.TemplateParams.OrderTotal)
	assert.Equal(t,
		"BC547 transistor x100 - 250,00 CZK\nSoldering iron x1 - 1 250,00 CZK",
		received.TemplateParams.OrderItems)
}

func TestNotifyOrder_RelayFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad template", http.StatusBadRequest)
	}))
	defer server.Close()

	notifier, err := NewEmailNotifier(&config.NotificationConfig{Endpoint: server.URL})
	require.NoError(t, err)
	defer notifier.Close()

	err = notifier.NotifyOrder(context.Background(), testOrder())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestNewEmailNotifier_MissingEndpoint(t *testing.T) {
	_, err := NewEmailNotifier(&config.NotificationConfig{})
	assert.Error(t, err)

	_, err = NewEmailNotifier(nil)
	assert.Error(t, err)
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount decimal.Decimal
		want   string
	}{
		{decimal.NewFromFloat(2.5), "2,50 CZK"},
		{decimal.NewFromFloat(1234.5), "1 234,50 CZK"},
		{decimal.NewFromInt(1000000), "1 000 000,00 CZK"},
		{decimal.NewFromInt(0), "0,00 CZK"},
		{decimal.NewFromFloat(-99.9), "-99,90 CZK"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.amount))
	}
}
