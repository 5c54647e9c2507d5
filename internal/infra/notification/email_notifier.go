// Package notification delivers order emails through an external HTTP relay.
// Sends are fire-and-forget from the caller's point of view; a failed send
// never blocks checkout.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/shopspring/decimal"
)

const sendTimeout = 10 * time.Second

// emailPayload is the relay's send request. template_params carries the
// fields the order template interpolates.
type emailPayload struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams templateParams `json:"template_params"`
}

type templateParams struct {
	CustomerName string `json:"customer_name"`
	OrderID      string `json:"order_id"`
	OrderTotal   string `json:"order_total"`
	OrderItems   string `json:"order_items"`
	ToEmail      string `json:"to_email"`
}

type emailNotifier struct {
	client *http.Client
	cfg    *config.NotificationConfig
}

// NewEmailNotifier creates an order notifier that posts to the configured
// email relay endpoint.
func NewEmailNotifier(cfg *config.NotificationConfig) (service.OrderNotifier, error) {
	if cfg == nil || cfg.Endpoint == "" {
		return nil, fmt.Errorf("notification endpoint is not configured")
	}

	return &emailNotifier{
		client: &http.Client{Timeout: sendTimeout},
		cfg:    cfg,
	}, nil
}

// NotifyOrder sends the order summary email for a freshly persisted order.
func (n *emailNotifier) NotifyOrder(ctx context.Context, order *entity.Order) error {
	payload := emailPayload{
		ServiceID:  n.cfg.ServiceID,
		TemplateID: n.cfg.TemplateID,
		UserID:     n.cfg.PublicKey,
		TemplateParams: templateParams{
			CustomerName: order.CustomerName,
			OrderID:      order.ID,
			OrderTotal:   FormatPrice(order.Total),
			OrderItems:   formatOrderItems(order.Items),
			ToEmail:      n.cfg.Recipient,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send order email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email relay rejected order %s: status %d: %s", order.ID, resp.StatusCode, string(detail))
	}

	return nil
}

// Close releases the notifier's connections.
func (n *emailNotifier) Close() error {
	n.client.CloseIdleConnections()
	return nil
}

// formatOrderItems renders one line per cart item: "name xQty - price".
func formatOrderItems(items []entity.CartItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s x%d - %s", item.Product.Name, item.Quantity, FormatPrice(item.Subtotal())))
	}

	return strings.Join(lines, "\n")
}

// FormatPrice renders an amount in Czech locale notation with a CZK suffix,
// e.g. "1 234,50 CZK".
func FormatPrice(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	// Group the integer digits by thousands with non-breaking spaces.
	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteRune(' ')
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}

	return fmt.Sprintf("%s%s,%s CZK", sign, grouped.String(), fracPart)
}
