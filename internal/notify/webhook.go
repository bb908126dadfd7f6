package notify

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hidestyle/hidestyle-backend/internal/order"
)

// WebhookNotifier POSTs new-order events to a configured automation
// webhook (Zapier, Make, or a custom receiver). An empty URL turns the
// notifier into a silent no-op.
type WebhookNotifier struct {
	url    string
	client *resty.Client
}

func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		client: resty.New().SetTimeout(10 * time.Second),
	}
}

type webhookItem struct {
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Size     string  `json:"size,omitempty"`
	Price    float64 `json:"price"`
}

type webhookCustomer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type webhookPayload struct {
	Event         string          `json:"event"`
	OrderID       string          `json:"order_id"`
	Customer      webhookCustomer `json:"customer"`
	Items         []webhookItem   `json:"items"`
	Total         float64         `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	Timestamp     string          `json:"timestamp"`
}

func (n *WebhookNotifier) OrderCreated(ord order.Order) error {
	if n.url == "" {
		return nil
	}

	items := make([]webhookItem, 0, len(ord.Items))
	for _, item := range ord.Items {
		items = append(items, webhookItem{
			Product:  item.Title,
			Quantity: item.Quantity,
			Size:     item.Size,
			// webhook consumers want major currency units, not cents
			Price: float64(item.UnitPrice) / 100,
		})
	}

	payload := webhookPayload{
		Event:   "new_order",
		OrderID: ord.ID,
		Customer: webhookCustomer{
			Name:    ord.CustomerName,
			Email:   ord.CustomerEmail,
			Phone:   ord.Phone,
			Address: ord.ShippingAddress,
		},
		Items:         items,
		Total:         float64(ord.TotalAmount) / 100,
		PaymentMethod: paymentMethodLabel(ord.PaymentMethod),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}

	resp, err := n.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(n.url)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode(), resp.Body())
	}
	return nil
}
