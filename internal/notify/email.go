package notify

import (
	"fmt"
	"log"
	"strings"

	"github.com/hidestyle/hidestyle-backend/internal/order"
)

// EmailNotifier renders the admin "new order" mail and hands it to a
// sender. The default sender logs the rendered message, which is what the
// storefront runs with until an email provider account exists.
// TODO: wire a real provider sender (Resend/Postmark) once credentials land.
type EmailNotifier struct {
	adminEmail string
	send       func(to, subject, body string) error
}

func NewEmailNotifier(adminEmail string) *EmailNotifier {
	return &EmailNotifier{adminEmail: adminEmail}
}

// NewEmailNotifierWithSender is used by tests and by a future provider hookup.
func NewEmailNotifierWithSender(adminEmail string, send func(to, subject, body string) error) *EmailNotifier {
	return &EmailNotifier{adminEmail: adminEmail, send: send}
}

func (n *EmailNotifier) OrderCreated(ord order.Order) error {
	if n.adminEmail == "" {
		return nil
	}

	shortID := ord.ID
	if len(shortID) > 6 {
		shortID = shortID[len(shortID)-6:]
	}
	subject := fmt.Sprintf("New Order Received – Hidestyle #%s", strings.ToUpper(shortID))

	var b strings.Builder
	fmt.Fprintf(&b, "Order ID: %s\n", ord.ID)
	fmt.Fprintf(&b, "Customer: %s (%s)\n", ord.CustomerName, ord.CustomerEmail)
	fmt.Fprintf(&b, "Total: Rs %.2f\n", float64(ord.TotalAmount)/100)
	fmt.Fprintf(&b, "Payment: %s\n", paymentMethodLabel(ord.PaymentMethod))
	fmt.Fprintf(&b, "Items:\n")
	for _, item := range ord.Items {
		variant := item.Size
		if item.Color != "" {
			if variant != "" {
				variant += " / "
			}
			variant += item.Color
		}
		if variant != "" {
			variant = " (" + variant + ")"
		}
		fmt.Fprintf(&b, "  - %dx %s%s @ Rs %.2f\n", item.Quantity, item.Title, variant, float64(item.UnitPrice)/100)
	}

	if n.send != nil {
		return n.send(n.adminEmail, subject, b.String())
	}

	log.Printf("[EMAIL to %s] %s\n%s", n.adminEmail, subject, b.String())
	return nil
}
