package payment

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/hidestyle/hidestyle-backend/internal/cart"
)

// Handler exposes hosted-session creation for clients that drive the card
// flow themselves. The checkout orchestrator calls the client directly.
type Handler struct {
	client     SessionClient
	successURL string
	cancelURL  string
}

func NewHandler(client SessionClient, successURL, cancelURL string) *Handler {
	return &Handler{client: client, successURL: successURL, cancelURL: cancelURL}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/checkout/session", h.createSession)
}

type sessionRequestBody struct {
	Items []cart.LineItem `json:"items"`
	Email string          `json:"email"`
}

// LineItemsFromCart maps cart entries onto what the payment collaborator
// expects: one line per entry with the variant folded into the name.
func LineItemsFromCart(items []cart.LineItem) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, item := range items {
		name := item.Title
		if item.Size != "" {
			name += " (" + item.Size
			if item.Color != "" {
				name += ", " + item.Color
			}
			name += ")"
		} else if item.Color != "" {
			name += " (" + item.Color + ")"
		}
		out = append(out, LineItem{
			Name:     name,
			Amount:   item.UnitPrice,
			Quantity: item.Quantity,
			Image:    item.Image,
		})
	}
	return out
}

func (h *Handler) createSession(c *fiber.Ctx) error {
	payload := new(sessionRequestBody)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	session, err := h.client.CreateSession(SessionRequest{
		Items:         LineItemsFromCart(payload.Items),
		CustomerEmail: payload.Email,
		SuccessURL:    h.successURL,
		CancelURL:     h.cancelURL,
	})
	if err != nil {
		if err == ErrInvalidRequest {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cart is empty or email is invalid"})
		}
		log.Printf("payment session creation failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{"url": session.URL})
}
