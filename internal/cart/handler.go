package cart

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SessionCookie carries the visitor's cart key. The cart is anonymous and
// client-scoped, so the cookie is the only identity it needs.
const SessionCookie = "cart_session"

// Handler exposes the cart over HTTP. Cart routes are public: a visitor
// does not sign in to shop.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart/items", h.addItem)
	app.Patch("/api/v1/cart/items", h.updateQuantity)
	app.Delete("/api/v1/cart/items", h.removeItem)
	app.Delete("/api/v1/cart", h.clearCart)
}

// SessionID returns the visitor's cart session key, minting one (and
// setting the cookie) when the request has none yet.
func SessionID(c *fiber.Ctx) string {
	if sid := c.Cookies(SessionCookie); sid != "" {
		return sid
	}
	sid := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    sid,
		Expires:  time.Now().Add(30 * 24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return sid
}

type cartResponse struct {
	Items     []LineItem `json:"items"`
	CartTotal int64      `json:"cartTotal"`
	CartCount int        `json:"cartCount"`
	Message   string     `json:"message,omitempty"`
}

func newCartResponse(c Cart, message string) cartResponse {
	items := c.Items
	if items == nil {
		items = []LineItem{}
	}
	return cartResponse{Items: items, CartTotal: c.Total(), CartCount: c.Count(), Message: message}
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	sid := c.Cookies(SessionCookie)
	if sid == "" {
		// no session yet means no cart; do not mint a cookie on a read
		return c.JSON(newCartResponse(Cart{}, ""))
	}

	cart, err := h.service.Get(sid)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(newCartResponse(cart, ""))
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(LineItem)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	sid := SessionID(c)
	cart, err := h.service.AddItem(sid, *payload)
	if err != nil {
		switch err {
		case ErrInvalidItem:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.JSON(newCartResponse(cart, payload.Title+" added to your cart"))
}

type updateQuantityRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

func (h *Handler) updateQuantity(c *fiber.Ctx) error {
	payload := new(updateQuantityRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "productId is required"})
	}

	sid := SessionID(c)
	cart, err := h.service.UpdateQuantity(sid, payload.ProductID, payload.Quantity, payload.Size, payload.Color)
	if err != nil {
		switch err {
		case ErrInvalidQuantity:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.JSON(newCartResponse(cart, ""))
}

type removeItemRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	payload := new(removeItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "productId is required"})
	}

	sid := SessionID(c)
	cart, err := h.service.RemoveItem(sid, payload.ProductID, payload.Size, payload.Color)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(newCartResponse(cart, ""))
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	sid := c.Cookies(SessionCookie)
	if sid == "" {
		return c.SendStatus(fiber.StatusNoContent)
	}
	if err := h.service.Clear(sid); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
