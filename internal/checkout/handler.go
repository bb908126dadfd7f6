package checkout

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/hidestyle/hidestyle-backend/internal/cart"
)

// Handler drives checkout for the cart held in the visitor's session.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/checkout", h.submit)
}

func (h *Handler) submit(c *fiber.Ctx) error {
	payload := new(Details)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	sid := c.Cookies(cart.SessionCookie)
	if sid == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": ErrEmptyCart.Error()})
	}

	result, err := h.service.Submit(sid, *payload)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation), errors.Is(err, ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case errors.Is(err, ErrSubmissionInFlight):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
		default:
			log.Printf("checkout for session %s failed: %v", sid, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to place order, please try again"})
		}
	}

	if result.RedirectURL != "" {
		return c.JSON(fiber.Map{"url": result.RedirectURL})
	}
	return c.JSON(fiber.Map{
		"orderId": result.Order.ID,
		"order":   result.Order,
	})
}
