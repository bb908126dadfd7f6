package order

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes order ingestion publicly and the dashboard endpoints
// behind the admin JWT.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/orders", h.createOrder)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/admin/orders", h.listOrders)
	app.Get("/api/v1/admin/orders/:orderId", h.getOrder)
	app.Put("/api/v1/admin/orders", h.updateStatus)
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	payload := new(Submission)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.Create(*payload)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		log.Printf("order creation failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to create order"})
	}

	return c.Status(fiber.StatusOK).JSON(created)
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 15)
	if limit < 1 {
		limit = 15
	}

	orders, total, err := h.service.List(limit, (page-1)*limit)
	if err != nil {
		log.Printf("listing orders failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "unable to fetch orders"})
	}

	totalPages := (total + limit - 1) / limit
	return c.JSON(fiber.Map{
		"orders": orders,
		"metadata": fiber.Map{
			"total":       total,
			"currentPage": page,
			"limit":       limit,
			"hasPrevPage": page > 1,
			"hasNextPage": page < totalPages,
		},
	})
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	ord, err := h.service.GetByID(c.Params("orderId"))
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(ord)
}

type updateStatusRequest struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	payload := new(updateStatusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.OrderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "orderId is required"})
	}

	ord, err := h.service.UpdateStatus(payload.OrderID, payload.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case err == ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(ord)
}
