package category

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/categories", h.listCategories)
	app.Get("/api/v1/categories/:categoryId", h.getCategory)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/categories", h.createCategory)
	app.Put("/api/v1/categories/:categoryId", h.updateCategory)
	app.Delete("/api/v1/categories/:categoryId", h.deleteCategory)
	app.Post("/api/v1/subcategories", h.createSubcategory)
	app.Delete("/api/v1/subcategories/:subcategoryId", h.deleteSubcategory)
}

type categoryPayload struct {
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	CategoryID string `json:"categoryId"`
}

func (h *Handler) listCategories(c *fiber.Ctx) error {
	categories, err := h.service.List()
	if err != nil {
		log.Printf("listing categories failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to fetch categories"})
	}
	return c.JSON(categories)
}

func (h *Handler) getCategory(c *fiber.Ctx) error {
	cat, err := h.service.GetByID(c.Params("categoryId"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "category not found"})
		}
		log.Printf("fetching category failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to fetch category"})
	}
	return c.JSON(cat)
}

func (h *Handler) createCategory(c *fiber.Ctx) error {
	payload := new(categoryPayload)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.Create(payload.Name, payload.Slug)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		log.Printf("creating category failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to create category"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateCategory(c *fiber.Ctx) error {
	payload := new(categoryPayload)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.Update(c.Params("categoryId"), payload.Name, payload.Slug)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case errors.Is(err, ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "category not found"})
		default:
			log.Printf("updating category failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to update category"})
		}
	}
	return c.JSON(updated)
}

func (h *Handler) deleteCategory(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("categoryId")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "category not found"})
		}
		log.Printf("deleting category failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to delete category"})
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *Handler) createSubcategory(c *fiber.Ctx) error {
	payload := new(categoryPayload)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.CreateSubcategory(payload.CategoryID, payload.Name, payload.Slug)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case errors.Is(err, ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "category not found"})
		default:
			log.Printf("creating subcategory failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to create subcategory"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) deleteSubcategory(c *fiber.Ctx) error {
	if err := h.service.DeleteSubcategory(c.Params("subcategoryId")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "subcategory not found"})
		}
		log.Printf("deleting subcategory failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to delete subcategory"})
	}
	return c.JSON(fiber.Map{"success": true})
}
