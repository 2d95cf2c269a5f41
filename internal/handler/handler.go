package handler

import (
	"errors"
	"strconv"

	"go-inventory-billing/internal/middleware"
	"go-inventory-billing/internal/render"
	"go-inventory-billing/internal/repository"
	"go-inventory-billing/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Helpers shared by all handlers.

func companyID(c *fiber.Ctx) uuid.UUID {
	if id, ok := c.Locals(middleware.LocalCompanyID).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

func userID(c *fiber.Ctx) uuid.UUID {
	if id, ok := c.Locals(middleware.LocalUserID).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

func parseID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

func pagination(c *fiber.Ctx) (offset, limit int) {
	offset, _ = strconv.Atoi(c.Query("skip", "0"))
	limit, _ = strconv.Atoi(c.Query("limit", "100"))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	return offset, limit
}

// fail maps service errors onto HTTP statuses. Cross-tenant access reports
// as plain not-found; callers never learn whether the row exists elsewhere.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Not found"})
	case errors.Is(err, service.ErrNoHistory):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, render.ErrRenderFailed):
		return c.Status(502).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrUsernameExists),
		errors.Is(err, service.ErrEmailExists),
		errors.Is(err, service.ErrCompanyExists):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
}
