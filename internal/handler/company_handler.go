package handler

import (
	"go-inventory-billing/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CompanyHandler struct {
	companyService service.CompanyService
}

func NewCompanyHandler(companyService service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// CreateCompany registers a new tenant. Company creation is administrative
// and happens before any user of that tenant can exist.
// POST /api/v1/companies
func (h *CompanyHandler) CreateCompany(c *fiber.Ctx) error {
	var req service.CreateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	company, err := h.companyService.CreateCompany(&req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(company)
}

func (h *CompanyHandler) GetCompanies(c *fiber.Ctx) error {
	offset, limit := pagination(c)
	companies, err := h.companyService.GetCompanies(offset, limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(companies)
}

func (h *CompanyHandler) GetCompany(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid company ID"})
	}

	company, err := h.companyService.GetCompany(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(company)
}
