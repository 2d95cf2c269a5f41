package handler

import (
	"go-inventory-billing/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ForecastHandler struct {
	forecastService service.ForecastService
}

func NewForecastHandler(forecastService service.ForecastService) *ForecastHandler {
	return &ForecastHandler{forecastService: forecastService}
}

// PredictStock returns next month's forecasted quantity for a product
// GET /api/v1/ai/predict-stock/:product_id
func (h *ForecastHandler) PredictStock(c *fiber.Ctx) error {
	productID, err := parseID(c, "product_id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	forecast, err := h.forecastService.PredictStock(companyID(c), productID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(forecast)
}
