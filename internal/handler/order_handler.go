package handler

import (
	"go-inventory-billing/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	billingService service.BillingService
	orderService   service.OrderService
}

func NewOrderHandler(billingService service.BillingService, orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		billingService: billingService,
		orderService:   orderService,
	}
}

// CreateOrder commits the order atomically and attaches its invoice
// POST /api/v1/orders
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req service.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.billingService.CreateOrderWithInvoice(companyID(c), userID(c), &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(order)
}

func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	offset, limit := pagination(c)
	orders, err := h.orderService.GetOrders(companyID(c), offset, limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(orders)
}

func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	order, err := h.orderService.GetOrder(companyID(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(order)
}

// DeleteOrder is routed but deliberately unimplemented: whether deleting an
// order cascades or restocks inventory has never been decided.
func (h *OrderHandler) DeleteOrder(c *fiber.Ctx) error {
	return c.Status(501).JSON(fiber.Map{"error": "Order deletion is not supported"})
}
