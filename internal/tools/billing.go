package tools

import (
	"context"

	"go-inventory-billing/internal/service"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type orderLineArgs struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type createOrderArgs struct {
	CompanyID  string          `json:"company_id"`
	UserID     string          `json:"user_id"`
	CustomerID string          `json:"customer_id"`
	Items      []orderLineArgs `json:"items"`
}

func registerBillingTools(s *server.MCPServer, h *Handler) {
	s.AddTool(mcp.NewTool("billing_create_order_and_invoice",
		mcp.WithDescription("Create an order, decrement stock atomically and render its invoice."),
		mcp.WithString("company_id", mcp.Required(), mcp.Description("Tenant company UUID")),
		mcp.WithString("user_id", mcp.Required(), mcp.Description("Acting user UUID")),
		mcp.WithString("customer_id", mcp.Required(), mcp.Description("Customer UUID")),
		mcp.WithArray("items", mcp.Required(), mcp.Description("Order lines"),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"product_id": map[string]any{"type": "string", "description": "Product UUID"},
					"quantity":   map[string]any{"type": "integer", "description": "Units ordered"},
				},
				"required": []any{"product_id", "quantity"},
			}),
		),
	), h.createOrderAndInvoice)
}

func (h *Handler) createOrderAndInvoice(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args createOrderArgs
	if err := req.BindArguments(&args); err != nil {
		return errResult(err)
	}
	companyID, userID, err := parseTenantPair(args.CompanyID, args.UserID)
	if err != nil {
		return errResult(err)
	}
	customerID, ok := parseUUIDArg(args.CustomerID)
	if !ok {
		return mcp.NewToolResultError("invalid customer_id"), nil
	}

	orderReq := &service.CreateOrderRequest{CustomerID: customerID}
	for _, line := range args.Items {
		productID, ok := parseUUIDArg(line.ProductID)
		if !ok {
			return mcp.NewToolResultError("invalid product_id"), nil
		}
		orderReq.Items = append(orderReq.Items, service.OrderLineRequest{
			ProductID: productID,
			Quantity:  line.Quantity,
		})
	}

	order, err := h.billing.CreateOrderWithInvoice(companyID, userID, orderReq)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(order)
}
