package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type listOrdersArgs struct {
	CompanyID string `json:"company_id"`
	Skip      int    `json:"skip"`
	Limit     int    `json:"limit"`
}

type orderArgs struct {
	CompanyID string `json:"company_id"`
	OrderID   string `json:"order_id"`
}

func registerOrderTools(s *server.MCPServer, h *Handler) {
	s.AddTool(mcp.NewTool("orders_read_orders",
		mcp.WithDescription("List orders for a company with pagination."),
		mcp.WithString("company_id", mcp.Required(), mcp.Description("Tenant company UUID")),
		mcp.WithNumber("skip", mcp.Description("Rows to skip, default 0")),
		mcp.WithNumber("limit", mcp.Description("Page size, default 100")),
	), h.readOrders)

	s.AddTool(mcp.NewTool("orders_read_order",
		mcp.WithDescription("Fetch a single order with its line items."),
		mcp.WithString("company_id", mcp.Required(), mcp.Description("Tenant company UUID")),
		mcp.WithString("order_id", mcp.Required(), mcp.Description("Order UUID")),
	), h.readOrder)
}

func (h *Handler) readOrders(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args listOrdersArgs
	if err := req.BindArguments(&args); err != nil {
		return errResult(err)
	}
	companyID, ok := parseUUIDArg(args.CompanyID)
	if !ok {
		return mcp.NewToolResultError("invalid company_id"), nil
	}
	if args.Limit <= 0 {
		args.Limit = 100
	}
	orders, err := h.orders.GetOrders(companyID, args.Skip, args.Limit)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(orders)
}

func (h *Handler) readOrder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args orderArgs
	if err := req.BindArguments(&args); err != nil {
		return errResult(err)
	}
	companyID, orderID, err := parseTenantPair(args.CompanyID, args.OrderID)
	if err != nil {
		return errResult(err)
	}
	order, err := h.orders.GetOrder(companyID, orderID)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(order)
}
