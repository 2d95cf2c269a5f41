package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerForecastTools(s *server.MCPServer, h *Handler) {
	s.AddTool(mcp.NewTool("ai_tools_predict_stock",
		mcp.WithDescription("Forecast the stock a product will need over the next month from its sales history."),
		mcp.WithString("company_id", mcp.Required(), mcp.Description("Tenant company UUID")),
		mcp.WithString("product_id", mcp.Required(), mcp.Description("Product UUID")),
	), h.predictStock)
}

func (h *Handler) predictStock(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args productArgs
	if err := req.BindArguments(&args); err != nil {
		return errResult(err)
	}
	companyID, productID, err := parseTenantPair(args.CompanyID, args.ProductID)
	if err != nil {
		return errResult(err)
	}
	forecast, err := h.forecast.PredictStock(companyID, productID)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(forecast)
}
