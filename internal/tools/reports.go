package tools

import (
	"context"
	"fmt"
	"time"

	"go-inventory-billing/internal/render"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type salesReportArgs struct {
	CompanyID string `json:"company_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Format    string `json:"format"`
}

type thresholdReportArgs struct {
	CompanyID string `json:"company_id"`
	Limit     int    `json:"limit"`
	Format    string `json:"format"`
}

type revenueReportArgs struct {
	CompanyID string `json:"company_id"`
	Format    string `json:"format"`
}

func registerReportTools(s *server.MCPServer, h *Handler) {
	s.AddTool(mcp.NewTool("reports_get_sales_report",
		mcp.WithDescription("Orders placed within a date range. Dates are YYYY-MM-DD, end inclusive."),
		mcp.WithString("company_id", mcp.Required(), mcp.Description("Tenant company UUID")),
		mcp.WithString("start_date", mcp.Required(), mcp.Description("Range start, YYYY-MM-DD")),
		mcp.WithString("end_date", mcp.Required(), mcp.Description("Range end, YYYY-MM-DD")),
		mcp.WithString("format", mcp.Description("json or pdf, default json")),
	), h.salesReport)

	s.AddTool(mcp.NewTool("reports_get_low_stock_report",
		mcp.WithDescription("Products with stock strictly below a threshold."),
		mcp.WithString("company_id", mcp.Required(), mcp.Description("Tenant company UUID")),
		mcp.WithNumber("limit", mcp.Description("Stock threshold, default 10")),
		mcp.WithString("format", mcp.Description("json or pdf, default json")),
	), h.lowStockReport)

	s.AddTool(mcp.NewTool("reports_get_top_selling_report",
		mcp.WithDescription("Best selling products ranked by total quantity sold."),
		mcp.WithString("company_id", mcp.Required(), mcp.Description("Tenant company UUID")),
		mcp.WithNumber("limit", mcp.Description("Number of products, default 10")),
		mcp.WithString("format", mcp.Description("json or pdf, default json")),
	), h.topSellingReport)

	s.AddTool(mcp.NewTool("reports_get_total_revenue_report",
		mcp.WithDescription("Sum of total_price over every order of the company."),
		mcp.WithString("company_id", mcp.Required(), mcp.Description("Tenant company UUID")),
		mcp.WithString("format", mcp.Description("json or pdf, default json")),
	), h.totalRevenueReport)
}

func (h *Handler) salesReport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args salesReportArgs
	if err := req.BindArguments(&args); err != nil {
		return errResult(err)
	}
	companyID, ok := parseUUIDArg(args.CompanyID)
	if !ok {
		return mcp.NewToolResultError("invalid company_id"), nil
	}
	start, err := time.Parse("2006-01-02", args.StartDate)
	if err != nil {
		return mcp.NewToolResultError("invalid start_date, expected YYYY-MM-DD"), nil
	}
	end, err := time.Parse("2006-01-02", args.EndDate)
	if err != nil {
		return mcp.NewToolResultError("invalid end_date, expected YYYY-MM-DD"), nil
	}
	end = end.Add(24*time.Hour - time.Nanosecond)

	orders, err := h.reports.SalesByRange(companyID, start, end)
	if err != nil {
		return errResult(err)
	}
	if args.Format == "pdf" {
		return h.storedReport(companyID, "sales_report",
			"Sales Report",
			[]string{"order_id", "customer_id", "total_price", "date"},
			render.SalesRows(orders))
	}
	return jsonResult(orders)
}

func (h *Handler) lowStockReport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args thresholdReportArgs
	if err := req.BindArguments(&args); err != nil {
		return errResult(err)
	}
	companyID, ok := parseUUIDArg(args.CompanyID)
	if !ok {
		return mcp.NewToolResultError("invalid company_id"), nil
	}
	if args.Limit <= 0 {
		args.Limit = 10
	}
	products, err := h.reports.LowStock(companyID, args.Limit)
	if err != nil {
		return errResult(err)
	}
	if args.Format == "pdf" {
		return h.storedReport(companyID, "low_stock_report",
			"Low Stock Report",
			[]string{"product_id", "name", "stock"},
			render.LowStockRows(products))
	}
	return jsonResult(products)
}

func (h *Handler) topSellingReport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args thresholdReportArgs
	if err := req.BindArguments(&args); err != nil {
		return errResult(err)
	}
	companyID, ok := parseUUIDArg(args.CompanyID)
	if !ok {
		return mcp.NewToolResultError("invalid company_id"), nil
	}
	if args.Limit <= 0 {
		args.Limit = 10
	}
	entries, err := h.reports.TopSelling(companyID, args.Limit)
	if err != nil {
		return errResult(err)
	}
	if args.Format == "pdf" {
		return h.storedReport(companyID, "top_selling_report",
			"Top Selling Products",
			[]string{"product_id", "name", "total_quantity"},
			render.TopSellingRows(entries))
	}
	return jsonResult(entries)
}

func (h *Handler) totalRevenueReport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args revenueReportArgs
	if err := req.BindArguments(&args); err != nil {
		return errResult(err)
	}
	companyID, ok := parseUUIDArg(args.CompanyID)
	if !ok {
		return mcp.NewToolResultError("invalid company_id"), nil
	}
	total, err := h.reports.TotalRevenue(companyID)
	if err != nil {
		return errResult(err)
	}
	if args.Format == "pdf" {
		return h.storedReport(companyID, "total_revenue_report",
			"Total Revenue",
			[]string{"total_revenue"},
			[][]string{{fmt.Sprintf("%.2f", total)}})
	}
	return jsonResult(map[string]float64{"total_revenue": total})
}

// storedReport renders a table document, writes it under the company's report
// directory and answers with the stored path. Tool callers have no response
// body to stream into, so pdf-format reports come back as a file reference.
// The file extension follows the installed renderer, not the requested
// format name.
func (h *Handler) storedReport(companyID uuid.UUID, name, title string, headers []string, rows [][]string) (*mcp.CallToolResult, error) {
	doc, err := h.renderer.RenderTable(title, headers, rows)
	if err != nil {
		return errResult(err)
	}
	path := fmt.Sprintf("reports/%s/%s_%s.%s", companyID, name, time.Now().Format("20060102_150405"), h.renderer.Extension())
	stored, err := h.store.Save(path, doc)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(map[string]string{"report_path": stored})
}
