package handler

import (
	"fmt"
	"strconv"
	"time"

	"go-inventory-billing/internal/render"
	"go-inventory-billing/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	reportService service.ReportService
	renderer      render.DocumentRenderer
}

func NewReportHandler(reportService service.ReportService, renderer render.DocumentRenderer) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		renderer:      renderer,
	}
}

func parseDateRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", c.Query("start_date"))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start_date, use YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", c.Query("end_date"))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end_date, use YYYY-MM-DD")
	}
	// end date is inclusive
	return start, end.Add(24*time.Hour - time.Nanosecond), nil
}

// respondTabular serves a report either as structured data, as csv, or as a
// rendered document via the collaborator. The aggregation behind it is the
// same in all three cases.
func (h *ReportHandler) respondTabular(c *fiber.Ctx, filename, title string, headers []string, rows [][]string, data interface{}) error {
	switch c.Query("format", "json") {
	case "csv":
		out, err := render.CSV(headers, rows)
		if err != nil {
			return fail(c, render.ErrRenderFailed)
		}
		c.Set("Content-Disposition", "attachment; filename="+filename+".csv")
		c.Set("Content-Type", "text/csv")
		return c.Send(out)
	case "pdf":
		out, err := h.renderer.RenderTable(title, headers, rows)
		if err != nil {
			return fail(c, render.ErrRenderFailed)
		}
		c.Set("Content-Disposition", "attachment; filename="+filename+"."+h.renderer.Extension())
		c.Set("Content-Type", h.renderer.ContentType())
		return c.Send(out)
	default:
		return c.JSON(data)
	}
}

// GET /api/v1/reports/sales?start_date=&end_date=&format=
func (h *ReportHandler) GetSalesReport(c *fiber.Ctx) error {
	start, end, err := parseDateRange(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	orders, err := h.reportService.SalesByRange(companyID(c), start, end)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return h.respondTabular(c, "sales_report", "Sales Report",
		[]string{"order_id", "customer_id", "total_price", "date"},
		render.SalesRows(orders), orders)
}

// GET /api/v1/reports/low-stock?limit=&format=
func (h *ReportHandler) GetLowStockReport(c *fiber.Ctx) error {
	threshold, _ := strconv.Atoi(c.Query("limit", "10"))
	if threshold <= 0 {
		threshold = 10
	}

	products, err := h.reportService.LowStock(companyID(c), threshold)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return h.respondTabular(c, "low_stock_report", "Low Stock Report",
		[]string{"product_id", "name", "stock"},
		render.LowStockRows(products), products)
}

// GET /api/v1/reports/top-selling?limit=&format=
func (h *ReportHandler) GetTopSellingReport(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if limit <= 0 {
		limit = 10
	}

	entries, err := h.reportService.TopSelling(companyID(c), limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return h.respondTabular(c, "top_selling_report", "Top Selling Products",
		[]string{"product_id", "name", "total_quantity"},
		render.TopSellingRows(entries), entries)
}

// GET /api/v1/reports/total-revenue?format=
func (h *ReportHandler) GetTotalRevenueReport(c *fiber.Ctx) error {
	total, err := h.reportService.TotalRevenue(companyID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return h.respondTabular(c, "total_revenue_report", "Total Revenue",
		[]string{"total_revenue"},
		[][]string{{fmt.Sprintf("%.2f", total)}},
		fiber.Map{"total_revenue": total})
}
