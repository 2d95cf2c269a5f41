// Package tools exposes the business operations as remotely invocable MCP
// tools. Tools receive the tenant as an explicit company_id argument since
// there is no session context, and the same scoping rules apply: every call
// runs through the tenant-scoped services, and failures come back as tool
// error payloads rather than transport errors.
package tools

import (
	"encoding/json"
	"fmt"

	"go-inventory-billing/internal/render"
	"go-inventory-billing/internal/service"
	"go-inventory-billing/internal/storage"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type Handler struct {
	catalog   service.CatalogService
	customers service.CustomerService
	users     service.UserService
	orders    service.OrderService
	billing   service.BillingService
	reports   service.ReportService
	forecast  service.ForecastService
	renderer  render.DocumentRenderer
	store     storage.FileStore
}

func NewHandler(
	catalog service.CatalogService,
	customers service.CustomerService,
	users service.UserService,
	orders service.OrderService,
	billing service.BillingService,
	reports service.ReportService,
	forecast service.ForecastService,
	renderer render.DocumentRenderer,
	store storage.FileStore,
) *Handler {
	return &Handler{
		catalog:   catalog,
		customers: customers,
		users:     users,
		orders:    orders,
		billing:   billing,
		reports:   reports,
		forecast:  forecast,
		renderer:  renderer,
		store:     store,
	}
}

// NewServer builds the MCP server with every tool registered.
func NewServer(h *Handler) *server.MCPServer {
	s := server.NewMCPServer(
		"inventory-billing-tools",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	registerInventoryTools(s, h)
	registerCustomerTools(s, h)
	registerUserTools(s, h)
	registerOrderTools(s, h)
	registerBillingTools(s, h)
	registerReportTools(s, h)
	registerForecastTools(s, h)

	return s
}

// jsonResult marshals a response shape into a text tool result.
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// errResult reports a failure as an error payload, never a thrown error.
func errResult(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func parseUUIDArg(raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	return id, err == nil
}

func errInvalidID(field string) error {
	return fmt.Errorf("invalid %s: not a valid UUID", field)
}
