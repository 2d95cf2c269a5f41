package tools

import (
	"context"

	"go-inventory-billing/internal/service"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type createCustomerArgs struct {
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	Contact   string `json:"contact"`
}

type listCustomersArgs struct {
	CompanyID string `json:"company_id"`
	Skip      int    `json:"skip"`
	Limit     int    `json:"limit"`
}

type customerArgs struct {
	CompanyID  string `json:"company_id"`
	CustomerID string `json:"customer_id"`
}

type updateCustomerArgs struct {
	CompanyID  string  `json:"company_id"`
	CustomerID string  `json:"customer_id"`
	Name       *string `json:"name,omitempty"`
	Contact    *string `json:"contact,omitempty"`
}

func registerCustomerTools(s *server.MCPServer, h *Handler) {
	s.AddTool(mcp.NewTool("customers_create_customer",
		mcp.WithDescription("Create a customer record for a company."),
		mcp.WithString("company_id", mcp.Required(), mcp.Description("Tenant company UUID")),
		mcp.WithString("name", mcp.Required(), mcp.Description("Customer name")),
		mcp.WithString("contact", mcp.Description("Contact details")),
	), h.createCustomer)

	s.AddTool(mcp.NewTool("customers_read_customers",
		mcp.WithDescription("List customers for a company with pagination."),
		mcp.WithString("company_id", mcp.Required(), mcp.Description("Tenant company UUID")),
		mcp.WithNumber("skip", mcp.Description("Rows to skip, default 0")),
		mcp.WithNumber("limit", mcp.Description("Page size, default 100")),
	), h.readCustomers)

	s.AddTool(mcp.NewTool("customers_read_customer",
		mcp.WithDescription("Fetch a single customer by id."),
		mcp.WithString("company_id", mcp.Required(), mcp.Description("Tenant company UUID")),
		mcp.WithString("customer_id", mcp.Required(), mcp.Description("Customer UUID")),
	), h.readCustomer)

	s.AddTool(mcp.NewTool("customers_update_customer",
		mcp.WithDescription("Partially update a customer; omitted fields are untouched."),
		mcp.WithString("company_id", mcp.Required(), mcp.Description("Tenant company UUID")),
		mcp.WithString("customer_id", mcp.Required(), mcp.Description("Customer UUID")),
		mcp.WithString("name", mcp.Description("New customer name")),
		mcp.WithString("contact", mcp.Description("New contact details")),
	), h.updateCustomer)

	s.AddTool(mcp.NewTool("customers_delete_customer",
		mcp.WithDescription("Delete a customer."),
		mcp.WithString("company_id", mcp.Required(), mcp.Description("Tenant company UUID")),
		mcp.WithString("customer_id", mcp.Required(), mcp.Description("Customer UUID")),
	), h.deleteCustomer)
}

func (h *Handler) createCustomer(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args createCustomerArgs
	if err := req.BindArguments(&args); err != nil {
		return errResult(err)
	}
	companyID, ok := parseUUIDArg(args.CompanyID)
	if !ok {
		return mcp.NewToolResultError("invalid company_id"), nil
	}
	customer, err := h.customers.CreateCustomer(companyID, &service.CreateCustomerRequest{
		Name:    args.Name,
		Contact: args.Contact,
	})
	if err != nil {
		return errResult(err)
	}
	return jsonResult(customer)
}

func (h *Handler) readCustomers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args listCustomersArgs
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
	customers, err := h.customers.GetCustomers(companyID, args.Skip, args.Limit)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(customers)
}

func (h *Handler) readCustomer(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args customerArgs
	if err := req.BindArguments(&args); err != nil {
		return errResult(err)
	}
	companyID, customerID, err := parseTenantPair(args.CompanyID, args.CustomerID)
	if err != nil {
		return errResult(err)
	}
	customer, err := h.customers.GetCustomer(companyID, customerID)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(customer)
}

func (h *Handler) updateCustomer(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args updateCustomerArgs
	if err := req.BindArguments(&args); err != nil {
		return errResult(err)
	}
	companyID, customerID, err := parseTenantPair(args.CompanyID, args.CustomerID)
	if err != nil {
		return errResult(err)
	}
	customer, err := h.customers.UpdateCustomer(companyID, customerID, &service.UpdateCustomerRequest{
		Name:    args.Name,
		Contact: args.Contact,
	})
	if err != nil {
		return errResult(err)
	}
	return jsonResult(customer)
}

func (h *Handler) deleteCustomer(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args customerArgs
	if err := req.BindArguments(&args); err != nil {
		return errResult(err)
	}
	companyID, customerID, err := parseTenantPair(args.CompanyID, args.CustomerID)
	if err != nil {
		return errResult(err)
	}
	if err := h.customers.DeleteCustomer(companyID, customerID); err != nil {
		return errResult(err)
	}
	return jsonResult(map[string]string{"detail": "Customer deleted"})
}
