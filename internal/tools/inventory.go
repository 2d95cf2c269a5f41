package tools

import (
	"context"
	"encoding/base64"

	"go-inventory-billing/internal/service"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type createProductArgs struct {
	CompanyID string  `json:"company_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
}

type listProductsArgs struct {
	CompanyID string `json:"company_id"`
	Skip      int    `json:"skip"`
	Limit     int    `json:"limit"`
}

type productArgs struct {
	CompanyID string `json:"company_id"`
	ProductID string `json:"product_id"`
}

type updateProductArgs struct {
	CompanyID string   `json:"company_id"`
	ProductID string   `json:"product_id"`
	Name      *string  `json:"name,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	Stock     *int     `json:"stock,omitempty"`
}

type uploadImageArgs struct {
	CompanyID   string `json:"company_id"`
	ProductID   string `json:"product_id"`
	Filename    string `json:"filename"`
	ImageBase64 string `json:"image_base64"`
}

func registerInventoryTools(s *server.MCPServer, h *Handler) {
	s.AddTool(mcp.NewTool("inventory_create_product",
		mcp.WithDescription("Create a product in the company catalog."),
		mcp.WithString("company_id", mcp.Required(), mcp.Description("Tenant company UUID")),
		mcp.WithString("name", mcp.Required(), mcp.Description("Product name")),
		mcp.WithNumber("price", mcp.Required(), mcp.Description("Unit price")),
		mcp.WithNumber("stock", mcp.Required(), mcp.Description("Initial stock level")),
	), h.createProduct)

	s.AddTool(mcp.NewTool("inventory_read_products",
		mcp.WithDescription("List products for a company with pagination."),
		mcp.WithString("company_id", mcp.Required(), mcp.Description("Tenant company UUID")),
		mcp.WithNumber("skip", mcp.Description("Rows to skip, default 0")),
		mcp.WithNumber("limit", mcp.Description("Page size, default 100")),
	), h.readProducts)

	s.AddTool(mcp.NewTool("inventory_read_product",
		mcp.WithDescription("Fetch a single product by id."),
		mcp.WithString("company_id", mcp.Required(), mcp.Description("Tenant company UUID")),
		mcp.WithString("product_id", mcp.Required(), mcp.Description("Product UUID")),
	), h.readProduct)

	s.AddTool(mcp.NewTool("inventory_update_product",
		mcp.WithDescription("Partially update a product; omitted fields are untouched."),
		mcp.WithString("company_id", mcp.Required(), mcp.Description("Tenant company UUID")),
		mcp.WithString("product_id", mcp.Required(), mcp.Description("Product UUID")),
		mcp.WithString("name", mcp.Description("New product name")),
		mcp.WithNumber("price", mcp.Description("New unit price")),
		mcp.WithNumber("stock", mcp.Description("New stock level")),
	), h.updateProduct)

	s.AddTool(mcp.NewTool("inventory_delete_product",
		mcp.WithDescription("Delete a product."),
		mcp.WithString("company_id", mcp.Required(), mcp.Description("Tenant company UUID")),
		mcp.WithString("product_id", mcp.Required(), mcp.Description("Product UUID")),
	), h.deleteProduct)

	s.AddTool(mcp.NewTool("inventory_upload_product_image",
		mcp.WithDescription("Attach a base64-encoded image to a product."),
		mcp.WithString("company_id", mcp.Required(), mcp.Description("Tenant company UUID")),
		mcp.WithString("product_id", mcp.Required(), mcp.Description("Product UUID")),
		mcp.WithString("filename", mcp.Required(), mcp.Description("Original file name")),
		mcp.WithString("image_base64", mcp.Required(), mcp.Description("Image bytes, base64 encoded")),
	), h.uploadProductImage)
}

func (h *Handler) createProduct(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args createProductArgs
	if err := req.BindArguments(&args); err != nil {
		return errResult(err)
	}
	companyID, ok := parseUUIDArg(args.CompanyID)
	if !ok {
		return mcp.NewToolResultError("invalid company_id"), nil
	}
	product, err := h.catalog.CreateProduct(companyID, &service.CreateProductRequest{
		Name:  args.Name,
		Price: args.Price,
		Stock: args.Stock,
	})
	if err != nil {
		return errResult(err)
	}
	return jsonResult(product)
}

func (h *Handler) readProducts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args listProductsArgs
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
	products, err := h.catalog.GetProducts(companyID, args.Skip, args.Limit)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(products)
}

func (h *Handler) readProduct(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args productArgs
	if err := req.BindArguments(&args); err != nil {
		return errResult(err)
	}
	companyID, productID, err := parseTenantPair(args.CompanyID, args.ProductID)
	if err != nil {
		return errResult(err)
	}
	product, err := h.catalog.GetProduct(companyID, productID)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(product)
}

func (h *Handler) updateProduct(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args updateProductArgs
	if err := req.BindArguments(&args); err != nil {
		return errResult(err)
	}
	companyID, productID, err := parseTenantPair(args.CompanyID, args.ProductID)
	if err != nil {
		return errResult(err)
	}
	product, err := h.catalog.UpdateProduct(companyID, productID, &service.UpdateProductRequest{
		Name:  args.Name,
		Price: args.Price,
		Stock: args.Stock,
	})
	if err != nil {
		return errResult(err)
	}
	return jsonResult(product)
}

func (h *Handler) deleteProduct(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args productArgs
	if err := req.BindArguments(&args); err != nil {
		return errResult(err)
	}
	companyID, productID, err := parseTenantPair(args.CompanyID, args.ProductID)
	if err != nil {
		return errResult(err)
	}
	if err := h.catalog.DeleteProduct(companyID, productID); err != nil {
		return errResult(err)
	}
	return jsonResult(map[string]string{"detail": "Product deleted"})
}

func (h *Handler) uploadProductImage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args uploadImageArgs
	if err := req.BindArguments(&args); err != nil {
		return errResult(err)
	}
	companyID, productID, err := parseTenantPair(args.CompanyID, args.ProductID)
	if err != nil {
		return errResult(err)
	}
	data, err := base64.StdEncoding.DecodeString(args.ImageBase64)
	if err != nil {
		return mcp.NewToolResultError("invalid image_base64"), nil
	}
	product, err := h.catalog.AttachImage(companyID, productID, args.Filename, data)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(product)
}

// parseTenantPair parses the tenant id and a record id together so every
// handler rejects malformed ids the same way.
func parseTenantPair(company, record string) (uuid.UUID, uuid.UUID, error) {
	companyID, err := uuid.Parse(company)
	if err != nil {
		return uuid.Nil, uuid.Nil, errInvalidID("company_id")
	}
	recordID, err := uuid.Parse(record)
	if err != nil {
		return uuid.Nil, uuid.Nil, errInvalidID("id")
	}
	return companyID, recordID, nil
}
