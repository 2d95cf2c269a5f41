package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type listUsersArgs struct {
	CompanyID string `json:"company_id"`
	Skip      int    `json:"skip"`
	Limit     int    `json:"limit"`
}

type userArgs struct {
	CompanyID string `json:"company_id"`
	UserID    string `json:"user_id"`
}

func registerUserTools(s *server.MCPServer, h *Handler) {
	s.AddTool(mcp.NewTool("user_management_read_users",
		mcp.WithDescription("List user accounts for a company with pagination."),
		mcp.WithString("company_id", mcp.Required(), mcp.Description("Tenant company UUID")),
		mcp.WithNumber("skip", mcp.Description("Rows to skip, default 0")),
		mcp.WithNumber("limit", mcp.Description("Page size, default 100")),
	), h.readUsers)

	s.AddTool(mcp.NewTool("user_management_read_user",
		mcp.WithDescription("Fetch a single user account by id."),
		mcp.WithString("company_id", mcp.Required(), mcp.Description("Tenant company UUID")),
		mcp.WithString("user_id", mcp.Required(), mcp.Description("User UUID")),
	), h.readUser)
}

func (h *Handler) readUsers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args listUsersArgs
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
	users, err := h.users.GetUsers(companyID, args.Skip, args.Limit)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(users)
}

func (h *Handler) readUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args userArgs
	if err := req.BindArguments(&args); err != nil {
		return errResult(err)
	}
	companyID, userID, err := parseTenantPair(args.CompanyID, args.UserID)
	if err != nil {
		return errResult(err)
	}
	user, err := h.users.GetUser(companyID, userID)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(user)
}
