package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/adapters/outbound/config"
	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/adapters/outbound/scanner"
	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/application"
	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/domain"
)

// registerTools registers the oramigrate MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	s.AddTool(
		mcplib.NewTool("oramigrate_analyze_sql",
			mcplib.WithDescription("Score one Oracle SQL query's migration complexity for a target dialect and return the full result as JSON"),
			mcplib.WithString("sql",
				mcplib.Required(),
				mcplib.Description("The SQL query text to analyze"),
			),
			mcplib.WithString("target",
				mcplib.Description("Target dialect: postgresql (default) or mysql"),
			),
		),
		handleAnalyzeSQL(),
	)

	s.AddTool(
		mcplib.NewTool("oramigrate_analyze_plsql",
			mcplib.WithDescription("Score one Oracle PL/SQL program unit's migration complexity for a target dialect and return the full result as JSON"),
			mcplib.WithString("source",
				mcplib.Required(),
				mcplib.Description("The PL/SQL source text to analyze"),
			),
			mcplib.WithString("target",
				mcplib.Description("Target dialect: postgresql (default) or mysql"),
			),
		),
		handleAnalyzePLSQL(),
	)

	s.AddTool(
		mcplib.NewTool("oramigrate_analyze_project",
			mcplib.WithDescription("Score every Oracle source file under the project directory and return the batch roll-up as JSON"),
			mcplib.WithString("target",
				mcplib.Description("Target dialect: postgresql (default) or mysql"),
			),
		),
		handleAnalyzeProject(projectPath),
	)
}

// dialectArg resolves the optional target argument, defaulting to PostgreSQL.
func dialectArg(request mcplib.CallToolRequest) (domain.TargetDialect, error) {
	s := request.GetString("target", string(domain.PostgreSQL))
	d := domain.TargetDialect(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown target dialect %q (want postgresql or mysql)", s)
	}
	return d, nil
}

func handleAnalyzeSQL() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		text, err := request.RequireString("sql")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		target, err := dialectArg(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		res, err := application.NewAnalyzer().AnalyzeSQL(text, target)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}
		return jsonResult(res)
	}
}

func handleAnalyzePLSQL() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		text, err := request.RequireString("source")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		target, err := dialectArg(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		res, err := application.NewAnalyzer().AnalyzePLSQL(text, target)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}
		return jsonResult(res)
	}
}

func handleAnalyzeProject(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		target, err := dialectArg(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		svc := application.NewAnalyzeService(scanner.New())
		batch, err := svc.AnalyzeProject(ctx, projectPath, target, cfg.ExcludePaths...)
		if err != nil {
			return errorResult(fmt.Sprintf("batch analysis failed: %v", err)), nil
		}
		return jsonResult(batch)
	}
}

// jsonResult marshals v as an indented JSON text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a text result flagged as an error.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
