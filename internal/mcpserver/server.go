// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes Gebo conversion tools for LLM integration via stdio
// transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/gebo/internal/checksum"
	"github.com/starford/gebo/internal/converter"
	"github.com/starford/gebo/internal/rows"
	"github.com/starford/gebo/internal/sheet"
	"github.com/starford/gebo/internal/storage"
)

// Server wraps the MCP server with Gebo tools.
type Server struct {
	mcp  *server.MCPServer
	conv *converter.Converter
}

// New creates a new MCP server with all Gebo tools registered.
func New(conv *converter.Converter) *Server {
	s := &Server{conv: conv}

	s.mcp = server.NewMCPServer(
		"Gebo",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("convert_requirements",
		mcp.WithDescription("Convert CSV requirement and relation sheets into a ReqIF document. "+
			"Sheet content MUST follow the column contract. Read it first via the "+
			"get_column_contract tool or the gebo://column-format resource."),
		mcp.WithString("requirements_csv", mcp.Required(), mcp.Description("CSV content of the requirements sheet (header row plus data rows)")),
		mcp.WithString("relations_csv", mcp.Description("Optional CSV content of the relations sheet")),
		mcp.WithString("output_path", mcp.Description("Optional file path to write the document to; when omitted the XML is returned inline")),
	), s.convertRequirements)

	s.mcp.AddTool(mcp.NewTool("validate_rows",
		mcp.WithDescription("Validate CSV requirement and relation sheets without producing a document. "+
			"Returns the complete list of row defects, or confirms the input is valid."),
		mcp.WithString("requirements_csv", mcp.Required(), mcp.Description("CSV content of the requirements sheet")),
		mcp.WithString("relations_csv", mcp.Description("Optional CSV content of the relations sheet")),
	), s.validateRows)

	s.mcp.AddTool(mcp.NewTool("get_column_contract",
		mcp.WithDescription("Returns the canonical sheet column contract. "+
			"Call this before submitting CSV content to ensure correct structure."),
	), s.getColumnContract)

	// Resource: sheet column contract.
	s.mcp.AddResource(
		mcp.NewResource("gebo://column-format", "Sheet Column Contract",
			mcp.WithResourceDescription("Canonical CSV column layout that all submitted sheets must follow."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readColumnFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// readSheets parses the two CSV arguments of a tool call.
func readSheets(req mcp.CallToolRequest) (reqRows, relRows []rows.Row, err error) {
	reqCSV, err := req.RequireString("requirements_csv")
	if err != nil {
		return nil, nil, err
	}
	reqRows, err = sheet.Read(strings.NewReader(reqCSV))
	if err != nil {
		return nil, nil, fmt.Errorf("requirements sheet: %w", err)
	}

	if relCSV, rErr := req.RequireString("relations_csv"); rErr == nil && relCSV != "" {
		relRows, err = sheet.Read(strings.NewReader(relCSV))
		if err != nil {
			return nil, nil, fmt.Errorf("relations sheet: %w", err)
		}
	}
	return reqRows, relRows, nil
}

type convertSummary struct {
	Output       string `json:"output"`
	Requirements int    `json:"requirements"`
	Relations    int    `json:"relations"`
	SHA256       string `json:"sha256"`
}

func (s *Server) convertRequirements(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reqRows, relRows, err := readSheets(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.conv.Convert(reqRows, relRows)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	outPath := ""
	if v, pErr := req.RequireString("output_path"); pErr == nil {
		outPath = v
	}
	if outPath == "" {
		return mcp.NewToolResultText(string(result.XML)), nil
	}

	if err := storage.WriteArtifact(outPath, result.XML); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, _ := json.MarshalIndent(convertSummary{
		Output:       outPath,
		Requirements: result.Requirements,
		Relations:    result.Relations,
		SHA256:       checksum.Digest(result.XML),
	}, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) validateRows(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reqRows, relRows, err := readSheets(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.conv.Validate(reqRows, relRows); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("valid: %d requirement row(s), %d relation row(s)", len(reqRows), len(relRows))), nil
}

func (s *Server) getColumnContract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(ColumnContract), nil
}

func (s *Server) readColumnFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "gebo://column-format",
			MIMEType: "text/markdown",
			Text:     ColumnContract,
		},
	}, nil
}
