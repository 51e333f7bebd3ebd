package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/starford/gebo/internal/converter"
)

const requirementsCSV = `ie_puid,req_type,foreign_id,name,req_prefix,order
P-1,functional,1,Power on,SYS,1
P-2,interface,2,Serial link,SYS,2
`

const relationsCSV = `relation_type,source_ie_puid,target_ie_puid
satisfy,P-2,P-1
`

func testServer(t *testing.T) *Server {
	t.Helper()
	conv := converter.New(
		converter.WithCreationTime(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)),
	)
	return New(conv)
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	// mcp-go doesn't expose a direct "call tool" test helper, so we call
	// the handler functions directly.
	var result *mcp.CallToolResult
	var err error

	switch name {
	case "convert_requirements":
		result, err = srv.convertRequirements(ctx, req)
	case "validate_rows":
		result, err = srv.validateRows(ctx, req)
	case "get_column_contract":
		result, err = srv.getColumnContract(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestConvertInline(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "convert_requirements", map[string]interface{}{
		"requirements_csv": requirementsCSV,
		"relations_csv":    relationsCSV,
	})
	if r.IsError {
		t.Fatalf("convert failed: %s", resultText(r))
	}
	text := resultText(r)
	if !strings.Contains(text, "<REQ-IF ") {
		t.Errorf("result does not look like a ReqIF document: %.80s", text)
	}
	if !strings.Contains(text, `IDENTIFIER="SYS-001"`) {
		t.Error("synthesized identifier missing from document")
	}
}

func TestConvertToFile(t *testing.T) {
	srv := testServer(t)
	out := filepath.Join(t.TempDir(), "out.reqif")

	r := callTool(t, srv, "convert_requirements", map[string]interface{}{
		"requirements_csv": requirementsCSV,
		"output_path":      out,
	})
	if r.IsError {
		t.Fatalf("convert failed: %s", resultText(r))
	}
	text := resultText(r)
	if !strings.Contains(text, `"requirements": 2`) {
		t.Errorf("summary = %q", text)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "SPEC-OBJECTS") {
		t.Error("written file does not contain spec objects")
	}
}

func TestConvertInvalidRows(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "convert_requirements", map[string]interface{}{
		"requirements_csv": "ie_puid,req_type,foreign_id,name\nP-1,bogus,1,Power on\n",
	})
	if !r.IsError {
		t.Fatal("expected error for unknown req_type")
	}
	if !strings.Contains(resultText(r), "bogus") {
		t.Errorf("defect list does not name the bad value: %q", resultText(r))
	}
}

func TestValidateRows(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "validate_rows", map[string]interface{}{
		"requirements_csv": requirementsCSV,
		"relations_csv":    relationsCSV,
	})
	if r.IsError {
		t.Fatalf("validate failed: %s", resultText(r))
	}
	if got := resultText(r); got != "valid: 2 requirement row(s), 1 relation row(s)" {
		t.Errorf("validate result = %q", got)
	}

	r = callTool(t, srv, "validate_rows", map[string]interface{}{
		"requirements_csv": "ie_puid,req_type,foreign_id,name\nP-1,functional,1,Power on\n",
		"relations_csv":    "relation_type,source_ie_puid,target_ie_puid\nsatisfy,P-1,P-9\n",
	})
	if !r.IsError {
		t.Fatal("expected error for dangling relation target")
	}
}

func TestGetColumnContract(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "get_column_contract", map[string]interface{}{})
	if !strings.Contains(resultText(r), "ie_puid") {
		t.Error("contract does not mention ie_puid")
	}
}
