package google_tools

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/dayplan/internal/server"
)

func newTestServerContext(t *testing.T) *server.ServerContext {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	sc, err := server.NewServerContext(context.Background(), false)
	if err != nil {
		t.Fatalf("failed to create server context: %v", err)
	}
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func callRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil || len(result.Content) == 0 {
		t.Fatal("expected result content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("expected text content")
	}
	return text.Text
}

func TestRegisterGoogleTools(t *testing.T) {
	sc := newTestServerContext(t)
	s := mcpserver.NewMCPServer("test-server", "0.0.0")

	if err := RegisterGoogleTools(s, sc); err != nil {
		t.Fatalf("RegisterGoogleTools() error: %v", err)
	}
}

func TestHandleGetAuthURL(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := handleGetAuthURL(context.Background(), callRequest("google_get_auth_url", map[string]interface{}{
		"account": "work",
	}), sc)
	if err != nil {
		t.Fatalf("handleGetAuthURL() error: %v", err)
	}

	text := resultText(t, result)
	if !strings.Contains(text, `account "work"`) {
		t.Errorf("expected account name in output, got: %s", text)
	}
	if !strings.Contains(text, "google_save_auth_code") {
		t.Errorf("expected follow-up tool reference in output, got: %s", text)
	}
}

func TestHandleGetAuthURLInvalidAccount(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := handleGetAuthURL(context.Background(), callRequest("google_get_auth_url", map[string]interface{}{
		"account": "../etc/passwd",
	}), sc)
	if err != nil {
		t.Fatalf("handleGetAuthURL() error: %v", err)
	}
	if !result.IsError {
		t.Error("expected error result for invalid account name")
	}
}

func TestHandleSaveAuthCodeMissingCode(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := handleSaveAuthCode(context.Background(), callRequest("google_save_auth_code", map[string]interface{}{}), sc)
	if err != nil {
		t.Fatalf("handleSaveAuthCode() error: %v", err)
	}
	if !result.IsError {
		t.Error("expected error result when authCode is missing")
	}
}
