package mcp

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/pcbuild/internal/build"
	"github.com/hpungsan/pcbuild/internal/errors"
	"github.com/hpungsan/pcbuild/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers. Every handler runs
// with mu held so the session sees one event at a time.
type Handlers struct {
	mu   sync.Mutex
	sess *ops.Session
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(sess *ops.Session) *Handlers {
	return &Handlers{sess: sess}
}

// CatalogListRequest represents the arguments for catalog_list.
type CatalogListRequest struct {
	Category string `json:"category,omitempty"`
}

// SelectRequest represents the arguments for build_select.
type SelectRequest struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Price    *int   `json:"price,omitempty"`
}

// LoadResult is returned by build_load.
type LoadResult struct {
	Loaded bool            `json:"loaded"`
	Build  *ops.LoadOutput `json:"build,omitempty"`
}

// ShareTextResult is returned by build_share_text.
type ShareTextResult struct {
	Empty bool   `json:"empty"`
	Text  string `json:"text"`
}

// HandleCatalogList handles the catalog_list tool.
func (h *Handlers) HandleCatalogList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CatalogListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	result, err := h.sess.ListCatalog(input.Category)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleSelect handles the build_select tool.
func (h *Handlers) HandleSelect(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SelectRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	var result *ops.SelectOutput
	if input.Price != nil {
		result, err = h.sess.SelectCustom(input.Category, input.Name, *input.Price)
	} else {
		result, err = h.sess.Select(input.Category, input.Name)
	}
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleSummary handles the build_summary tool.
func (h *Handlers) HandleSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return successResult(h.sess.Summary())
}

// HandleCheck handles the build_check tool.
func (h *Handlers) HandleCheck(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return successResult(h.sess.Check())
}

// HandleSave handles the build_save tool.
func (h *Handlers) HandleSave(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return successResult(h.sess.Save(ctx))
}

// HandleLoad handles the build_load tool.
func (h *Handlers) HandleLoad(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	out, ok := h.sess.Load(ctx)
	return successResult(LoadResult{Loaded: ok, Build: out})
}

// HandleShareText handles the build_share_text tool.
func (h *Handlers) HandleShareText(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	st := h.sess.State()
	if st.IsEmpty() {
		return successResult(ShareTextResult{Empty: true, Text: ops.MsgEmptyBuild})
	}
	return successResult(ShareTextResult{Text: build.ShareText(st)})
}

// HandleReset handles the build_reset tool.
func (h *Handlers) HandleReset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.sess.Reset()
	return successResult(h.sess.Summary())
}

// errorResult creates an MCP error result from an error.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if bErr, ok := errors.As(err); ok {
		errorObj := map[string]any{
			"code":    bErr.Code,
			"message": bErr.Message,
			"status":  bErr.Status,
		}
		// Only include details for client errors to avoid leaking
		// sensitive info like file paths or SQL errors
		if bErr.Status < 500 && bErr.Details != nil {
			errorObj["details"] = bErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
