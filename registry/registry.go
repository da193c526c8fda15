package registry

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/jonwraymond/toolfoundation/model"
)

// Config configures a Registry.
type Config struct {
	ServerInfo ServerInfo
	// Logger receives dispatch-level logging. Defaults to a no-op.
	Logger *zap.Logger
}

// ServerInfo describes this MCP server for the initialize response.
type ServerInfo struct {
	Name    string
	Version string
}

// localTool pairs a registered tool with its handler.
type localTool struct {
	tool    model.Tool
	handler ToolHandler
}

// Registry is an MCP server with a fixed set of locally executed tools.
// Tool listing order follows registration order.
type Registry struct {
	mu     sync.RWMutex
	config Config
	logger *zap.Logger

	order []string
	tools map[string]localTool
}

// New creates a new Registry with the given config.
func New(cfg Config) *Registry {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		config: cfg,
		logger: logger,
		tools:  make(map[string]localTool),
	}
}

// RegisterLocal registers a tool with a local execution handler. Tool
// names must be unique.
func (r *Registry) RegisterLocal(tool model.Tool, handler ToolHandler) error {
	if err := tool.Validate(); err != nil {
		return fmt.Errorf("invalid tool: %w", err)
	}
	if handler == nil {
		return fmt.Errorf("%w: nil handler for %s", ErrInvalidArguments, tool.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[tool.Name]; exists {
		return fmt.Errorf("%w: %s", ErrToolExists, tool.Name)
	}
	r.tools[tool.Name] = localTool{tool: tool, handler: handler}
	r.order = append(r.order, tool.Name)
	return nil
}

// RegisterLocalFunc is a convenience for inline tool definition.
func (r *Registry) RegisterLocalFunc(
	name, description string,
	inputSchema map[string]any,
	handler ToolHandler,
	opts ...LocalToolOption,
) error {
	cfg := applyLocalToolOptions(opts)
	tool := buildLocalTool(name, description, inputSchema, cfg)
	return r.RegisterLocal(tool, handler)
}

// Tools returns all registered tools in registration order.
func (r *Registry) Tools() []model.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name].tool)
	}
	return out
}

// Execute runs a tool by name with the given arguments.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (any, error) {
	r.mu.RLock()
	entry, ok := r.tools[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	r.logger.Debug("executing tool", zap.String("tool", name))
	result, err := entry.handler(ctx, args)
	if err != nil {
		r.logger.Warn("tool execution failed",
			zap.String("tool", name),
			zap.Error(err))
		return nil, err
	}
	return result, nil
}
