package tools

import (
	"fmt"
	"strings"

	"github.com/statbridge/statbank-mcp/registry"
)

// stringArg reads an optional string argument.
func stringArg(args map[string]any, key string) (string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", registry.ErrInvalidArguments, key)
	}
	return strings.TrimSpace(s), nil
}

// requiredStringArg reads a mandatory string argument.
func requiredStringArg(args map[string]any, key string) (string, error) {
	s, err := stringArg(args, key)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", fmt.Errorf("%w: %s is required", registry.ErrInvalidArguments, key)
	}
	return s, nil
}

// intArg reads an optional integer argument. JSON numbers arrive as
// float64 through the MCP layer.
func intArg(args map[string]any, key string, fallback int) (int, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return fallback, nil
	}
	switch n := raw.(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %s must be a number", registry.ErrInvalidArguments, key)
	}
}

// selectionArg reads the optional dimension selection: an object mapping a
// dimension code to either an array of category codes or a comma-separated
// string.
func selectionArg(args map[string]any, key string) (map[string][]string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, nil
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an object", registry.ErrInvalidArguments, key)
	}

	selection := make(map[string][]string, len(obj))
	for dim, val := range obj {
		switch v := val.(type) {
		case string:
			codes := splitCodes(v)
			if len(codes) > 0 {
				selection[dim] = codes
			}
		case []any:
			codes := make([]string, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("%w: %s.%s must contain strings", registry.ErrInvalidArguments, key, dim)
				}
				if s = strings.TrimSpace(s); s != "" {
					codes = append(codes, s)
				}
			}
			if len(codes) > 0 {
				selection[dim] = codes
			}
		default:
			return nil, fmt.Errorf("%w: %s.%s must be a string or an array of strings", registry.ErrInvalidArguments, key, dim)
		}
	}
	return selection, nil
}

func splitCodes(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
