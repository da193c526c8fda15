// Package registry implements the MCP server surface of statbank-mcp:
// local tool registration, JSON-RPC 2.0 dispatch, and the stdio, HTTP, and
// SSE transports.
//
// Registry holds a fixed set of locally executed tools. Dispatch handles
// the initialize, tools/list, and tools/call methods; everything else maps
// to a method-not-found error. Invalid caller arguments and upstream
// failures are reported through the JSON-RPC error object, so they
// short-circuit before any decoding work happens.
//
// Example usage:
//
//	reg := registry.New(registry.Config{
//	    ServerInfo: registry.ServerInfo{
//	        Name:    "statbank-mcp",
//	        Version: "1.0.0",
//	    },
//	})
//
//	reg.RegisterLocalFunc(
//	    "table_data",
//	    "Fetch and flatten a statistics table",
//	    map[string]any{
//	        "type": "object",
//	        "properties": map[string]any{
//	            "table_id": map[string]any{"type": "string"},
//	        },
//	        "required": []string{"table_id"},
//	    },
//	    handler,
//	)
//
//	registry.ServeStdio(ctx, reg)
package registry
