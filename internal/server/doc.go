// Package server implements the MCP (Model Context Protocol) server for Sobel
// gradient tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the Sobel engine
// and its imaging helpers through the MCP protocol, so MCP-compatible clients
// can ask for gradient magnitude, edge direction and gradient statistics of
// image files or raw pixel buffers.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Gradient Operations:
//   - image_sobel: Gradient magnitude PNG, optionally with per-pixel theta
//   - image_sobel_region: Same, for a rectangle or named region
//   - image_sobel_direction: Direction map, hue from theta and value from magnitude
//   - image_gradient_stats: Magnitude distribution and dominant direction
//
// Raw Buffers:
//   - sobel_apply_raw: Run the engine on a caller-supplied sample array
//
// sobel_apply_raw never fails on rejected input. It returns empty arrays and
// carries the engine's diagnostic in the warning field, the same message
// that is written to the server log.
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(server.WithParallel(true))
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
