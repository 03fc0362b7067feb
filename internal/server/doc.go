// Package server implements the MCP (Model Context Protocol) server that
// exposes the circle counter as tools.
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
//   - image_load: Load an image and get its size, format and background color
//   - circles_count: Count red and black circles (optionally by_circles)
//   - circles_components: Per-component classification report
//
// # Image Caching
//
// Decoded pixel grids are cached by path for the lifetime of the server, so
// repeated calls on one image decode it once.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
package server
