// Package server implements the MCP (Model Context Protocol) server that
// exposes the edge detection and metric tools.
//
// The server speaks JSON-RPC 2.0 over stdin/stdout, one message per line.
// Supported methods:
//
//   - initialize: protocol handshake, reports server capabilities
//   - notifications/initialized: client acknowledgment (no response)
//   - tools/list: returns the tool catalog with JSON schemas
//   - tools/call: executes a tool and returns its JSON result
//   - ping: liveness check
//
// # Tools
//
// The catalog covers image access (image_load, image_dimensions,
// image_crop) and edge analysis (edge_detect, edge_metrics,
// edge_compare). Edge tools accept Canny's three tunable parameters;
// Sobel and Prewitt take none.
//
// # Logging
//
// Diagnostics go to stderr through zerolog; stdout carries only protocol
// messages. Tool execution failures become JSON-RPC errors with code
// -32000, invalid parameters -32602, unknown methods -32601.
package server
