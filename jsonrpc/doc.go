// Package jsonrpc defines the JSON-RPC 2.0 message vocabulary: the five
// wire shapes, shape classification for arbitrary decoded values, and
// constructors for well-formed messages and error objects.
//
// This package implements the message layer of the JSON-RPC 2.0
// specification (https://www.jsonrpc.org/specification). It is
// transport-agnostic: nothing here reads or writes a socket. The client
// and server packages build on it for correlation and dispatch.
//
// # Message Shapes
//
// A decoded JSON value instantiates at most one of four shapes,
// distinguished purely by field presence (the wire carries no
// discriminator):
//
//   - Request: jsonrpc "2.0", string method, string-or-number id
//   - Notification: jsonrpc "2.0", string method, no id key at all
//   - SuccessResponse: jsonrpc "2.0", result key present, string-or-number id
//   - ErrorResponse: jsonrpc "2.0", error object, id string, number or null
//
// Classify tries each shape in that order and reports the matching Kind,
// or KindInvalid for anything else. The Is* predicates answer the same
// question shape-by-shape. All of them are total: they accept any value,
// including nil, scalars and arrays, and never panic.
//
// # Constructing Messages
//
// Constructors produce messages whose MarshalJSON emits exactly the
// field set of the shape. Optional values are variadic so that an
// omitted argument omits the wire key entirely, which is not the same
// thing as sending null:
//
//	jsonrpc.NewRequest("math.add", 1)                  // no "params" key
//	jsonrpc.NewRequest("math.add", 1, nil)             // "params": null
//	jsonrpc.NewRequest("math.add", 1, map[string]any{"a": 1, "b": 2})
//
// # Error Objects
//
// Error carries a JSON-RPC error object and implements the Go error
// interface, so server handlers signal application-defined failures by
// returning one:
//
//	return nil, jsonrpc.NewError(-32001, "insufficient funds")
//
// The five reserved protocol codes have fixed messages and dedicated
// constructors: NewParseError, NewInvalidRequestError,
// NewMethodNotFoundError, NewInvalidParamsError, NewInternalError.
//
// # Logging
//
// Logger is the diagnostic collaborator consumed by both the client
// correlator and the server dispatcher. NewLogger returns a structured
// implementation backed by zerolog; both packages default to one
// writing to stderr when no logger is configured.
package jsonrpc
