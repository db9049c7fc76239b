// Package server dispatches JSON-RPC 2.0 payloads to registered
// handlers and assembles conformant responses.
//
// A Dispatcher is stateless across payloads: each DispatchRaw or
// Dispatch turns one payload plus a context into exactly one of a
// single response, a batch of responses, or nil (for notifications).
// Dispatch is total: every failure at every stage becomes a response
// value, never a returned error or a panic.
//
// # Handlers
//
// Handlers are plain functions looked up by exact, case-sensitive
// method name (dot-containing names are fine):
//
//	d := server.NewDispatcher()
//	d.Register("math.add", func(ctx context.Context, params any) (any, error) {
//	    args := params.(map[string]any)
//	    return args["a"].(float64) + args["b"].(float64), nil
//	})
//
// Params arrive as the decoded JSON value of the "params" key, or nil
// when the key was absent. A handler signals an application-defined
// failure, including invalid params, by returning a *jsonrpc.Error;
// that exact error object goes back to the caller. Any other returned
// error, and any panic, collapses to the generic -32603 Internal error
// response: the original detail is written to the logger only and
// never leaks to the wire.
//
// # Batches
//
// An array payload is validated atomically: if any element is neither
// a request nor a notification, the whole batch is rejected with a
// single Invalid Request response, as is an empty array. Elements of a
// valid batch are processed sequentially in input order; responses
// preserve that order with notification slots dropped. A batch of only
// notifications yields nil, not an empty array.
//
// # Strict Method Handling
//
// By default a request naming an unregistered method is answered with
// Method not found. WithLenientMethods switches to dropping such
// requests with only an info log, mirroring how unknown-method
// notifications are always handled. Beware: under lenient handling a
// caller that typos a method name never gets a response at all, so a
// correlating client without a timeout will hang. Leave strict handling
// on unless every caller can tolerate silence.
package server
