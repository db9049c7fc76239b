// Package client correlates JSON-RPC 2.0 calls with their responses
// over an abstract transport.
//
// A Client owns a monotonically increasing id counter and a registry of
// pending calls. Call allocates the next id, sends a Request through
// the Transport and blocks until a response bearing that id is routed
// back, the transport fails, or the context is cancelled. Notify sends
// a fire-and-forget Notification.
//
// # Transport Contract
//
// The Transport is a single function:
//
//	func(ctx context.Context, payload any) (any, error)
//
// The payload is a *jsonrpc.Request or *jsonrpc.Notification. On
// success the transport returns one response or a []any of responses,
// in any form the jsonrpc package can classify: typed values for
// in-process transports, or generic decoded JSON (raw bytes are decoded
// here as a convenience). A transport failure must surface as a
// returned error, never as a malformed success value.
//
// Every returned response is routed by id. A matching success response
// resolves its call with the result field; a matching error response
// fails it with a *jsonrpc.Error; responses matching no pending call
// are dropped silently, which covers late duplicates and cross-talk on
// shared or internally batching transports.
//
//	c := client.New(transport)
//	result, err := c.Call(ctx, "math.add", map[string]any{"a": 1, "b": 2})
//	var rpcErr *jsonrpc.Error
//	if errors.As(err, &rpcErr) {
//	    // application-defined failure from the server
//	}
//
// # Timeouts
//
// The protocol defines no intrinsic timeout: a call whose response
// never arrives stays pending. Use the context to bound a Call;
// cancellation removes the pending entry and returns ctx.Err().
// External layers can also evict an entry directly with Cancel.
// Completion is idempotent, so a response racing a cancellation cannot
// settle the same call twice.
package client
