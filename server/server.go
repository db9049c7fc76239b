package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/gregorybarale/go-json-rpc/jsonrpc"
)

// Handler is the calling convention for registered methods. Params is
// the decoded value of the request's "params" key, nil when absent.
type Handler func(ctx context.Context, params any) (any, error)

// Option configures a Dispatcher at construction time.
type Option func(*Dispatcher)

// WithLogger replaces the default stderr logger.
func WithLogger(l jsonrpc.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithLenientMethods disables strict method handling: a request naming
// an unregistered method is silently dropped (info-logged) instead of
// answered with Method not found. See the package documentation for why
// this is a footgun.
func WithLenientMethods() Option {
	return func(d *Dispatcher) {
		d.strict = false
	}
}

// Dispatcher is a registry of method handlers plus the dispatch logic
// turning one payload into responses. Configuration is fixed at
// creation; registration may continue afterwards.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string]Handler

	strict bool
	logger jsonrpc.Logger
}

// NewDispatcher creates a Dispatcher with strict method handling and a
// stderr logger unless options say otherwise.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		handlers: make(map[string]Handler),
		strict:   true,
		logger:   jsonrpc.NewStderrLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Register adds a handler under the given method name. Names match
// exactly and case-sensitively. Registering a name twice panics.
func (d *Dispatcher) Register(name string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.handlers[name]; exists {
		panic("server: method name collision: " + name)
	}
	d.handlers[name] = h
}

// RegisterAll registers every entry of the map.
func (d *Dispatcher) RegisterAll(handlers map[string]Handler) {
	for name, h := range handlers {
		d.Register(name, h)
	}
}

func (d *Dispatcher) handler(name string) (Handler, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	h, ok := d.handlers[name]
	return h, ok
}

// DispatchRaw decodes a textual payload and dispatches it. A payload
// that is not valid JSON yields a Parse error response with a null id.
func (d *Dispatcher) DispatchRaw(ctx context.Context, data []byte) any {
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return jsonrpc.NewErrorResponse(nil, jsonrpc.NewParseError())
	}
	return d.dispatchDecoded(ctx, payload)
}

// Dispatch handles one payload. Textual payloads (string, []byte,
// json.RawMessage) go through JSON decoding first; anything else is
// treated as an already-decoded value. The return value is a
// *jsonrpc.SuccessResponse, a *jsonrpc.ErrorResponse, a []any of
// responses in input order, or nil when nothing is owed to the caller.
func (d *Dispatcher) Dispatch(ctx context.Context, payload any) any {
	switch raw := payload.(type) {
	case json.RawMessage:
		return d.DispatchRaw(ctx, raw)
	case []byte:
		return d.DispatchRaw(ctx, raw)
	case string:
		return d.DispatchRaw(ctx, []byte(raw))
	}
	return d.dispatchDecoded(ctx, payload)
}

func (d *Dispatcher) dispatchDecoded(ctx context.Context, payload any) any {
	batch, isBatch := payload.([]any)
	if !isBatch {
		if !validElement(payload) {
			return jsonrpc.NewErrorResponse(nil, jsonrpc.NewInvalidRequestError())
		}
		return d.processElement(ctx, payload)
	}

	if len(batch) == 0 {
		return jsonrpc.NewErrorResponse(nil, jsonrpc.NewInvalidRequestError())
	}
	// A batch is rejected atomically: one bad element invalidates the
	// whole payload before any handler runs.
	for _, element := range batch {
		if !validElement(element) {
			return jsonrpc.NewErrorResponse(nil, jsonrpc.NewInvalidRequestError())
		}
	}

	responses := make([]any, 0, len(batch))
	for _, element := range batch {
		if resp := d.processElement(ctx, element); resp != nil {
			responses = append(responses, resp)
		}
	}
	if len(responses) == 0 {
		// All notifications: the caller is owed nothing, not an empty array.
		return nil
	}
	return responses
}

func validElement(v any) bool {
	return jsonrpc.IsRequest(v) || jsonrpc.IsNotification(v)
}

// processElement handles one structurally valid request or notification
// and returns the response owed for it, or nil.
func (d *Dispatcher) processElement(ctx context.Context, element any) any {
	fields, _ := jsonrpc.Fields(element)
	method, _ := fields["method"].(string)
	id, isRequest := fields["id"]
	params := fields["params"]

	h, found := d.handler(method)
	if !found {
		switch {
		case !isRequest:
			d.logger.Info("server: notification for unknown method", "method", method)
			return nil
		case d.strict:
			return jsonrpc.NewErrorResponse(id, jsonrpc.NewMethodNotFoundError())
		default:
			d.logger.Info("server: dropping request for unknown method", "method", method)
			return nil
		}
	}

	result, err := invoke(ctx, h, params)
	if err == nil {
		if !isRequest {
			return nil
		}
		return jsonrpc.NewSuccessResponse(id, result)
	}

	if !isRequest {
		d.logger.Error("server: notification handler failed",
			"method", method, "error", err.Error())
		return nil
	}

	var rpcErr *jsonrpc.Error
	if errors.As(err, &rpcErr) {
		d.logger.Warn("server: handler returned error response",
			"method", method, "code", rpcErr.Code)
		return jsonrpc.NewErrorResponse(id, rpcErr)
	}

	// Generic fault: the detail stays in the log, the wire gets the
	// fixed Internal error shape.
	d.logger.Error("server: handler failed", "method", method, "error", err.Error())
	return jsonrpc.NewErrorResponse(id, jsonrpc.NewInternalError())
}

// invoke runs a handler with panic recovery so one misbehaving method
// cannot take down the rest of a batch.
func invoke(ctx context.Context, h Handler, params any) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return h(ctx, params)
}
