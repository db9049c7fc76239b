package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gregorybarale/go-json-rpc/jsonrpc"
)

// Transport delivers one outgoing payload and returns whatever the far
// side answered. See the package documentation for the full contract.
type Transport func(ctx context.Context, payload any) (any, error)

// Option configures a Client at construction time.
type Option func(*Client)

// WithLogger replaces the default stderr logger.
func WithLogger(l jsonrpc.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// Client issues requests over a Transport and routes responses back to
// their callers by id. Ids are unique per Client instance only; they
// start at 1 and do not survive restarts.
type Client struct {
	transport Transport
	logger    jsonrpc.Logger

	lastID atomic.Int64

	mu      sync.Mutex
	pending map[string]chan settled
}

type settled struct {
	result any
	err    error
}

// New creates a Client around the given transport.
func New(transport Transport, opts ...Option) *Client {
	c := &Client{
		transport: transport,
		logger:    jsonrpc.NewStderrLogger(),
		pending:   make(map[string]chan settled),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Call sends a Request and blocks until its response arrives, the
// transport fails, or ctx is done. On a success response it returns the
// result field; on an error response it returns a *jsonrpc.Error; a
// transport failure is returned verbatim.
func (c *Client) Call(ctx context.Context, method string, params ...any) (any, error) {
	if c.transport == nil {
		return nil, errors.New("client: no transport configured")
	}

	id := c.lastID.Add(1)
	key := idKey(id)
	done := make(chan settled, 1)

	c.mu.Lock()
	c.pending[key] = done
	c.mu.Unlock()

	reply, err := c.transport(ctx, jsonrpc.NewRequest(method, id, params...))
	if err != nil {
		// The transport call that carried this request failed; its own
		// entry settles, anything already routed stays settled.
		c.settle(key, settled{err: err})
	} else {
		c.route(reply)
	}

	select {
	case s := <-done:
		return s.result, s.err
	case <-ctx.Done():
		c.Cancel(id)
		return nil, ctx.Err()
	}
}

// Notify sends a fire-and-forget Notification without suspending the
// caller. A transport failure is reported to the logger and nowhere
// else: a notification has no caller-visible completion.
func (c *Client) Notify(ctx context.Context, method string, params ...any) {
	if c.transport == nil {
		c.logger.Error("client: notify with no transport configured", "method", method)
		return
	}
	n := jsonrpc.NewNotification(method, params...)
	go func() {
		if _, err := c.transport(ctx, n); err != nil {
			c.logger.Error("client: notification transport failed",
				"method", method, "error", err.Error())
		}
	}()
}

// Cancel removes the pending call with the given id, if any, and
// reports whether one was removed. A call evicted this way never
// resolves; its later response, if one arrives, is dropped. This is the
// hook external timeout layers build on.
func (c *Client) Cancel(id int64) bool {
	key := idKey(id)
	c.mu.Lock()
	_, ok := c.pending[key]
	delete(c.pending, key)
	c.mu.Unlock()
	return ok
}

// route feeds every response in reply to its pending call. Raw bytes
// are decoded first so byte-oriented transports need no glue.
func (c *Client) route(reply any) {
	switch raw := reply.(type) {
	case json.RawMessage:
		reply = decodeReply(raw, c.logger)
	case []byte:
		reply = decodeReply(raw, c.logger)
	case string:
		reply = decodeReply([]byte(raw), c.logger)
	}
	if batch, ok := reply.([]any); ok {
		for _, item := range batch {
			c.routeOne(item)
		}
		return
	}
	c.routeOne(reply)
}

func decodeReply(data []byte, logger jsonrpc.Logger) any {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		logger.Warn("client: undecodable transport reply", "error", err.Error())
		return nil
	}
	return v
}

func (c *Client) routeOne(v any) {
	fields, _ := jsonrpc.Fields(v)
	switch jsonrpc.Classify(v) {
	case jsonrpc.KindSuccessResponse:
		c.settle(idKey(fields["id"]), settled{result: fields["result"]})
	case jsonrpc.KindErrorResponse:
		rpcErr, _ := jsonrpc.ErrorFrom(fields["error"])
		c.settle(idKey(fields["id"]), settled{err: rpcErr})
	default:
		if v != nil {
			c.logger.Info("client: dropping non-response transport reply")
		}
	}
}

// settle completes and removes a pending call. Completing an id that is
// no longer pending is a no-op, which makes the response path, the
// transport-failure path and Cancel safe to race.
func (c *Client) settle(key string, s settled) bool {
	c.mu.Lock()
	done, ok := c.pending[key]
	if ok {
		delete(c.pending, key)
	}
	c.mu.Unlock()
	if !ok {
		return false
	}
	done <- s
	return true
}

// idKey maps every representation of the same id to one registry key,
// so a response whose id decoded as float64(7) still matches a request
// issued with int64(7).
func idKey(v any) string {
	switch t := v.(type) {
	case string:
		return "s:" + t
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return "n:" + strconv.FormatFloat(f, 'g', -1, 64)
		}
		return "n:" + t.String()
	case float64:
		return "n:" + strconv.FormatFloat(t, 'g', -1, 64)
	case float32:
		return "n:" + strconv.FormatFloat(float64(t), 'g', -1, 64)
	case int:
		return "n:" + strconv.FormatInt(int64(t), 10)
	case int8:
		return "n:" + strconv.FormatInt(int64(t), 10)
	case int16:
		return "n:" + strconv.FormatInt(int64(t), 10)
	case int32:
		return "n:" + strconv.FormatInt(int64(t), 10)
	case int64:
		return "n:" + strconv.FormatInt(t, 10)
	case uint:
		return "n:" + strconv.FormatUint(uint64(t), 10)
	case uint8:
		return "n:" + strconv.FormatUint(uint64(t), 10)
	case uint16:
		return "n:" + strconv.FormatUint(uint64(t), 10)
	case uint32:
		return "n:" + strconv.FormatUint(uint64(t), 10)
	case uint64:
		return "n:" + strconv.FormatUint(t, 10)
	}
	return fmt.Sprintf("x:%v", v)
}
