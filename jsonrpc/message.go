package jsonrpc

import "encoding/json"

// Version is the fixed value of the "jsonrpc" wire key. Any other value
// makes a message invalid.
const Version = "2.0"

// Request is an operation expecting exactly one response. ID scopes the
// pending call on the client that issued it; it must be a string or a
// number, never nil.
type Request struct {
	Method string
	ID     any
	Params any

	hasParams bool
}

// NewRequest builds a Request. Params is optional; omitting it omits the
// "params" key from the wire form, while passing an explicit nil emits
// "params": null.
func NewRequest(method string, id any, params ...any) *Request {
	r := &Request{Method: method, ID: id}
	if len(params) > 0 {
		r.Params = params[0]
		r.hasParams = true
	}
	return r
}

// HasParams reports whether the "params" key will appear on the wire.
func (r *Request) HasParams() bool { return r.hasParams }

func (r *Request) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"jsonrpc": Version,
		"method":  r.Method,
		"id":      r.ID,
	}
	if r.hasParams {
		m["params"] = r.Params
	}
	return json.Marshal(m)
}

// Notification is a Request without an id: no response is ever produced
// for it, by either side.
type Notification struct {
	Method string
	Params any

	hasParams bool
}

// NewNotification builds a Notification. Params follows the same
// omitted-versus-null rule as NewRequest.
func NewNotification(method string, params ...any) *Notification {
	n := &Notification{Method: method}
	if len(params) > 0 {
		n.Params = params[0]
		n.hasParams = true
	}
	return n
}

// HasParams reports whether the "params" key will appear on the wire.
func (n *Notification) HasParams() bool { return n.hasParams }

func (n *Notification) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"jsonrpc": Version,
		"method":  n.Method,
	}
	if n.hasParams {
		m["params"] = n.Params
	}
	return json.Marshal(m)
}

// SuccessResponse carries the result of a Request. ID echoes the
// originating Request's id. The "result" key is always present on the
// wire, even when Result is nil.
type SuccessResponse struct {
	ID     any
	Result any
}

// NewSuccessResponse builds a SuccessResponse.
func NewSuccessResponse(id, result any) *SuccessResponse {
	return &SuccessResponse{ID: id, Result: result}
}

func (r *SuccessResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"jsonrpc": Version,
		"id":      r.ID,
		"result":  r.Result,
	})
}

// ErrorResponse reports a failed Request. ID is nil only when the
// failure could not be associated with any specific request (for
// example an undecodable payload); it then serializes as JSON null.
type ErrorResponse struct {
	ID  any
	Err *Error
}

// NewErrorResponse builds an ErrorResponse.
func NewErrorResponse(id any, err *Error) *ErrorResponse {
	return &ErrorResponse{ID: id, Err: err}
}

func (r *ErrorResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"jsonrpc": Version,
		"id":      r.ID,
		"error":   r.Err,
	})
}
