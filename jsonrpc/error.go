package jsonrpc

import "encoding/json"

// Reserved protocol-level error codes. Any other integer is available
// for application-defined errors (commonly <= -32000 by convention,
// though that range is not enforced).
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Error is a JSON-RPC error object. It implements the Go error
// interface so server handlers can return one directly to produce an
// ErrorResponse carrying it verbatim.
type Error struct {
	Code    int
	Message string
	Data    any

	hasData bool
}

func (e *Error) Error() string {
	return e.Message
}

// NewError builds an error object with an application-chosen code. Data
// is optional; omitting it omits the "data" key from the wire form.
func NewError(code int, message string, data ...any) *Error {
	e := &Error{Code: code, Message: message}
	if len(data) > 0 {
		e.Data = data[0]
		e.hasData = true
	}
	return e
}

// NewParseError builds the reserved -32700 error: the payload was not
// valid JSON.
func NewParseError(data ...any) *Error {
	return NewError(CodeParseError, "Parse error", data...)
}

// NewInvalidRequestError builds the reserved -32600 error: the payload
// decoded but is not a structurally valid request or batch.
func NewInvalidRequestError(data ...any) *Error {
	return NewError(CodeInvalidRequest, "Invalid Request", data...)
}

// NewMethodNotFoundError builds the reserved -32601 error.
func NewMethodNotFoundError(data ...any) *Error {
	return NewError(CodeMethodNotFound, "Method not found", data...)
}

// NewInvalidParamsError builds the reserved -32602 error.
func NewInvalidParamsError(data ...any) *Error {
	return NewError(CodeInvalidParams, "Invalid params", data...)
}

// NewInternalError builds the reserved -32603 error. The dispatcher
// substitutes it for any handler failure that is not itself an *Error,
// so internal fault detail never reaches the wire.
func NewInternalError(data ...any) *Error {
	return NewError(CodeInternalError, "Internal error", data...)
}

// HasData reports whether the "data" key will appear on the wire.
func (e *Error) HasData() bool { return e.hasData || e.Data != nil }

func (e *Error) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"code":    e.Code,
		"message": e.Message,
	}
	if e.hasData || e.Data != nil {
		m["data"] = e.Data
	}
	return json.Marshal(m)
}

// UnmarshalJSON preserves the presence of the "data" key, so a decoded
// error object round-trips without inventing or dropping it.
func (e *Error) UnmarshalJSON(data []byte) error {
	var raw struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.Code = raw.Code
	e.Message = raw.Message
	e.Data = nil
	e.hasData = false
	if raw.Data != nil {
		var v any
		if err := json.Unmarshal(raw.Data, &v); err != nil {
			return err
		}
		e.Data = v
		e.hasData = true
	}
	return nil
}

// ErrorFrom converts any value satisfying IsErrorObject into an *Error.
// It is how the client correlator turns a decoded wire error object
// back into a value callers can inspect with errors.As.
func ErrorFrom(v any) (*Error, bool) {
	switch t := v.(type) {
	case *Error:
		if t != nil {
			return t, true
		}
	case map[string]any:
		if !IsErrorObject(t) {
			return nil, false
		}
		e := &Error{Code: intOf(t["code"]), Message: t["message"].(string)}
		if d, ok := t["data"]; ok {
			e.Data = d
			e.hasData = true
		}
		return e, true
	}
	return nil, false
}
