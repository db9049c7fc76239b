package jsonrpc

import "encoding/json"

// Kind identifies which of the wire shapes a decoded value instantiates.
type Kind int

const (
	KindInvalid Kind = iota
	KindRequest
	KindNotification
	KindSuccessResponse
	KindErrorResponse
)

func (k Kind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindNotification:
		return "notification"
	case KindSuccessResponse:
		return "success response"
	case KindErrorResponse:
		return "error response"
	}
	return "invalid"
}

// Classify reports the shape of v, trying Request, Notification,
// SuccessResponse and ErrorResponse in that order. It accepts any value
// and never panics; anything that matches no shape is KindInvalid.
func Classify(v any) Kind {
	switch {
	case IsRequest(v):
		return KindRequest
	case IsNotification(v):
		return KindNotification
	case IsSuccessResponse(v):
		return KindSuccessResponse
	case IsErrorResponse(v):
		return KindErrorResponse
	}
	return KindInvalid
}

// IsRequest reports whether v is an object with jsonrpc "2.0", a string
// method and a string-or-number id.
func IsRequest(v any) bool {
	obj, ok := Fields(v)
	if !ok || !hasVersion(obj) {
		return false
	}
	if _, ok := obj["method"].(string); !ok {
		return false
	}
	id, present := obj["id"]
	return present && isID(id)
}

// IsNotification reports whether v is an object with jsonrpc "2.0" and
// a string method whose "id" key does not exist at all.
func IsNotification(v any) bool {
	obj, ok := Fields(v)
	if !ok || !hasVersion(obj) {
		return false
	}
	if _, ok := obj["method"].(string); !ok {
		return false
	}
	_, present := obj["id"]
	return !present
}

// IsSuccessResponse reports whether v is an object with jsonrpc "2.0",
// a "result" key present, a string-or-number id and no "error" key.
func IsSuccessResponse(v any) bool {
	obj, ok := Fields(v)
	if !ok || !hasVersion(obj) {
		return false
	}
	if _, hasError := obj["error"]; hasError {
		return false
	}
	if _, hasResult := obj["result"]; !hasResult {
		return false
	}
	id, present := obj["id"]
	return present && isID(id)
}

// IsErrorResponse reports whether v is an object with jsonrpc "2.0", a
// valid error object, an id that is a string, a number or null, and no
// "result" key.
func IsErrorResponse(v any) bool {
	obj, ok := Fields(v)
	if !ok || !hasVersion(obj) {
		return false
	}
	if _, hasResult := obj["result"]; hasResult {
		return false
	}
	errVal, hasError := obj["error"]
	if !hasError || !IsErrorObject(errVal) {
		return false
	}
	id, present := obj["id"]
	return present && (id == nil || isID(id))
}

// IsResponse reports whether v is a success or error response.
func IsResponse(v any) bool {
	return IsSuccessResponse(v) || IsErrorResponse(v)
}

// IsErrorObject reports whether v carries a numeric code and a string
// message. The "data" key is optional and unchecked.
func IsErrorObject(v any) bool {
	switch t := v.(type) {
	case *Error:
		return t != nil
	case map[string]any:
		if _, ok := t["message"].(string); !ok {
			return false
		}
		return isNumber(t["code"])
	}
	return false
}

// Fields returns the wire-level field set of v. Generic decoded objects
// pass through unchanged; this package's typed messages are expanded to
// the map they would marshal to, so classification and dispatch treat
// decoded and in-process payloads identically.
func Fields(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case *Request:
		if t == nil {
			return nil, false
		}
		m := map[string]any{"jsonrpc": Version, "method": t.Method, "id": t.ID}
		if t.hasParams {
			m["params"] = t.Params
		}
		return m, true
	case *Notification:
		if t == nil {
			return nil, false
		}
		m := map[string]any{"jsonrpc": Version, "method": t.Method}
		if t.hasParams {
			m["params"] = t.Params
		}
		return m, true
	case *SuccessResponse:
		if t == nil {
			return nil, false
		}
		return map[string]any{"jsonrpc": Version, "id": t.ID, "result": t.Result}, true
	case *ErrorResponse:
		if t == nil {
			return nil, false
		}
		return map[string]any{"jsonrpc": Version, "id": t.ID, "error": t.Err}, true
	}
	return nil, false
}

func hasVersion(obj map[string]any) bool {
	ver, ok := obj["jsonrpc"].(string)
	return ok && ver == Version
}

// isID accepts strings and every numeric representation a JSON decoder
// or an in-process caller may hand us. null and booleans are not ids.
func isID(v any) bool {
	switch v.(type) {
	case string, json.Number,
		float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

func isNumber(v any) bool {
	switch v.(type) {
	case json.Number,
		float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

// intOf narrows any isNumber value to int.
func intOf(v any) int {
	switch t := v.(type) {
	case json.Number:
		n, _ := t.Int64()
		return int(n)
	case float64:
		return int(t)
	case float32:
		return int(t)
	case int:
		return t
	case int8:
		return int(t)
	case int16:
		return int(t)
	case int32:
		return int(t)
	case int64:
		return int(t)
	case uint:
		return int(t)
	case uint8:
		return int(t)
	case uint16:
		return int(t)
	case uint32:
		return int(t)
	case uint64:
		return int(t)
	}
	return 0
}
