package jsonrpc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalToMap(t *testing.T, v any) map[string]any {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func TestRequestMarshalOmitsAbsentParams(t *testing.T) {
	m := marshalToMap(t, NewRequest("math.add", 1))

	assert.Equal(t, "2.0", m["jsonrpc"])
	assert.Equal(t, "math.add", m["method"])
	assert.Equal(t, float64(1), m["id"])
	_, hasParams := m["params"]
	assert.False(t, hasParams, "omitted params must not appear on the wire")
}

func TestRequestMarshalKeepsExplicitNullParams(t *testing.T) {
	m := marshalToMap(t, NewRequest("math.add", 1, nil))

	v, hasParams := m["params"]
	assert.True(t, hasParams)
	assert.Nil(t, v)
}

func TestRequestMarshalWithParams(t *testing.T) {
	m := marshalToMap(t, NewRequest("math.add", "req-9", map[string]any{"a": 1, "b": 2}))

	assert.Equal(t, "req-9", m["id"])
	assert.Equal(t, map[string]any{"a": float64(1), "b": float64(2)}, m["params"])
}

func TestNotificationMarshalHasNoID(t *testing.T) {
	m := marshalToMap(t, NewNotification("log", map[string]any{"m": "x"}))

	_, hasID := m["id"]
	assert.False(t, hasID, "a notification must not carry an id key")
	assert.Equal(t, "log", m["method"])
}

func TestNotificationMarshalOmitsAbsentParams(t *testing.T) {
	m := marshalToMap(t, NewNotification("tick"))

	_, hasParams := m["params"]
	assert.False(t, hasParams)
}

func TestSuccessResponseMarshalAlwaysHasResult(t *testing.T) {
	m := marshalToMap(t, NewSuccessResponse(3, nil))

	v, hasResult := m["result"]
	assert.True(t, hasResult, "result key must be present even for a null result")
	assert.Nil(t, v)
	assert.Equal(t, float64(3), m["id"])

	_, hasError := m["error"]
	assert.False(t, hasError)
}

func TestErrorResponseMarshalKeepsNullID(t *testing.T) {
	m := marshalToMap(t, NewErrorResponse(nil, NewParseError()))

	id, hasID := m["id"]
	assert.True(t, hasID, "id key must be present, as null, when no request context exists")
	assert.Nil(t, id)

	errObj := m["error"].(map[string]any)
	assert.Equal(t, float64(CodeParseError), errObj["code"])
	assert.Equal(t, "Parse error", errObj["message"])
}

func TestMessagesRoundTripThroughWire(t *testing.T) {
	tests := []struct {
		name string
		msg  any
		want Kind
	}{
		{"request", NewRequest("m", 1, []any{1, 2}), KindRequest},
		{"notification", NewNotification("m"), KindNotification},
		{"success", NewSuccessResponse("x", map[string]any{"ok": true}), KindSuccessResponse},
		{"error", NewErrorResponse(2, NewError(-32000, "app", "detail")), KindErrorResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.msg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Classify(decode(t, string(data))))
		})
	}
}

// The spec's round-trip property: the error object of a factory-built
// error response is exactly the standard error, data key included only
// when given.
func TestErrorResponseRoundTripProperty(t *testing.T) {
	withData := NewErrorResponse(4, NewInvalidParamsError(map[string]any{"field": "a"}))
	assert.Equal(t, CodeInvalidParams, withData.Err.Code)
	assert.Equal(t, "Invalid params", withData.Err.Message)
	assert.Equal(t, map[string]any{"field": "a"}, withData.Err.Data)

	m := marshalToMap(t, withData)
	errObj := m["error"].(map[string]any)
	assert.Equal(t, map[string]any{"field": "a"}, errObj["data"])

	withoutData := NewErrorResponse(4, NewInvalidParamsError())
	m = marshalToMap(t, withoutData)
	errObj = m["error"].(map[string]any)
	_, hasData := errObj["data"]
	assert.False(t, hasData, "omitted data must omit the key entirely")
}
