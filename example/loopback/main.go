// Command loopback wires a client.Client directly to a
// server.Dispatcher through an in-process transport that still does a
// real JSON round trip, exercising calls, application errors, batches
// of work on the server side, and a fire-and-forget notification.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/gregorybarale/go-json-rpc/client"
	"github.com/gregorybarale/go-json-rpc/jsonrpc"
	"github.com/gregorybarale/go-json-rpc/server"
)

func main() {
	// Optional .env for local tweaks (RPC_QUIET=1 silences diagnostics).
	_ = godotenv.Load()

	var diag io.Writer = os.Stderr
	if os.Getenv("RPC_QUIET") == "1" {
		diag = io.Discard
	}
	logger := jsonrpc.NewLogger(diag)

	d := server.NewDispatcher(server.WithLogger(logger))
	d.Register("math.add", func(ctx context.Context, params any) (any, error) {
		args, ok := params.(map[string]any)
		if !ok {
			return nil, jsonrpc.NewInvalidParamsError()
		}
		a, aOK := args["a"].(float64)
		b, bOK := args["b"].(float64)
		if !aOK || !bOK {
			return nil, jsonrpc.NewInvalidParamsError("a and b must be numbers")
		}
		return a + b, nil
	})
	d.Register("math.div", func(ctx context.Context, params any) (any, error) {
		args, ok := params.(map[string]any)
		if !ok {
			return nil, jsonrpc.NewInvalidParamsError()
		}
		a, _ := args["a"].(float64)
		b, _ := args["b"].(float64)
		if b == 0 {
			return nil, jsonrpc.NewError(-32000, "division by zero")
		}
		return a / b, nil
	})
	d.Register("audit.log", func(ctx context.Context, params any) (any, error) {
		logger.Info("audit entry", "params", params)
		return nil, nil
	})

	// The transport marshals every payload to bytes and hands them to
	// the dispatcher, so messages cross a genuine JSON boundary even
	// though no socket is involved.
	transport := func(ctx context.Context, payload any) (any, error) {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		out := d.DispatchRaw(ctx, data)
		if out == nil {
			return nil, nil
		}
		data, err = json.Marshal(out)
		if err != nil {
			return nil, err
		}
		var decoded any
		if err := json.Unmarshal(data, &decoded); err != nil {
			return nil, err
		}
		return decoded, nil
	}

	c := client.New(transport, client.WithLogger(logger))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sum, err := c.Call(ctx, "math.add", map[string]any{"a": 19, "b": 23})
	if err != nil {
		log.Fatalf("math.add failed: %v", err)
	}
	fmt.Printf("math.add(19, 23) = %v\n", sum)

	_, err = c.Call(ctx, "math.div", map[string]any{"a": 1, "b": 0})
	var rpcErr *jsonrpc.Error
	if errors.As(err, &rpcErr) {
		fmt.Printf("math.div(1, 0) rejected with code %d: %s\n", rpcErr.Code, rpcErr.Message)
	}

	c.Notify(ctx, "audit.log", map[string]any{"event": "example finished"})
	// Notifications are delivered off the calling goroutine; give the
	// in-process transport a moment before the program exits.
	time.Sleep(50 * time.Millisecond)

	// Server-side batch, as a wire-shaped payload.
	batch := d.DispatchRaw(ctx, []byte(`[
		{"jsonrpc":"2.0","method":"math.add","params":{"a":1,"b":2},"id":"a"},
		{"jsonrpc":"2.0","method":"audit.log","params":{"event":"batch"}},
		{"jsonrpc":"2.0","method":"math.mul","params":{"a":2,"b":3},"id":"b"}
	]`))
	wire, err := json.Marshal(batch)
	if err != nil {
		log.Fatalf("marshal batch response: %v", err)
	}
	fmt.Printf("batch response: %s\n", wire)
}
