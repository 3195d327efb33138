package bitcoin

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
)

// Error kinds raised by the client itself. Codes reported by the node are
// negative and pass through unchanged.
const (
	ErrCodeConnection      btcjson.RPCErrorCode = 1
	ErrCodeBadCredentials  btcjson.RPCErrorCode = 2
	ErrCodeInvalidResponse btcjson.RPCErrorCode = 3
	ErrCodeInvalidRequest  btcjson.RPCErrorCode = 4
)

var errEmptyResult = errors.New("empty result")

// Envelope is the outcome of a single RPC call. Exactly one of Result and
// Error is set.
type Envelope struct {
	ID     int64
	Method string
	Result json.RawMessage
	Error  *btcjson.RPCError
}

// Failed reports whether the call ended with an error.
func (e Envelope) Failed() bool {
	return e.Error != nil
}

// Err returns the envelope error as an error value, or nil on success.
func (e Envelope) Err() error {
	if e.Error == nil {
		return nil
	}
	return e.Error
}

// Decode unmarshals the result payload into v.
func (e Envelope) Decode(v any) error {
	if e.Error != nil {
		return e.Error
	}
	if isEmptyResult(e.Result) {
		return fmt.Errorf("%s: %w", e.Method, errEmptyResult)
	}
	if err := json.Unmarshal(e.Result, v); err != nil {
		return fmt.Errorf("decode %s result: %w", e.Method, err)
	}
	return nil
}

func (e Envelope) fail(code btcjson.RPCErrorCode, message string) Envelope {
	e.Result = nil
	e.Error = btcjson.NewRPCError(code, message)
	return e
}

func isEmptyResult(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
