// Package api defines the whist.v1 Connect services: procedure names,
// request and response messages, handler constructors and typed clients.
//
// Messages are plain Go structs exchanged as JSON, so every handler and
// client is built with JSONCodec.
package api

import (
	"encoding/json"
	"fmt"
)

// JSONCodec is a connect.Codec for plain structs. It registers under the
// name "json" and so replaces Connect's protobuf-only JSON codec.
type JSONCodec struct{}

// Name implements connect.Codec.
func (JSONCodec) Name() string { return "json" }

// Marshal implements connect.Codec.
func (JSONCodec) Marshal(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", msg, err)
	}
	return data, nil
}

// Unmarshal implements connect.Codec.
func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("unmarshal %T: %w", msg, err)
	}
	return nil
}
