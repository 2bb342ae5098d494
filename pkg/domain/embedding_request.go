package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EmbeddingRequest asks for vector representations of Input using Model.
// It is a plain payload: nothing is validated until it is sent.
type EmbeddingRequest struct {
	Model string `json:"model"`
	Input Input  `json:"input"`
}

func NewEmbeddingRequest(model string, input ...string) *EmbeddingRequest {
	return &EmbeddingRequest{Model: model, Input: input}
}

// NewDefaultEmbeddingRequest uses DefaultEmbeddingModel.
func NewDefaultEmbeddingRequest(input ...string) *EmbeddingRequest {
	return NewEmbeddingRequest(DefaultEmbeddingModel, input...)
}

// Input is the ordered list of texts to embed. It always encodes as a JSON
// array and decodes from either a single string or an array of strings.
type Input []string

func (in Input) MarshalJSON() ([]byte, error) {
	if in == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(in))
}

func (in *Input) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*in = nil
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding input string: %w", err)
		}
		*in = Input{s}
		return nil
	default:
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("decoding input list: %w", err)
		}
		*in = list
		return nil
	}
}
