package openai

import (
	"encoding/json"
	"fmt"

	"github.com/dskvich/openai-payloads/pkg/domain"
)

// ChatCompletionRequest is the body of a chat completions call.
type ChatCompletionRequest struct {
	Model       string
	Messages    []*domain.ChatMessage
	MaxTokens   int
	// Temperature is left out of the payload when nil. A pointer keeps an
	// explicit 0 on the wire.
	Temperature *float32

	// ContentEncoding decides how messages with empty content are written.
	ContentEncoding domain.ContentEncoding
}

type chatCompletionsRequest struct {
	Model       string            `json:"model"`
	Messages    []json.RawMessage `json:"messages"`
	MaxTokens   int               `json:"max_tokens,omitempty"`
	Temperature *float32          `json:"temperature,omitempty"`
}

func (r ChatCompletionRequest) MarshalJSON() ([]byte, error) {
	messages := make([]json.RawMessage, 0, len(r.Messages))
	for i, m := range r.Messages {
		if m == nil {
			return nil, fmt.Errorf("encoding message %d: message is nil", i)
		}
		data, err := domain.EncodeChatMessage(m, r.ContentEncoding)
		if err != nil {
			return nil, fmt.Errorf("encoding message %d: %w", i, err)
		}
		messages = append(messages, data)
	}

	return json.Marshal(chatCompletionsRequest{
		Model:       r.Model,
		Messages:    messages,
		MaxTokens:   r.MaxTokens,
		Temperature: r.Temperature,
	})
}
