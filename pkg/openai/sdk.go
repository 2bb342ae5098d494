package openai

import (
	"fmt"

	"github.com/samber/lo"
	gogpt "github.com/sashabaranov/go-openai"

	"github.com/dskvich/openai-payloads/pkg/domain"
)

// The conversions below hand payloads to transports built on go-openai.

func ToSDKMessage(m *domain.ChatMessage) gogpt.ChatCompletionMessage {
	return gogpt.ChatCompletionMessage{
		Role:    m.Role.OrDefault().String(),
		Content: m.Content,
		Name:    m.Name,
	}
}

func ToSDKMessages(messages []*domain.ChatMessage) []gogpt.ChatCompletionMessage {
	return lo.Map(messages, func(m *domain.ChatMessage, _ int) gogpt.ChatCompletionMessage {
		return ToSDKMessage(m)
	})
}

// ToSDKChatRequest fails for settings go-openai cannot express: it always
// writes empty content as "" and drops a zero temperature.
func ToSDKChatRequest(req *ChatCompletionRequest) (gogpt.ChatCompletionRequest, error) {
	if req.ContentEncoding != domain.ContentAsString {
		return gogpt.ChatCompletionRequest{}, fmt.Errorf("content encoding %q is not supported by go-openai", req.ContentEncoding)
	}

	out := gogpt.ChatCompletionRequest{
		Model:     req.Model,
		Messages:  ToSDKMessages(req.Messages),
		MaxTokens: req.MaxTokens,
	}
	if req.Temperature != nil {
		if *req.Temperature == 0 {
			return gogpt.ChatCompletionRequest{}, fmt.Errorf("temperature 0 is not supported by go-openai")
		}
		out.Temperature = *req.Temperature
	}

	return out, nil
}

func ToSDKEmbeddingRequest(req *domain.EmbeddingRequest) gogpt.EmbeddingRequest {
	return gogpt.EmbeddingRequest{
		Input: []string(req.Input),
		Model: gogpt.EmbeddingModel(req.Model),
	}
}

// FromSDKMessage wraps a message received through go-openai. Roles the
// domain does not know are kept as they are.
func FromSDKMessage(msg gogpt.ChatCompletionMessage) *domain.ChatMessage {
	m := domain.NewChatMessage(domain.RoleFromString(msg.Role).OrDefault(), msg.Content)
	m.Name = msg.Name
	return m
}
