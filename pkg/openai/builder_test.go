package openai

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dskvich/openai-payloads/pkg/domain"
)

func TestNewBuilderDefaults(t *testing.T) {
	cfg := NewBuilder(Config{}).Config()

	assert.Equal(t, domain.DefaultChatModel, cfg.ChatModel)
	assert.Equal(t, domain.DefaultEmbeddingModel, cfg.EmbeddingModel)
	assert.Equal(t, domain.ContentAsString, cfg.ContentEncoding)
}

func TestBuilderChatRequest(t *testing.T) {
	b := NewBuilder(Config{ChatModel: "gpt-4o-mini", MaxTokens: 256, ContentEncoding: domain.ContentAsNull})

	conv := domain.NewConversation()
	conv.AppendNew(domain.RoleSystem, "be brief")
	conv.AppendNew(domain.RoleAssistant, "")
	conv.Append(&domain.ChatMessage{Role: domain.RoleUser, Content: "hi", Name: "alice"})

	req, err := b.ChatRequest(context.Background(), conv)
	require.NoError(t, err)

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"model": "gpt-4o-mini",
		"max_tokens": 256,
		"messages": [
			{"role": "system", "content": "be brief"},
			{"role": "assistant", "content": null},
			{"role": "user", "content": "hi", "name": "alice"}
		]
	}`, string(data))
}

func TestBuilderChatRequestSnapshotsMessages(t *testing.T) {
	conv := domain.NewConversation()
	conv.AppendNew(domain.RoleUser, "hi")

	req, err := NewBuilder(Config{}).ChatRequest(context.Background(), conv)
	require.NoError(t, err)

	conv.AppendNew(domain.RoleAssistant, "later")
	assert.Len(t, req.Messages, 1)
}

func TestBuilderChatRequestRejectsEmptyConversation(t *testing.T) {
	b := NewBuilder(Config{})

	for name, conv := range map[string]*domain.Conversation{
		"nil":   nil,
		"empty": domain.NewConversation(),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := b.ChatRequest(context.Background(), conv)
			require.ErrorIs(t, err, domain.ErrInvalidRequest)
			assert.Contains(t, err.Error(), "conversation has no messages")
		})
	}
}

func TestBuilderEmbeddingRequest(t *testing.T) {
	b := NewBuilder(Config{EmbeddingModel: "text-embedding-3-small"})

	tests := []struct {
		name string
		in   *domain.EmbeddingRequest
		want string
	}{
		{"fills configured model", &domain.EmbeddingRequest{Input: domain.Input{"a"}}, "text-embedding-3-small"},
		{"keeps explicit model", domain.NewEmbeddingRequest("custom", "a"), "custom"},
		{"keeps default model", domain.NewDefaultEmbeddingRequest("a"), domain.DefaultEmbeddingModel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := b.EmbeddingRequest(context.Background(), tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Model)
			assert.Equal(t, domain.Input{"a"}, out.Input)
			assert.NotSame(t, tt.in, out)
		})
	}
}

func TestBuilderEmbeddingRequestRejectsInvalid(t *testing.T) {
	b := NewBuilder(Config{})

	_, err := b.EmbeddingRequest(context.Background(), &domain.EmbeddingRequest{})
	require.ErrorIs(t, err, domain.ErrInvalidRequest)
	assert.Contains(t, err.Error(), "input is empty")

	_, err = b.EmbeddingRequest(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestChatCompletionRequestMarshalRejectsNilMessage(t *testing.T) {
	_, err := json.Marshal(ChatCompletionRequest{Model: "m", Messages: []*domain.ChatMessage{nil}})
	assert.Error(t, err)
}

func TestBuilderChatRequestTemperature(t *testing.T) {
	conv := domain.NewConversation()
	conv.AppendNew(domain.RoleUser, "hi")

	tests := []struct {
		name        string
		temperature *float32
		want        string
	}{
		{"unset", nil, `{"model":"gpt-3.5-turbo","messages":[{"role":"user","content":"hi"}]}`},
		{"zero", lo.ToPtr(float32(0)), `{"model":"gpt-3.5-turbo","temperature":0,"messages":[{"role":"user","content":"hi"}]}`},
		{"warm", lo.ToPtr(float32(0.5)), `{"model":"gpt-3.5-turbo","temperature":0.5,"messages":[{"role":"user","content":"hi"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewBuilder(Config{Temperature: tt.temperature}).ChatRequest(context.Background(), conv)
			require.NoError(t, err)

			data, err := json.Marshal(req)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}
