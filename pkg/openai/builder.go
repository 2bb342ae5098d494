package openai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"github.com/dskvich/openai-payloads/pkg/domain"
)

type Config struct {
	ChatModel       string
	EmbeddingModel  string
	MaxTokens       int
	Temperature     *float32
	ContentEncoding domain.ContentEncoding
}

// Builder turns conversations and embedding requests into payloads ready to
// be sent, rejecting the ones the API would refuse.
type Builder struct {
	cfg Config
}

func NewBuilder(cfg Config) *Builder {
	cfg.ChatModel, _ = lo.Coalesce(cfg.ChatModel, domain.DefaultChatModel)
	cfg.EmbeddingModel, _ = lo.Coalesce(cfg.EmbeddingModel, domain.DefaultEmbeddingModel)

	return &Builder{cfg: cfg}
}

func (b *Builder) Config() Config {
	return b.cfg
}

func (b *Builder) ChatRequest(ctx context.Context, conv *domain.Conversation) (*ChatCompletionRequest, error) {
	var messages []*domain.ChatMessage
	if conv != nil {
		messages = conv.Messages()
	}

	req := &ChatCompletionRequest{
		Model:           b.cfg.ChatModel,
		Messages:        messages,
		MaxTokens:       b.cfg.MaxTokens,
		ContentEncoding: b.cfg.ContentEncoding,
	}
	if b.cfg.Temperature != nil {
		req.Temperature = lo.ToPtr(*b.cfg.Temperature)
	}

	if err := ValidateChat(req); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "Built chat completion request",
		"model", req.Model,
		"messages", len(req.Messages),
		"contentEncoding", req.ContentEncoding,
	)

	return req, nil
}

// EmbeddingRequest returns a copy of req with the configured model filled in
// when req has none.
func (b *Builder) EmbeddingRequest(ctx context.Context, req *domain.EmbeddingRequest) (*domain.EmbeddingRequest, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: embedding request is nil", domain.ErrInvalidRequest)
	}

	out := &domain.EmbeddingRequest{
		Model: lo.Ternary(req.Model == "", b.cfg.EmbeddingModel, req.Model),
		Input: append(domain.Input(nil), req.Input...),
	}

	if err := ValidateEmbedding(out); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "Built embedding request", "model", out.Model, "inputs", len(out.Input))

	return out, nil
}
