package openai

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/dskvich/openai-payloads/pkg/domain"
)

// ValidateChat reports every problem with req at once. The returned error
// matches domain.ErrInvalidRequest.
func ValidateChat(req *ChatCompletionRequest) error {
	if req == nil {
		return fmt.Errorf("%w: chat request is nil", domain.ErrInvalidRequest)
	}

	var result *multierror.Error

	if strings.TrimSpace(req.Model) == "" {
		result = multierror.Append(result, errors.New("model is empty"))
	}
	if len(req.Messages) == 0 {
		result = multierror.Append(result, errors.New("conversation has no messages"))
	}
	for i, m := range req.Messages {
		if m == nil {
			result = multierror.Append(result, fmt.Errorf("message %d is nil", i))
		}
	}
	if req.MaxTokens < 0 {
		result = multierror.Append(result, fmt.Errorf("max tokens %d is negative", req.MaxTokens))
	}

	return invalid(result)
}

func ValidateEmbedding(req *domain.EmbeddingRequest) error {
	if req == nil {
		return fmt.Errorf("%w: embedding request is nil", domain.ErrInvalidRequest)
	}

	var result *multierror.Error

	if strings.TrimSpace(req.Model) == "" {
		result = multierror.Append(result, errors.New("model is empty"))
	}
	if len(req.Input) == 0 {
		result = multierror.Append(result, errors.New("input is empty"))
	}
	for i, in := range req.Input {
		if in == "" {
			result = multierror.Append(result, fmt.Errorf("input %d is empty", i))
		}
	}

	return invalid(result)
}

func invalid(result *multierror.Error) error {
	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}
	return nil
}
