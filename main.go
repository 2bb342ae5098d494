package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"

	"github.com/dskvich/openai-payloads/pkg/domain"
	"github.com/dskvich/openai-payloads/pkg/logger"
	"github.com/dskvich/openai-payloads/pkg/openai"
	"github.com/dskvich/openai-payloads/pkg/transcript"
)

type Config struct {
	ChatModel        string                 `env:"CHAT_MODEL" envDefault:"gpt-3.5-turbo"`
	EmbeddingModel   string                 `env:"EMBEDDING_MODEL" envDefault:"text-embedding-ada-002"`
	MaxTokens        int                    `env:"MAX_TOKENS"`
	Temperature      string                 `env:"TEMPERATURE"`
	ContentEncoding  domain.ContentEncoding `env:"CONTENT_ENCODING" envDefault:"string"`
	OutputFormat     string                 `env:"OUTPUT_FORMAT" envDefault:"wire"`
	TranscriptFormat string                 `env:"TRANSCRIPT_FORMAT" envDefault:"markdown"`
	ConversationID   string                 `env:"CONVERSATION_ID"`
	LogLevel         string                 `env:"LOG_LEVEL" envDefault:"info"`
	LogNoColor       bool                   `env:"LOG_NO_COLOR"`
}

const usage = `usage: openai-payloads <command> [args]

commands:
  chat              read a conversation (JSON array of messages) from stdin, print the chat completion request
  embed [text...]   embed the arguments, or read an embedding request from stdin
  transcript        read a conversation from stdin, print it as markdown or html`

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	if err := runMain(); err != nil {
		slog.Error("shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
}

func runMain() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	cfg, err := parseConfig(env.Options{})
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	opts := *logger.DefaultOptions
	opts.Level = level
	opts.NoColor = cfg.LogNoColor
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, &opts)))

	ctx, cancelFn := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancelFn()

	return run(ctx, cfg, os.Args[1:], os.Stdin, os.Stdout)
}

func parseConfig(opts env.Options) (Config, error) {
	cfg := Config{}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parsing env config: %w", err)
	}
	return cfg, nil
}

func run(ctx context.Context, cfg Config, args []string, in io.Reader, out io.Writer) error {
	if len(args) == 0 {
		return errors.New(usage)
	}

	if cfg.ConversationID != "" {
		ctx = logger.ContextWithConversationID(ctx, cfg.ConversationID)
	}

	temperature, err := parseTemperature(cfg.Temperature)
	if err != nil {
		return err
	}

	builder := openai.NewBuilder(openai.Config{
		ChatModel:       cfg.ChatModel,
		EmbeddingModel:  cfg.EmbeddingModel,
		MaxTokens:       cfg.MaxTokens,
		Temperature:     temperature,
		ContentEncoding: cfg.ContentEncoding,
	})

	switch args[0] {
	case "chat":
		return runChat(ctx, cfg, builder, in, out)
	case "embed":
		return runEmbed(ctx, cfg, builder, args[1:], in, out)
	case "transcript":
		return runTranscript(ctx, cfg, in, out)
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

func runChat(ctx context.Context, cfg Config, builder *openai.Builder, in io.Reader, out io.Writer) error {
	conv, err := readConversation(in)
	if err != nil {
		return err
	}

	req, err := builder.ChatRequest(ctx, conv)
	if err != nil {
		return fmt.Errorf("building chat request: %w", err)
	}

	switch cfg.OutputFormat {
	case "sdk":
		sdkReq, err := openai.ToSDKChatRequest(req)
		if err != nil {
			return fmt.Errorf("converting chat request: %w", err)
		}
		return writeJSON(out, sdkReq)
	case "wire":
		return writeJSON(out, req)
	default:
		return fmt.Errorf("unknown output format %q", cfg.OutputFormat)
	}
}

func runEmbed(ctx context.Context, cfg Config, builder *openai.Builder, texts []string, in io.Reader, out io.Writer) error {
	req := &domain.EmbeddingRequest{Input: texts}
	if len(texts) == 0 {
		if err := json.NewDecoder(in).Decode(req); err != nil {
			return fmt.Errorf("decoding embedding request: %w", err)
		}
	}

	req, err := builder.EmbeddingRequest(ctx, req)
	if err != nil {
		return fmt.Errorf("building embedding request: %w", err)
	}

	switch cfg.OutputFormat {
	case "sdk":
		return writeJSON(out, openai.ToSDKEmbeddingRequest(req))
	case "wire":
		return writeJSON(out, req)
	default:
		return fmt.Errorf("unknown output format %q", cfg.OutputFormat)
	}
}

func runTranscript(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	conv, err := readConversation(in)
	if err != nil {
		return err
	}

	slog.DebugContext(ctx, "Rendering transcript", "format", cfg.TranscriptFormat, "messages", conv.Len())

	var rendered string
	switch cfg.TranscriptFormat {
	case "markdown":
		rendered = transcript.Markdown(conv)
	case "html":
		rendered = transcript.HTML(conv)
	default:
		return fmt.Errorf("unknown transcript format %q", cfg.TranscriptFormat)
	}

	_, err = io.WriteString(out, rendered)
	return err
}

// parseTemperature returns nil for an unset value so that an explicit "0"
// still reaches the payload.
func parseTemperature(raw string) (*float32, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 32)
	if err != nil {
		return nil, fmt.Errorf("parsing TEMPERATURE: %w", err)
	}
	t := float32(v)
	return &t, nil
}

func readConversation(in io.Reader) (*domain.Conversation, error) {
	conv := domain.NewConversation()
	if err := json.NewDecoder(in).Decode(conv); err != nil {
		return nil, fmt.Errorf("reading conversation: %w", err)
	}
	return conv, nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
