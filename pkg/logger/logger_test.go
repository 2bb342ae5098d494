package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(NewHandler(buf, &Options{
		Level:       level,
		TimeFormat:  "15:04:05",
		SrcFileMode: Nop,
		MsgPrefix:   "| ",
		NoColor:     true,
	}))
}

func TestHandlerWritesConversationID(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf, slog.LevelDebug)

	ctx := ContextWithConversationID(context.Background(), "conv-1")
	log.InfoContext(ctx, "Built chat completion request", "model", "gpt-4o", "messages", 3)

	line := buf.String()
	assert.Contains(t, line, " conv-1 INFO  | Built chat completion request model=gpt-4o messages=3")
	assert.True(t, strings.HasSuffix(line, "\n"))
	assert.NotContains(t, line, "\x1b[")
}

func TestHandlerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf, slog.LevelWarn)

	log.Info("hidden")
	log.Error("failed", Err(errors.New("boom")))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "ERROR | failed error=boom")
}

func TestHandlerGroupsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf, slog.LevelDebug).With("cmd", "embed").WithGroup("req")

	log.Debug("payload", "inputs", 2)

	assert.Contains(t, buf.String(), "DEBUG | payload cmd=embed req.inputs=2")
}

func TestConversationIDFromContext(t *testing.T) {
	_, ok := ConversationIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = ConversationIDFromContext(ContextWithConversationID(context.Background(), ""))
	assert.False(t, ok)

	id, ok := ConversationIDFromContext(ContextWithConversationID(context.Background(), "abc"))
	require.True(t, ok)
	assert.Equal(t, "abc", id)
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
