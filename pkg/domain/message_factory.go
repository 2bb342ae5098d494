package domain

import (
	"io"
	"math/rand"

	"github.com/google/uuid"
)

// MessageFactory builds chat messages with ids taken from NewID.
type MessageFactory struct {
	NewID func() uuid.UUID
}

var defaultFactory = NewMessageFactory()

// NewMessageFactory returns a factory issuing random (version 4) ids.
func NewMessageFactory() *MessageFactory {
	return &MessageFactory{NewID: uuid.New}
}

// NewSeededFactory returns a factory with a reproducible id sequence for
// tests. It must not be shared between goroutines.
func NewSeededFactory(seed int64) *MessageFactory {
	return NewReaderFactory(rand.New(rand.NewSource(seed)))
}

// NewReaderFactory draws id bytes from r. It panics if r runs dry, like uuid.New.
func NewReaderFactory(r io.Reader) *MessageFactory {
	return &MessageFactory{
		NewID: func() uuid.UUID {
			return uuid.Must(uuid.NewRandomFromReader(r))
		},
	}
}

func (f *MessageFactory) NewEmpty() *ChatMessage {
	return &ChatMessage{id: f.NewID(), Role: RoleUser}
}

func (f *MessageFactory) New(role Role, content string) *ChatMessage {
	return &ChatMessage{id: f.NewID(), Role: role, Content: content}
}

func (f *MessageFactory) NewWithID(role Role, content string, id uuid.UUID) *ChatMessage {
	if id == uuid.Nil {
		id = f.NewID()
	}
	return &ChatMessage{id: id, Role: role, Content: content}
}
