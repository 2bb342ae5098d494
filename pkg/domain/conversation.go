package domain

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Conversation is an ordered list of chat messages. Messages are addressed by
// their id, which is the only identity a message has.
//
// A Conversation is not safe for concurrent mutation.
type Conversation struct {
	messages []*ChatMessage
}

func NewConversation(messages ...*ChatMessage) *Conversation {
	c := &Conversation{}
	c.Append(messages...)
	return c
}

// Append adds messages at the end. Nil messages are skipped.
func (c *Conversation) Append(messages ...*ChatMessage) {
	for _, m := range messages {
		if m != nil {
			c.messages = append(c.messages, m)
		}
	}
}

// AppendNew creates a message with a fresh id and appends it.
func (c *Conversation) AppendNew(role Role, content string) *ChatMessage {
	m := NewChatMessage(role, content)
	c.messages = append(c.messages, m)
	return m
}

func (c *Conversation) Len() int {
	return len(c.messages)
}

// Messages returns the messages in order. The slice is a copy; the messages are not.
func (c *Conversation) Messages() []*ChatMessage {
	out := make([]*ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// IndexOf returns -1 when no message has the id.
func (c *Conversation) IndexOf(id uuid.UUID) int {
	for i, m := range c.messages {
		if m.id == id {
			return i
		}
	}
	return -1
}

func (c *Conversation) Find(id uuid.UUID) (*ChatMessage, bool) {
	i := c.IndexOf(id)
	if i < 0 {
		return nil, false
	}
	return c.messages[i], true
}

// Update applies fn to the message with the given id in place.
func (c *Conversation) Update(id uuid.UUID, fn func(m *ChatMessage)) error {
	m, ok := c.Find(id)
	if !ok {
		return fmt.Errorf("message %s: %w", id, ErrNotFound)
	}
	fn(m)
	return nil
}

func (c *Conversation) Remove(id uuid.UUID) error {
	i := c.IndexOf(id)
	if i < 0 {
		return fmt.Errorf("message %s: %w", id, ErrNotFound)
	}
	c.messages = append(c.messages[:i], c.messages[i+1:]...)
	return nil
}

// Clone copies every message, keeping their ids.
func (c *Conversation) Clone() *Conversation {
	if c == nil {
		return NewConversation()
	}
	out := &Conversation{messages: make([]*ChatMessage, 0, len(c.messages))}
	for _, m := range c.messages {
		out.messages = append(out.messages, m.Clone())
	}
	return out
}

func (c *Conversation) Clear() {
	c.messages = nil
}

// Last returns the most recent message.
func (c *Conversation) Last() (*ChatMessage, bool) {
	if len(c.messages) == 0 {
		return nil, false
	}
	return c.messages[len(c.messages)-1], true
}

func (c *Conversation) MarshalJSON() ([]byte, error) {
	if c.messages == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.messages)
}

func (c *Conversation) UnmarshalJSON(data []byte) error {
	var messages []*ChatMessage
	if err := json.Unmarshal(data, &messages); err != nil {
		return fmt.Errorf("decoding conversation: %w", err)
	}
	c.messages = nil
	c.Append(messages...)
	return nil
}
