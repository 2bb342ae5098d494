package domain

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// ChatMessage is a single turn of a conversation. The id is assigned once at
// construction, is used only to locate the message inside a Conversation and
// never leaves the process.
type ChatMessage struct {
	id uuid.UUID

	Role    Role
	Content string
	// Name disambiguates participants sharing a role, e.g. several users in one chat.
	Name string
}

func NewEmptyChatMessage() *ChatMessage {
	return defaultFactory.NewEmpty()
}

func NewChatMessage(role Role, content string) *ChatMessage {
	return defaultFactory.New(role, content)
}

// NewChatMessageWithID keeps id when restoring a message from persisted state.
// uuid.Nil falls back to a fresh id.
func NewChatMessageWithID(role Role, content string, id uuid.UUID) *ChatMessage {
	return defaultFactory.NewWithID(role, content, id)
}

func (m *ChatMessage) ID() uuid.UUID {
	return m.id
}

func (m *ChatMessage) Clone() *ChatMessage {
	c := *m
	return &c
}

type wireChatMessage struct {
	Role    string  `json:"role"`
	Content *string `json:"content"`
	Name    string  `json:"name,omitempty"`
}

type wireChatMessageOmitContent struct {
	Role    string  `json:"role"`
	Content *string `json:"content,omitempty"`
	Name    string  `json:"name,omitempty"`
}

// EncodeChatMessage renders the wire form of m. enc decides what an empty
// content looks like; non-empty content is always a JSON string.
func EncodeChatMessage(m *ChatMessage, enc ContentEncoding) ([]byte, error) {
	content := &m.Content
	if m.Content == "" && enc != ContentAsString {
		content = nil
	}

	role := m.Role.OrDefault().String()

	if enc == ContentOmitted {
		return json.Marshal(wireChatMessageOmitContent{Role: role, Content: content, Name: m.Name})
	}
	return json.Marshal(wireChatMessage{Role: role, Content: content, Name: m.Name})
}

func (m ChatMessage) MarshalJSON() ([]byte, error) {
	return EncodeChatMessage(&m, DefaultContentEncoding)
}

// UnmarshalJSON accepts any role string and a null or missing content. The
// decoded message gets a fresh id unless it already carries one.
func (m *ChatMessage) UnmarshalJSON(data []byte) error {
	var w wireChatMessage
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("decoding chat message: %w", err)
	}

	m.Role = RoleFromString(w.Role).OrDefault()
	m.Content = ""
	if w.Content != nil {
		m.Content = *w.Content
	}
	m.Name = w.Name

	if m.id == uuid.Nil {
		m.id = defaultFactory.NewID()
	}
	return nil
}
