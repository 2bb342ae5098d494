package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationOrderAndLookup(t *testing.T) {
	system := NewChatMessage(RoleSystem, "be brief")
	conv := NewConversation(system, nil)
	user := conv.AppendNew(RoleUser, "hi")
	reply := conv.AppendNew(RoleAssistant, "hello")

	require.Equal(t, 3, conv.Len())
	assert.Equal(t, []*ChatMessage{system, user, reply}, conv.Messages())
	assert.Equal(t, 1, conv.IndexOf(user.ID()))
	assert.Equal(t, -1, conv.IndexOf(uuid.New()))

	found, ok := conv.Find(reply.ID())
	require.True(t, ok)
	assert.Same(t, reply, found)

	last, ok := conv.Last()
	require.True(t, ok)
	assert.Same(t, reply, last)
}

func TestConversationUpdate(t *testing.T) {
	conv := NewConversation()
	m := conv.AppendNew(RoleUser, "draft")

	require.NoError(t, conv.Update(m.ID(), func(m *ChatMessage) {
		m.Content = "final"
		m.Name = "alice"
	}))
	assert.Equal(t, "final", m.Content)
	assert.Equal(t, "alice", m.Name)

	err := conv.Update(uuid.New(), func(*ChatMessage) { t.Fatal("must not be called") })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConversationRemove(t *testing.T) {
	conv := NewConversation()
	a := conv.AppendNew(RoleUser, "a")
	b := conv.AppendNew(RoleAssistant, "b")
	c := conv.AppendNew(RoleUser, "c")

	require.NoError(t, conv.Remove(b.ID()))
	assert.Equal(t, []*ChatMessage{a, c}, conv.Messages())
	assert.ErrorIs(t, conv.Remove(b.ID()), ErrNotFound)

	conv.Clear()
	assert.Zero(t, conv.Len())
	_, ok := conv.Last()
	assert.False(t, ok)
}

func TestConversationMessagesIsACopy(t *testing.T) {
	conv := NewConversation()
	conv.AppendNew(RoleUser, "a")

	msgs := conv.Messages()
	msgs[0] = nil

	m, ok := conv.Last()
	require.True(t, ok)
	assert.NotNil(t, m)
}

func TestConversationJSON(t *testing.T) {
	conv := NewConversation()
	conv.AppendNew(RoleSystem, "rules")
	conv.Append(&ChatMessage{Role: RoleUser, Content: "hi", Name: "bob"})

	data, err := json.Marshal(conv)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"role":"system","content":"rules"},
		{"role":"user","content":"hi","name":"bob"}
	]`, string(data))

	var decoded Conversation
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, 2, decoded.Len())

	msgs := decoded.Messages()
	assert.Equal(t, RoleSystem, msgs[0].Role)
	assert.Equal(t, "bob", msgs[1].Name)
	assert.NotEqual(t, msgs[0].ID(), msgs[1].ID())

	empty, err := json.Marshal(NewConversation())
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(empty))
}

func TestConversationClone(t *testing.T) {
	conv := NewConversation()
	m := conv.AppendNew(RoleUser, "a")

	clone := conv.Clone()
	require.NoError(t, clone.Update(m.ID(), func(m *ChatMessage) { m.Content = "b" }))
	clone.AppendNew(RoleAssistant, "c")

	assert.Equal(t, "a", m.Content)
	assert.Equal(t, 1, conv.Len())
	assert.Equal(t, 2, clone.Len())
}
