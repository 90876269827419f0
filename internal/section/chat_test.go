package section

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutruong-dev/ba-portfolio-server/internal/assistant"
	"github.com/tutruong-dev/ba-portfolio-server/internal/models"
)

type scriptedProvider struct {
	reply string
	err   error
}

func (s *scriptedProvider) Generate(context.Context, string, string) (string, error) {
	return s.reply, s.err
}

func TestChatSeededWithGreeting(t *testing.T) {
	c := NewChat(assistant.NewBridge(nil))

	v := c.Snapshot()
	require.Len(t, v.Messages, 1)
	assert.Equal(t, int64(1), v.Messages[0].ID)
	assert.Equal(t, models.SenderAssistant, v.Messages[0].Sender)
	assert.False(t, v.Open)
}

func TestChatSendAppendsBothSides(t *testing.T) {
	c := NewChat(assistant.NewBridge(&scriptedProvider{reply: "She knows SQL and BPMN."}))

	reply, err := c.Send(context.Background(), "What are her skills?")
	require.NoError(t, err)

	assert.Equal(t, "She knows SQL and BPMN.", reply.Text)
	assert.Equal(t, models.SenderAssistant, reply.Sender)

	msgs := c.Snapshot().Messages
	require.Len(t, msgs, 3)
	assert.Equal(t, models.SenderUser, msgs[1].Sender)
	assert.Equal(t, "What are her skills?", msgs[1].Text)
	// ids stay monotonic
	assert.Equal(t, int64(2), msgs[1].ID)
	assert.Equal(t, int64(3), msgs[2].ID)
}

func TestChatSendProviderFailureStillReplies(t *testing.T) {
	c := NewChat(assistant.NewBridge(&scriptedProvider{err: errors.New("quota")}))

	reply, err := c.Send(context.Background(), "hello")
	require.NoError(t, err)

	assert.Equal(t, assistant.MsgTroubleReaching, reply.Text)
}

func TestChatSendRejectsBlankMessages(t *testing.T) {
	c := NewChat(assistant.NewBridge(nil))

	_, err := c.Send(context.Background(), "   ")
	assert.Error(t, err)
	assert.Len(t, c.Snapshot().Messages, 1, "nothing appended")
}

func TestChatOpenToggle(t *testing.T) {
	c := NewChat(assistant.NewBridge(nil))

	c.SetOpen(true)
	assert.True(t, c.Snapshot().Open)
	c.SetOpen(false)
	assert.False(t, c.Snapshot().Open)
}
