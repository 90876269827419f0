package section

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/tutruong-dev/ba-portfolio-server/internal/assistant"
	"github.com/tutruong-dev/ba-portfolio-server/internal/models"
)

const chatGreeting = "Hi! I'm Tu's AI Assistant. Ask me anything about her skills or projects!"

// Chat presents the floating chat widget: an append-only transcript with
// monotonic ids, seeded with the assistant greeting. Nothing is persisted;
// the transcript lives for the page view.
type Chat struct {
	mu       sync.Mutex
	bridge   *assistant.Bridge
	nextID   int64
	messages []models.ChatMessage
	open     bool
	busy     bool
}

// ChatView is the widget snapshot.
type ChatView struct {
	Open     bool                 `json:"open"`
	Busy     bool                 `json:"busy"`
	Messages []models.ChatMessage `json:"messages"`
}

func NewChat(b *assistant.Bridge) *Chat {
	return &Chat{
		bridge: b,
		nextID: 2,
		messages: []models.ChatMessage{
			{ID: 1, Text: chatGreeting, Sender: models.SenderAssistant},
		},
	}
}

func (c *Chat) SetOpen(open bool) {
	c.mu.Lock()
	c.open = open
	c.mu.Unlock()
}

// Send appends the visitor's message, asks the bridge and appends the reply.
// The bridge never fails, so the only error here is a blank message.
func (c *Chat) Send(ctx context.Context, text string) (models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.ChatMessage{}, fmt.Errorf("chat: empty message")
	}

	c.mu.Lock()
	c.append(text, models.SenderUser)
	c.busy = true
	c.mu.Unlock()

	replyText := c.bridge.Ask(ctx, text)

	c.mu.Lock()
	defer c.mu.Unlock()
	reply := c.append(replyText, models.SenderAssistant)
	c.busy = false
	return reply, nil
}

// append must be called with the lock held.
func (c *Chat) append(text string, sender models.ChatSender) models.ChatMessage {
	msg := models.ChatMessage{ID: c.nextID, Text: text, Sender: sender}
	c.nextID++
	c.messages = append(c.messages, msg)
	return msg
}

func (c *Chat) Snapshot() ChatView {
	c.mu.Lock()
	defer c.mu.Unlock()

	msgs := make([]models.ChatMessage, len(c.messages))
	copy(msgs, c.messages)
	return ChatView{Open: c.open, Busy: c.busy, Messages: msgs}
}
