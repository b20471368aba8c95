package chat

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one chat bubble.
type Message struct {
	ID        string
	Text      string
	Sender    Sender
	Timestamp time.Time
}

// Conversation is the ordered message history. It is not safe for
// concurrent use.
type Conversation struct {
	messages []Message
	clock    func() time.Time
}

// NewConversation starts a history holding only the welcome message.
func NewConversation(clock func() time.Time) *Conversation {
	if clock == nil {
		clock = time.Now
	}
	c := &Conversation{clock: clock}
	c.messages = append(c.messages, Message{
		ID:        uuid.NewString(),
		Text:      WelcomeText,
		Sender:    SenderBot,
		Timestamp: clock(),
	})
	return c
}

// Send appends a user message. Blank input is ignored and reported
// with ok == false.
func (c *Conversation) Send(text string) (msg Message, ok bool) {
	if strings.TrimSpace(text) == "" {
		return Message{}, false
	}
	msg = Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    SenderUser,
		Timestamp: c.clock(),
	}
	c.messages = append(c.messages, msg)
	return msg, true
}

// Append records a bot message produced elsewhere, e.g. by a delayed reply.
func (c *Conversation) Append(msg Message) {
	c.messages = append(c.messages, msg)
}

// Messages returns a copy of the history, oldest first.
func (c *Conversation) Messages() []Message {
	return append([]Message(nil), c.messages...)
}

// Bot answers user messages after a fixed typing delay.
type Bot struct {
	Delay time.Duration
}

// DefaultDelay mirrors the assistant's simulated typing time.
const DefaultDelay = time.Second

// Compose builds the bot's answer to text, stamped at.
func (b Bot) Compose(text string, at time.Time) Message {
	return Message{
		ID:        uuid.NewString(),
		Text:      Reply(text),
		Sender:    SenderBot,
		Timestamp: at,
	}
}

// Respond waits for the bot's delay and returns its answer. If ctx ends
// first the timer is released and ctx.Err() is returned.
func (b Bot) Respond(ctx context.Context, text string) (Message, error) {
	if b.Delay <= 0 {
		if err := ctx.Err(); err != nil {
			return Message{}, err
		}
		return b.Compose(text, time.Now()), nil
	}

	timer := time.NewTimer(b.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Message{}, ctx.Err()
	case at := <-timer.C:
		return b.Compose(text, at), nil
	}
}
