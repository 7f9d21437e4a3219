// Package assistant keeps the chat transcript and produces the assistant's
// canned reply. The reply is delayed by the caller's event loop; a reply
// scheduled before the chat panel closes still lands in the transcript.
package assistant

import (
	"strings"
	"time"

	"github.com/evalizada/manat/internal/model"
)

// ReplyDelay is how long after a user message the reply arrives.
const ReplyDelay = time.Second

const (
	greeting    = "Hello! I'm your AI assistant. How can I help you today?"
	cannedReply = "I understand your request. I'm here to assist you with your spendings and subscriptions."
)

// Transcript is the ordered chat history plus the count of replies still in
// flight.
type Transcript struct {
	messages []model.ChatMessage
	pending  int
}

// New returns a transcript seeded with the assistant greeting.
func New() *Transcript {
	return &Transcript{
		messages: []model.ChatMessage{
			{ID: model.NewID(), Text: greeting, Sender: model.SenderAssistant},
		},
	}
}

// Send appends a user message and schedules one reply. Blank input is
// ignored and reported with false.
func (t *Transcript) Send(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	t.messages = append(t.messages, model.ChatMessage{
		ID:     model.NewID(),
		Text:   text,
		Sender: model.SenderUser,
	})
	t.pending++
	return true
}

// Reply lands one scheduled assistant reply. Calling it with nothing pending
// is a no-op so stray timer ticks are harmless.
func (t *Transcript) Reply() bool {
	if t.pending == 0 {
		return false
	}
	t.pending--
	t.messages = append(t.messages, model.ChatMessage{
		ID:     model.NewID(),
		Text:   cannedReply,
		Sender: model.SenderAssistant,
	})
	return true
}

// Messages returns a snapshot of the transcript in order.
func (t *Transcript) Messages() []model.ChatMessage {
	out := make([]model.ChatMessage, len(t.messages))
	copy(out, t.messages)
	return out
}

// Pending reports how many replies are still in flight.
func (t *Transcript) Pending() int { return t.pending }
