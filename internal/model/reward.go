package model

// Reward is a static achievement entry. Earned status is reference data;
// there is no unlock logic.
type Reward struct {
	ID          int
	Title       string
	Description string
	Earned      bool
}

// ChatSender identifies who wrote a chat message.
type ChatSender int

const (
	SenderUser ChatSender = iota
	SenderAssistant
)

// ChatMessage is one entry in the assistant transcript.
type ChatMessage struct {
	ID     string
	Text   string
	Sender ChatSender
}
