package models

type MessageType string

const (
	MessageUser MessageType = "user"
	MessageAI   MessageType = "ai"
)

// ChatMessage is one entry of the append-only chat history.
type ChatMessage struct {
	Type MessageType `json:"type"`
	Text string      `json:"text"`
}

func (t MessageType) Valid() bool {
	return t == MessageUser || t == MessageAI
}
