package domain

import "time"

// MessageType is the payload kind of a chat entry.
type MessageType string

const (
	MessageText  MessageType = "text"
	MessageImage MessageType = "image"
	MessageAudio MessageType = "audio"
)

// ChatChannel separates the human thread from the AI-assisted one.
type ChatChannel string

const (
	ChatDirect ChatChannel = "direct"
	ChatAI     ChatChannel = "ai"
)

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser    Sender = "user"
	SenderAI      Sender = "ai"
	SenderTrainer Sender = "trainer"
)

// Message is one append-only chat entry. TraineeID names the trainee whose
// conversation thread the message belongs to, even when the sender is the
// trainer. Messages are never mutated or deleted; read state is tracked on
// the TraineeSummary, not here.
type Message struct {
	ID          string      `bson:"_id" json:"id"`
	Type        MessageType `bson:"type" json:"type"`
	ChatType    ChatChannel `bson:"chatType" json:"chat_type"`
	Text        string      `bson:"text,omitempty" json:"text,omitempty"`
	MediaKey    string      `bson:"mediaKey,omitempty" json:"media_key,omitempty"` // object-storage key for image/audio payloads
	Sender      Sender      `bson:"sender" json:"sender"`
	Timestamp   time.Time   `bson:"timestamp" json:"timestamp"`
	TraineeID   string      `bson:"traineeId" json:"trainee_id"`
	IsBroadcast bool        `bson:"isBroadcast,omitempty" json:"is_broadcast,omitempty"`
}
