package processor

import (
	"context"

	"redditleads/internal/clients/reddit"
	"redditleads/internal/conversations"

	"github.com/google/uuid"
)

// RedditClient defines the inbox operations of the configured Reddit account
type RedditClient interface {
	Username() string
	Inbox(ctx context.Context, limit int) ([]reddit.PrivateMessage, error)
	MarkRead(ctx context.Context, fullname string) error
	Reply(ctx context.Context, messageID, text string) (reddit.PrivateMessage, error)
}

// ConversationStore defines the conversation log operations required by InboxProcessor
type ConversationStore interface {
	Upsert(ctx context.Context, msg conversations.Message) (bool, error)
	ListConversations(ctx context.Context, accountID string) ([]conversations.Summary, error)
	ListMessages(ctx context.Context, accountID, counterpart string, limit int64) ([]conversations.Message, error)
}

// ReplyRecorder credits campaigns whose recipients answered
type ReplyRecorder interface {
	RecordReply(ctx context.Context, accountID uuid.UUID, username, sentiment string) (int, error)
}

// SentimentClassifier labels a reply as positive, negative or neutral
type SentimentClassifier interface {
	ClassifyReply(ctx context.Context, body string) (string, error)
}
