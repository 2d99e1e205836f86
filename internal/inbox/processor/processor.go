package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"redditleads/internal/clients/reddit"
	"redditleads/internal/conversations"
	"redditleads/internal/observability"

	"github.com/google/uuid"
)

const (
	InboxFetchLimit     = 1000
	DefaultMessageLimit = 500

	privateMessagePrefix = reddit.KindMessage + "_"
)

var (
	ErrEmptyReply  = errors.New("reply text is empty")
	ErrInvalidID   = errors.New("invalid message id")
	ErrRateLimited = errors.New("reddit rate limit reached")
)

// SyncResult counts what a sync pass did
type SyncResult struct {
	Synced     int `json:"synced"`
	Received   int `json:"received"`
	Sent       int `json:"sent"`
	MarkedRead int `json:"marked_read"`
}

type InboxProcessor struct {
	reddit     RedditClient
	store      ConversationStore
	replies    ReplyRecorder
	classifier SentimentClassifier
	logger     *observability.Logger
	now        func() time.Time
}

// New builds the processor. classifier may be nil, in which case replies are stored unlabelled.
func New(reddit RedditClient, store ConversationStore, replies ReplyRecorder, classifier SentimentClassifier, logger *observability.Logger) InboxProcessor {
	return InboxProcessor{
		reddit:     reddit,
		store:      store,
		replies:    replies,
		classifier: classifier,
		logger:     logger,
		now:        time.Now,
	}
}

// Sync mirrors the Reddit inbox into the account's conversation log and marks new
// incoming messages read. Re-running over the same inbox never duplicates messages.
func (p *InboxProcessor) Sync(ctx context.Context, accountID uuid.UUID) (SyncResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "account_id", Value: accountID})

	items, err := p.reddit.Inbox(ctx, InboxFetchLimit)
	if err != nil {
		p.logger.Error(ctx, "failed to fetch inbox", err)
		return SyncResult{}, p.wrapRedditError("failed to fetch inbox", err)
	}

	self := p.reddit.Username()
	var result SyncResult
	for _, item := range items {
		if !isPrivateMessage(item) {
			continue
		}

		sentBySelf := strings.EqualFold(item.Author, self)
		counterpart := item.Author
		if sentBySelf {
			counterpart = item.Dest
		}

		msgCtx := observability.WithFields(ctx,
			observability.Field{Key: "message_id", Value: item.ID},
			observability.Field{Key: "counterpart", Value: counterpart},
		)

		msg := conversations.Message{
			AccountID:   accountID.String(),
			Counterpart: counterpart,
			MessageID:   item.ID,
			Body:        item.Body,
			Author:      item.Author,
			Recipient:   item.Dest,
			CreatedAt:   fromUnix(item.CreatedUTC),
			ParentID:    item.ParentID,
		}

		unread := !sentBySelf && item.New
		if unread {
			msg.Sentiment = p.classify(msgCtx, item.Body)
		}

		if _, err := p.store.Upsert(ctx, msg); err != nil {
			p.logger.Error(msgCtx, "failed to store message", err)
			return result, fmt.Errorf("failed to store message %s: %w", item.ID, err)
		}
		result.Synced++
		if sentBySelf {
			result.Sent++
		} else {
			result.Received++
		}

		if !unread {
			continue
		}

		p.logger.Info(observability.WithFields(msgCtx,
			observability.Field{Key: "sentiment", Value: msg.Sentiment},
		), "new reply received")

		if _, err := p.replies.RecordReply(ctx, accountID, counterpart, msg.Sentiment); err != nil {
			p.logger.Error(msgCtx, "failed to record reply on campaigns", err)
		}

		if err := p.reddit.MarkRead(ctx, item.Name); err != nil {
			p.logger.Error(msgCtx, "failed to mark message read", err)
			continue
		}
		result.MarkedRead++
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "synced", Value: result.Synced},
		observability.Field{Key: "received", Value: result.Received},
		observability.Field{Key: "marked_read", Value: result.MarkedRead},
	), "inbox sync completed")
	return result, nil
}

func (p *InboxProcessor) classify(ctx context.Context, body string) string {
	if p.classifier == nil {
		return ""
	}
	label, err := p.classifier.ClassifyReply(ctx, body)
	if err != nil {
		p.logger.Error(ctx, "failed to classify reply", err)
		return ""
	}
	return label
}

// Reply answers a private message and stores the reply under the recipient's conversation.
func (p *InboxProcessor) Reply(ctx context.Context, accountID uuid.UUID, messageID, text string) (conversations.Message, error) {
	messageID = strings.TrimPrefix(strings.TrimSpace(messageID), privateMessagePrefix)
	if messageID == "" {
		return conversations.Message{}, ErrInvalidID
	}
	if strings.TrimSpace(text) == "" {
		return conversations.Message{}, ErrEmptyReply
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "account_id", Value: accountID},
		observability.Field{Key: "parent_message_id", Value: messageID},
	)

	reply, err := p.reddit.Reply(ctx, messageID, text)
	if err != nil {
		p.logger.Error(ctx, "failed to send reply", err)
		return conversations.Message{}, p.wrapRedditError("failed to send reply", err)
	}

	author := reply.Author
	if author == "" {
		author = p.reddit.Username()
	}
	msg := conversations.Message{
		AccountID:   accountID.String(),
		Counterpart: reply.Dest,
		MessageID:   reply.ID,
		Body:        text,
		Author:      author,
		Recipient:   reply.Dest,
		CreatedAt:   fromUnix(reply.CreatedUTC),
		ParentID:    messageID,
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = p.now().UTC()
	}

	if _, err := p.store.Upsert(ctx, msg); err != nil {
		p.logger.Error(ctx, "failed to store reply", err)
		return conversations.Message{}, fmt.Errorf("failed to store reply: %w", err)
	}
	return msg, nil
}

// ListConversations returns one summary per counterpart, most recent first.
func (p *InboxProcessor) ListConversations(ctx context.Context, accountID uuid.UUID) ([]conversations.Summary, error) {
	summaries, err := p.store.ListConversations(ctx, accountID.String())
	if err != nil {
		p.logger.Error(ctx, "failed to list conversations", err)
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return summaries, nil
}

// ListMessages returns a conversation oldest first.
func (p *InboxProcessor) ListMessages(ctx context.Context, accountID uuid.UUID, counterpart string, limit int) ([]conversations.Message, error) {
	if limit <= 0 || limit > DefaultMessageLimit {
		limit = DefaultMessageLimit
	}
	messages, err := p.store.ListMessages(ctx, accountID.String(), counterpart, int64(limit))
	if err != nil {
		p.logger.Error(ctx, "failed to list messages", err)
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

func (p *InboxProcessor) wrapRedditError(msg string, err error) error {
	if _, limited := reddit.RateLimitWait(err); limited {
		return fmt.Errorf("%s: %w: %v", msg, ErrRateLimited, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// isPrivateMessage filters out comment replies and mentions that share the inbox.
func isPrivateMessage(item reddit.PrivateMessage) bool {
	return strings.HasPrefix(item.Name, privateMessagePrefix) && item.Dest != ""
}

func fromUnix(ts float64) time.Time {
	if ts <= 0 {
		return time.Time{}
	}
	return time.Unix(int64(ts), 0).UTC()
}
