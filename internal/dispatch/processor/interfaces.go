package processor

import (
	"context"
	"time"

	"redditleads/internal/store"

	"github.com/google/uuid"
)

// CampaignStore defines the database operations required by DispatchProcessor
type CampaignStore interface {
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	ListCampaignsByStatus(ctx context.Context, status string) ([]store.Campaign, error)
	ListPendingUsernameRecords(ctx context.Context, campaignID uuid.UUID, subreddit string, limit int) ([]store.UsernameRecord, error)
	MarkUsernameRecordSent(ctx context.Context, recordID uuid.UUID, at time.Time) error
	MarkUsernameRecordFailed(ctx context.Context, recordID uuid.UUID, at time.Time) error
	IncrementCampaignMessagesSent(ctx context.Context, campaignID uuid.UUID, count int, at time.Time) error
}

// MessageSender delivers a private message on Reddit
type MessageSender interface {
	ComposeMessage(ctx context.Context, to, subject, text string) error
}
