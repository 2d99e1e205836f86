package processor

import (
	"context"

	"redditleads/internal/store"

	"github.com/google/uuid"
)

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	CreateCampaign(ctx context.Context, params store.CreateCampaignParams) (store.Campaign, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	ListCampaignsByAccount(ctx context.Context, accountID uuid.UUID) ([]store.Campaign, error)
	UpdateCampaignStatus(ctx context.Context, campaignID uuid.UUID, status string) (store.Campaign, error)
	UpsertUsernameRecords(ctx context.Context, campaignID uuid.UUID, subreddit string, usernames []string) (int, error)
	MarkSubredditCollected(ctx context.Context, campaignID uuid.UUID, subreddit string, total int) error
	ListUsernameRecords(ctx context.Context, params store.ListUsernameRecordsParams) ([]store.UsernameRecord, int, error)
}
