package processor

import (
	"context"

	"redditleads/internal/clients/reddit"
	"redditleads/internal/progress"
	"redditleads/internal/store"

	"github.com/google/uuid"
)

// CampaignStore defines the database operations required by CollectorProcessor
type CampaignStore interface {
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	UpsertUsernameRecords(ctx context.Context, campaignID uuid.UUID, subreddit string, usernames []string) (int, error)
	MarkSubredditCollected(ctx context.Context, campaignID uuid.UUID, subreddit string, total int) error
}

// RedditClient defines the Reddit reads a collection run makes
type RedditClient interface {
	SearchSubreddit(ctx context.Context, subreddit string, params reddit.SearchParams) ([]reddit.Post, error)
	TopPosts(ctx context.Context, subreddit, period string, limit int) ([]reddit.Post, error)
	Comments(ctx context.Context, postID string) ([]*reddit.Comment, error)
}

// ProgressTracker persists the pollable state of a collection run
type ProgressTracker interface {
	Start(ctx context.Context, key progress.Key) error
	SetTotal(ctx context.Context, key progress.Key, total int) error
	SetProcessed(ctx context.Context, key progress.Key, processed, collected int) error
	Complete(ctx context.Context, key progress.Key, collected int) error
	Fail(ctx context.Context, key progress.Key, message string) error
	Get(ctx context.Context, key progress.Key) (progress.Record, error)
}
