package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"redditleads/internal/clients/reddit"
	"redditleads/internal/observability"
	"redditleads/internal/pacing"
	"redditleads/internal/progress"
	"redditleads/internal/store"

	"github.com/google/uuid"
)

// Mode selects how posts are enumerated.
type Mode string

const (
	ModeExhaustive Mode = "exhaustive"
	ModeBounded    Mode = "bounded"
)

const (
	searchPageLimit       = 1000
	progressFlushInterval = 10
	deletedAuthor         = "[deleted]"
)

var (
	ErrCampaignNotFound       = errors.New("campaign not found")
	ErrUnauthorized           = errors.New("unauthorized access to campaign")
	ErrInvalidMode            = errors.New("invalid collection mode")
	ErrSubredditNotInCampaign = errors.New("subreddit is not part of the campaign")
	ErrProgressNotFound       = errors.New("no collection progress for subreddit")
)

// Config tunes a collection run
type Config struct {
	BoundedPostLimit int
	CourtesyDelay    time.Duration
}

// Result summarizes a finished collection run
type Result struct {
	TotalPosts     int `json:"total_posts"`
	ProcessedPosts int `json:"processed_posts"`
	Usernames      int `json:"usernames"`
}

type CollectorProcessor struct {
	store    CampaignStore
	reddit   RedditClient
	progress ProgressTracker
	cfg      Config
	logger   *observability.Logger
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) error
}

func New(store CampaignStore, reddit RedditClient, progress ProgressTracker, cfg Config, logger *observability.Logger) CollectorProcessor {
	if cfg.BoundedPostLimit <= 0 {
		cfg.BoundedPostLimit = searchPageLimit
	}
	return CollectorProcessor{
		store:    store,
		reddit:   reddit,
		progress: progress,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
		sleep:    pacing.Sleep,
	}
}

// ParseMode maps a request value onto a Mode. Empty means exhaustive.
func ParseMode(raw string) (Mode, error) {
	switch Mode(raw) {
	case "", ModeExhaustive:
		return ModeExhaustive, nil
	case ModeBounded:
		return ModeBounded, nil
	}
	return "", ErrInvalidMode
}

// Validate checks that the account may collect the subreddit for the campaign.
func (p *CollectorProcessor) Validate(ctx context.Context, accountID, campaignID uuid.UUID, subreddit string) error {
	_, err := p.resolveSubreddit(ctx, accountID, campaignID, subreddit)
	return err
}

// resolveSubreddit checks ownership and returns the subreddit name as the campaign stores it.
func (p *CollectorProcessor) resolveSubreddit(ctx context.Context, accountID, campaignID uuid.UUID, subreddit string) (string, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return "", fmt.Errorf("failed to get campaign: %w", err)
	}
	if campaign.AccountID != accountID {
		return "", ErrUnauthorized
	}
	entry, ok := campaign.Subreddits.Find(subreddit)
	if !ok {
		return "", ErrSubredditNotInCampaign
	}
	return entry.Name, nil
}

// Collect gathers every post and comment author of the subreddit and stores them as pending
// username records of the campaign. Progress is reported through the tracker as it goes.
func (p *CollectorProcessor) Collect(ctx context.Context, accountID, campaignID uuid.UUID, subreddit string, mode Mode) (Result, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "account_id", Value: accountID},
		observability.Field{Key: "campaign_id", Value: campaignID},
		observability.Field{Key: "subreddit", Value: subreddit},
		observability.Field{Key: "collect_mode", Value: string(mode)},
	)

	if mode != ModeExhaustive && mode != ModeBounded {
		return Result{}, ErrInvalidMode
	}
	subreddit, err := p.resolveSubreddit(ctx, accountID, campaignID, subreddit)
	if err != nil {
		return Result{}, err
	}

	key := progress.Key{AccountID: accountID, CampaignID: campaignID, Subreddit: subreddit}
	if err := p.progress.Start(ctx, key); err != nil {
		p.logger.Error(ctx, "failed to reset collection progress", err)
		return Result{}, fmt.Errorf("failed to reset progress: %w", err)
	}

	result, err := p.collect(ctx, key, mode)
	if err != nil {
		p.logger.Error(ctx, "username collection failed", err)
		// A cancelled run must still leave an error record behind for pollers
		if failErr := p.progress.Fail(context.WithoutCancel(ctx), key, err.Error()); failErr != nil {
			p.logger.Error(ctx, "failed to record collection error", failErr)
		}
		return result, err
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "total_posts", Value: result.TotalPosts},
		observability.Field{Key: "usernames", Value: result.Usernames},
	), "username collection completed")
	return result, nil
}

func (p *CollectorProcessor) collect(ctx context.Context, key progress.Key, mode Mode) (Result, error) {
	var (
		posts []reddit.Post
		err   error
	)
	if mode == ModeBounded {
		posts, err = p.reddit.TopPosts(ctx, key.Subreddit, "all", p.cfg.BoundedPostLimit)
	} else {
		posts, err = p.fetchAllPosts(ctx, key.Subreddit)
	}
	if err != nil {
		return Result{}, fmt.Errorf("failed to fetch posts: %w", err)
	}

	result := Result{TotalPosts: len(posts)}
	if err := p.progress.SetTotal(ctx, key, len(posts)); err != nil {
		return result, fmt.Errorf("failed to update progress: %w", err)
	}

	names := newUsernameSet()
	for i, post := range posts {
		names.add(post.Author)

		comments, err := p.reddit.Comments(ctx, post.ID)
		if err != nil {
			p.logger.Error(observability.WithFields(ctx,
				observability.Field{Key: "post_id", Value: post.ID},
			), "failed to fetch comments, skipping post", err)
		} else {
			walkAuthors(comments, names.add)
		}

		result.ProcessedPosts = i + 1
		if result.ProcessedPosts%progressFlushInterval == 0 || result.ProcessedPosts == len(posts) {
			if err := p.progress.SetProcessed(ctx, key, result.ProcessedPosts, names.len()); err != nil {
				return result, fmt.Errorf("failed to update progress: %w", err)
			}
		}
	}

	usernames := names.list()
	result.Usernames = len(usernames)
	if _, err := p.store.UpsertUsernameRecords(ctx, key.CampaignID, key.Subreddit, usernames); err != nil {
		return result, fmt.Errorf("failed to save usernames: %w", err)
	}
	if err := p.store.MarkSubredditCollected(ctx, key.CampaignID, key.Subreddit, len(usernames)); err != nil {
		return result, fmt.Errorf("failed to mark subreddit collected: %w", err)
	}
	if err := p.progress.Complete(ctx, key, len(usernames)); err != nil {
		return result, fmt.Errorf("failed to complete progress: %w", err)
	}
	return result, nil
}

type timeRange struct {
	after, before int64
}

// fetchAllPosts works around the 1000-result search cap by bisecting [0, now] until every
// window returns a partial page.
func (p *CollectorProcessor) fetchAllPosts(ctx context.Context, subreddit string) ([]reddit.Post, error) {
	var posts []reddit.Post
	seen := make(map[string]struct{})

	stack := []timeRange{{after: 0, before: p.now().Unix()}}
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if r.before-r.after < 1 {
			continue
		}

		page, err := p.reddit.SearchSubreddit(ctx, subreddit, reddit.SearchParams{
			Query:  fmt.Sprintf("timestamp:%d..%d", r.after, r.before),
			Syntax: "cloudsearch",
			Sort:   "new",
			Limit:  searchPageLimit,
		})
		if err != nil {
			return nil, err
		}

		p.logger.Debug(observability.WithFields(ctx,
			observability.Field{Key: "after", Value: r.after},
			observability.Field{Key: "before", Value: r.before},
			observability.Field{Key: "posts", Value: len(page)},
		), "fetched search window")

		if len(page) >= searchPageLimit {
			mid := (r.after + r.before) / 2
			// pushed in reverse so the lower half is searched first
			stack = append(stack, timeRange{after: mid + 1, before: r.before}, timeRange{after: r.after, before: mid})
			continue
		}

		for _, post := range page {
			if _, ok := seen[post.ID]; ok {
				continue
			}
			seen[post.ID] = struct{}{}
			posts = append(posts, post)
		}

		if err := p.sleep(ctx, p.cfg.CourtesyDelay); err != nil {
			return nil, err
		}
	}
	return posts, nil
}

// GetProgress returns the last reported state of a collection run.
func (p *CollectorProcessor) GetProgress(ctx context.Context, accountID, campaignID uuid.UUID, subreddit string) (progress.Record, error) {
	subreddit, err := p.resolveSubreddit(ctx, accountID, campaignID, subreddit)
	if err != nil {
		return progress.Record{}, err
	}
	record, err := p.progress.Get(ctx, progress.Key{AccountID: accountID, CampaignID: campaignID, Subreddit: subreddit})
	if err != nil {
		if errors.Is(err, progress.ErrNotFound) {
			return progress.Record{}, ErrProgressNotFound
		}
		p.logger.Error(ctx, "failed to get collection progress", err)
		return progress.Record{}, fmt.Errorf("failed to get progress: %w", err)
	}
	return record, nil
}
