package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"redditleads/internal/clients/reddit"
	"redditleads/internal/observability"
	"redditleads/internal/pacing"
	"redditleads/internal/store"

	"github.com/google/uuid"
)

const (
	DefaultBatchSize    = 10
	DefaultMessageDelay = 1200 * time.Millisecond

	placeholderUsername  = "{{username}}"
	placeholderSubreddit = "{{subreddit}}"
)

var (
	ErrCampaignNotFound      = errors.New("campaign not found")
	ErrUnauthorized          = errors.New("unauthorized access to campaign")
	ErrCampaignNotRunning    = errors.New("campaign is not running")
	ErrNoCollectedSubreddits = errors.New("campaign has no subreddit with collected usernames")
)

// Config tunes a dispatch run
type Config struct {
	BatchSize    int
	MessageDelay time.Duration
}

// Result counts the outcome of one campaign's dispatch run
type Result struct {
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
	Attempted int `json:"attempted"`
}

// SweepResult aggregates a DispatchRunning pass over every running campaign
type SweepResult struct {
	Campaigns int `json:"campaigns"`
	Skipped   int `json:"skipped"`
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
}

type DispatchProcessor struct {
	store  CampaignStore
	sender MessageSender
	cfg    Config
	logger *observability.Logger
	now    func() time.Time
	sleep  func(ctx context.Context, d time.Duration) error
}

func New(store CampaignStore, sender MessageSender, cfg Config, logger *observability.Logger) DispatchProcessor {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.MessageDelay <= 0 {
		cfg.MessageDelay = DefaultMessageDelay
	}
	return DispatchProcessor{
		store:  store,
		sender: sender,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
		sleep:  pacing.Sleep,
	}
}

// Dispatch sends up to one batch of templated messages for a campaign the account owns.
func (p *DispatchProcessor) Dispatch(ctx context.Context, accountID, campaignID uuid.UUID) (Result, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "account_id", Value: accountID},
		observability.Field{Key: "campaign_id", Value: campaignID},
	)

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Result{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return Result{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	if campaign.AccountID != accountID {
		return Result{}, ErrUnauthorized
	}
	return p.dispatchCampaign(ctx, campaign)
}

// DispatchRunning runs one batch for every running campaign across all accounts.
// Campaigns failing a precondition are logged and skipped.
func (p *DispatchProcessor) DispatchRunning(ctx context.Context) (SweepResult, error) {
	campaigns, err := p.store.ListCampaignsByStatus(ctx, store.CampaignStatusRunning)
	if err != nil {
		p.logger.Error(ctx, "failed to list running campaigns", err)
		return SweepResult{}, fmt.Errorf("failed to list running campaigns: %w", err)
	}

	var sweep SweepResult
	for _, campaign := range campaigns {
		if err := ctx.Err(); err != nil {
			return sweep, err
		}

		campaignCtx := observability.WithFields(ctx,
			observability.Field{Key: "account_id", Value: campaign.AccountID},
			observability.Field{Key: "campaign_id", Value: campaign.ID},
		)

		result, err := p.dispatchCampaign(campaignCtx, campaign)
		sweep.Sent += result.Sent
		sweep.Failed += result.Failed
		if err != nil {
			if errors.Is(err, ErrNoCollectedSubreddits) || errors.Is(err, ErrCampaignNotRunning) {
				p.logger.Warn(campaignCtx, "skipping campaign: "+err.Error())
				sweep.Skipped++
				continue
			}
			if ctx.Err() != nil {
				return sweep, ctx.Err()
			}
			p.logger.Error(campaignCtx, "campaign dispatch failed", err)
			sweep.Skipped++
			continue
		}
		sweep.Campaigns++
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "campaigns", Value: sweep.Campaigns},
		observability.Field{Key: "skipped", Value: sweep.Skipped},
		observability.Field{Key: "sent", Value: sweep.Sent},
	), "dispatch sweep completed")
	return sweep, nil
}

func (p *DispatchProcessor) dispatchCampaign(ctx context.Context, campaign store.Campaign) (Result, error) {
	if campaign.Status != store.CampaignStatusRunning {
		return Result{}, ErrCampaignNotRunning
	}
	subreddits := campaign.Subreddits.Collected()
	if len(subreddits) == 0 {
		return Result{}, ErrNoCollectedSubreddits
	}

	result, loopErr := p.sendBatch(ctx, campaign, subreddits)

	if result.Sent > 0 {
		// sends already happened, so record them even if the run was cancelled
		if err := p.store.IncrementCampaignMessagesSent(context.WithoutCancel(ctx), campaign.ID, result.Sent, p.now()); err != nil {
			p.logger.Error(ctx, "failed to update campaign stats", err)
			if loopErr == nil {
				loopErr = fmt.Errorf("failed to update campaign stats: %w", err)
			}
		}
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "sent", Value: result.Sent},
		observability.Field{Key: "failed", Value: result.Failed},
		observability.Field{Key: "attempted", Value: result.Attempted},
	), "campaign dispatch finished")
	return result, loopErr
}

func (p *DispatchProcessor) sendBatch(ctx context.Context, campaign store.Campaign, subreddits []store.SubredditEntry) (Result, error) {
	var result Result
	batch := p.cfg.BatchSize

	for _, subreddit := range subreddits {
		if result.Sent >= batch {
			break
		}

		records, err := p.store.ListPendingUsernameRecords(ctx, campaign.ID, subreddit.Name, batch-result.Sent)
		if err != nil {
			return result, fmt.Errorf("failed to list pending usernames for %s: %w", subreddit.Name, err)
		}

		for _, record := range records {
			recordCtx := observability.WithFields(ctx,
				observability.Field{Key: "subreddit", Value: subreddit.Name},
				observability.Field{Key: "username", Value: record.Username},
			)

			if record.Username == "" {
				p.logger.Warn(recordCtx, "username record has no username, marking failed")
				if err := p.markFailed(recordCtx, record.ID); err != nil {
					return result, err
				}
				result.Failed++
				result.Attempted++
				continue
			}

			subject := renderTemplate(campaign.MessageSubject, record.Username, subreddit.Name)
			body := renderTemplate(campaign.MessageTemplate, record.Username, subreddit.Name)

			sent, backedOff, err := p.send(recordCtx, record.Username, subject, body)
			if err != nil {
				return result, err
			}

			result.Attempted++
			if sent {
				if err := p.markSent(recordCtx, record.ID); err != nil {
					return result, err
				}
				result.Sent++
			} else {
				if err := p.markFailed(recordCtx, record.ID); err != nil {
					return result, err
				}
				result.Failed++
			}

			if result.Sent >= batch {
				break
			}
			if !backedOff {
				if err := p.sleep(ctx, p.cfg.MessageDelay); err != nil {
					return result, err
				}
			}
		}
	}
	return result, nil
}

// send composes one message, retrying exactly once after a rate-limit backoff.
// A non-nil error means the run must stop (context cancelled during the backoff).
func (p *DispatchProcessor) send(ctx context.Context, to, subject, body string) (sent, backedOff bool, err error) {
	sendErr := p.sender.ComposeMessage(ctx, to, subject, body)
	if sendErr == nil {
		return true, false, nil
	}

	wait, limited := reddit.RateLimitWait(sendErr)
	if !limited {
		p.logger.Error(ctx, "failed to send message", sendErr)
		return false, false, nil
	}

	wait += time.Second
	p.logger.Warn(observability.WithFields(ctx,
		observability.Field{Key: "wait_seconds", Value: wait.Seconds()},
	), "rate limited by reddit, waiting before retry")
	if err := p.sleep(ctx, wait); err != nil {
		return false, true, err
	}

	if retryErr := p.sender.ComposeMessage(ctx, to, subject, body); retryErr != nil {
		p.logger.Error(ctx, "failed to send message after rate-limit wait", retryErr)
		return false, true, nil
	}
	return true, true, nil
}

func (p *DispatchProcessor) markSent(ctx context.Context, recordID uuid.UUID) error {
	err := p.store.MarkUsernameRecordSent(ctx, recordID, p.now())
	if errors.Is(err, store.ErrNotFound) {
		p.logger.Warn(ctx, "username record left pending state before it could be marked sent")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to mark username record sent: %w", err)
	}
	return nil
}

func (p *DispatchProcessor) markFailed(ctx context.Context, recordID uuid.UUID) error {
	err := p.store.MarkUsernameRecordFailed(ctx, recordID, p.now())
	if errors.Is(err, store.ErrNotFound) {
		p.logger.Warn(ctx, "username record left pending state before it could be marked failed")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to mark username record failed: %w", err)
	}
	return nil
}

// renderTemplate replaces every {{username}} and {{subreddit}} placeholder.
func renderTemplate(template, username, subreddit string) string {
	return strings.NewReplacer(
		placeholderUsername, username,
		placeholderSubreddit, subreddit,
	).Replace(template)
}
