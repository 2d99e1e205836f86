package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	AccountID       uuid.UUID
	Name            string
	MessageSubject  string
	MessageTemplate string
	DailyLimit      int
	Subreddits      Subreddits
}

const campaignColumns = `id, account_id, name, status, message_subject, message_template, daily_limit, subreddits,
	messages_sent, replies, total_reach, positive_responses, negative_responses, neutral_responses,
	last_active, created_at, updated_at, deleted_at`

var sqlCreateCampaign = `
INSERT INTO campaigns (account_id, name, status, message_subject, message_template, daily_limit, subreddits)
VALUES ($1, $2, 'paused', $3, $4, $5, $6)
RETURNING ` + campaignColumns

// CreateCampaign creates a new paused campaign with zeroed stats
func (s *Store) CreateCampaign(ctx context.Context, params CreateCampaignParams) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlCreateCampaign,
		params.AccountID,
		params.Name,
		params.MessageSubject,
		params.MessageTemplate,
		params.DailyLimit,
		params.Subreddits)
	if err != nil {
		return Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}
	return campaign, nil
}

var sqlGetCampaignByID = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE id = $1 AND deleted_at IS NULL
`

// GetCampaignByID retrieves a campaign by ID
func (s *Store) GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaignByID, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		return Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}

var sqlListCampaignsByAccount = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE account_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
`

// ListCampaignsByAccount retrieves all campaigns owned by an account, newest first
func (s *Store) ListCampaignsByAccount(ctx context.Context, accountID uuid.UUID) ([]Campaign, error) {
	campaigns := []Campaign{}
	err := s.db.SelectContext(ctx, &campaigns, sqlListCampaignsByAccount, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

var sqlListCampaignsByStatus = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE status = $1 AND deleted_at IS NULL
ORDER BY created_at ASC
`

// ListCampaignsByStatus retrieves campaigns in a status across all accounts
func (s *Store) ListCampaignsByStatus(ctx context.Context, status string) ([]Campaign, error) {
	campaigns := []Campaign{}
	err := s.db.SelectContext(ctx, &campaigns, sqlListCampaignsByStatus, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns by status: %w", err)
	}
	return campaigns, nil
}

var sqlUpdateCampaignStatus = `
UPDATE campaigns
SET status = $2, updated_at = NOW()
WHERE id = $1 AND deleted_at IS NULL
RETURNING ` + campaignColumns

// UpdateCampaignStatus sets a campaign running or paused
func (s *Store) UpdateCampaignStatus(ctx context.Context, campaignID uuid.UUID, status string) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlUpdateCampaignStatus, campaignID, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		return Campaign{}, fmt.Errorf("failed to update campaign status: %w", err)
	}
	return campaign, nil
}

const sqlSelectCampaignSubredditsForUpdate = `
SELECT subreddits FROM campaigns WHERE id = $1 AND deleted_at IS NULL FOR UPDATE
`

const sqlUpdateCampaignSubreddits = `
UPDATE campaigns SET subreddits = $2, updated_at = NOW() WHERE id = $1
`

// MarkSubredditCollected flags a subreddit entry as collected and records its username total.
// A subreddit that is not in the campaign yet is appended.
func (s *Store) MarkSubredditCollected(ctx context.Context, campaignID uuid.UUID, subreddit string, total int) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var subreddits Subreddits
	if err := tx.GetContext(ctx, &subreddits, sqlSelectCampaignSubredditsForUpdate, campaignID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to lock campaign subreddits: %w", err)
	}

	found := false
	for i := range subreddits {
		if strings.EqualFold(subreddits[i].Name, subreddit) {
			subreddits[i].UsernamesCollected = true
			subreddits[i].TotalUsernames = total
			found = true
		}
	}
	if !found {
		subreddits = append(subreddits, SubredditEntry{
			Name:               subreddit,
			UsernamesCollected: true,
			TotalUsernames:     total,
		})
	}

	if _, err := tx.ExecContext(ctx, sqlUpdateCampaignSubreddits, campaignID, subreddits); err != nil {
		return fmt.Errorf("failed to update campaign subreddits: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit subreddit update: %w", err)
	}
	return nil
}

const sqlIncrementCampaignMessagesSent = `
UPDATE campaigns
SET messages_sent = messages_sent + $2,
	total_reach = total_reach + $2,
	last_active = $3,
	updated_at = NOW()
WHERE id = $1
`

// IncrementCampaignMessagesSent atomically adds to the sent counter and stamps last activity
func (s *Store) IncrementCampaignMessagesSent(ctx context.Context, campaignID uuid.UUID, count int, at time.Time) error {
	res, err := s.db.ExecContext(ctx, sqlIncrementCampaignMessagesSent, campaignID, count, at)
	if err != nil {
		return fmt.Errorf("failed to increment messages sent: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
