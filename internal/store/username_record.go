package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// usernameInsertChunk bounds the rows per INSERT so the statement stays under the bind-parameter limit
const usernameInsertChunk = 1000

const usernameRecordColumns = `id, campaign_id, subreddit, username, status, last_attempted_at, last_messaged_at, received_reply, created_at`

// UpsertUsernameRecords inserts a pending record per username. Existing records keep their outreach state.
// Returns the number of newly inserted records.
func (s *Store) UpsertUsernameRecords(ctx context.Context, campaignID uuid.UUID, subreddit string, usernames []string) (int, error) {
	if len(usernames) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	inserted := 0
	for start := 0; start < len(usernames); start += usernameInsertChunk {
		end := min(start+usernameInsertChunk, len(usernames))
		query, args := buildUsernameInsert(campaignID, subreddit, usernames[start:end])

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("failed to insert username records: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to read affected rows: %w", err)
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit username records: %w", err)
	}
	return inserted, nil
}

func buildUsernameInsert(campaignID uuid.UUID, subreddit string, usernames []string) (string, []interface{}) {
	var b strings.Builder
	b.WriteString("INSERT INTO username_records (campaign_id, subreddit, username) VALUES ")

	args := make([]interface{}, 0, len(usernames)+2)
	args = append(args, campaignID, subreddit)
	for i, username := range usernames {
		if i > 0 {
			b.WriteString(", ")
		}
		args = append(args, username)
		fmt.Fprintf(&b, "($1, $2, $%d)", len(args))
	}
	b.WriteString(" ON CONFLICT (campaign_id, subreddit, username) DO NOTHING")
	return b.String(), args
}

var sqlListPendingUsernameRecords = `
SELECT ` + usernameRecordColumns + `
FROM username_records
WHERE campaign_id = $1 AND subreddit = $2 AND status = 'pending'
ORDER BY created_at ASC, id ASC
LIMIT $3
`

// ListPendingUsernameRecords returns up to limit records never attempted, oldest first
func (s *Store) ListPendingUsernameRecords(ctx context.Context, campaignID uuid.UUID, subreddit string, limit int) ([]UsernameRecord, error) {
	records := []UsernameRecord{}
	if limit <= 0 {
		return records, nil
	}
	err := s.db.SelectContext(ctx, &records, sqlListPendingUsernameRecords, campaignID, subreddit, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending username records: %w", err)
	}
	return records, nil
}

const sqlMarkUsernameRecordSent = `
UPDATE username_records
SET status = 'sent', last_attempted_at = $2, last_messaged_at = $2
WHERE id = $1 AND status = 'pending'
`

// MarkUsernameRecordSent moves a pending record to sent
func (s *Store) MarkUsernameRecordSent(ctx context.Context, recordID uuid.UUID, at time.Time) error {
	return s.transitionUsernameRecord(ctx, sqlMarkUsernameRecordSent, recordID, at)
}

const sqlMarkUsernameRecordFailed = `
UPDATE username_records
SET status = 'failed', last_attempted_at = $2
WHERE id = $1 AND status = 'pending'
`

// MarkUsernameRecordFailed moves a pending record to failed
func (s *Store) MarkUsernameRecordFailed(ctx context.Context, recordID uuid.UUID, at time.Time) error {
	return s.transitionUsernameRecord(ctx, sqlMarkUsernameRecordFailed, recordID, at)
}

func (s *Store) transitionUsernameRecord(ctx context.Context, query string, recordID uuid.UUID, at time.Time) error {
	res, err := s.db.ExecContext(ctx, query, recordID, at)
	if err != nil {
		return fmt.Errorf("failed to update username record: %w", err)
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

// ListUsernameRecordsParams filters and paginates a subreddit's records
type ListUsernameRecordsParams struct {
	CampaignID uuid.UUID
	Subreddit  string
	Status     *OutreachStatus
	Limit      int
	Offset     int
}

var sqlListUsernameRecords = `
SELECT ` + usernameRecordColumns + `
FROM username_records
WHERE campaign_id = $1 AND subreddit = $2 AND ($3::text IS NULL OR status = $3)
ORDER BY created_at ASC, id ASC
LIMIT $4 OFFSET $5
`

const sqlCountUsernameRecords = `
SELECT COUNT(*)
FROM username_records
WHERE campaign_id = $1 AND subreddit = $2 AND ($3::text IS NULL OR status = $3)
`

// ListUsernameRecords returns one page of records and the total matching the filter
func (s *Store) ListUsernameRecords(ctx context.Context, params ListUsernameRecordsParams) ([]UsernameRecord, int, error) {
	var status *string
	if params.Status != nil {
		v := string(*params.Status)
		status = &v
	}

	var total int
	if err := s.db.GetContext(ctx, &total, sqlCountUsernameRecords, params.CampaignID, params.Subreddit, status); err != nil {
		return nil, 0, fmt.Errorf("failed to count username records: %w", err)
	}

	records := []UsernameRecord{}
	err := s.db.SelectContext(ctx, &records, sqlListUsernameRecords,
		params.CampaignID, params.Subreddit, status, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list username records: %w", err)
	}
	return records, total, nil
}

// sentimentColumns maps a reply classification onto its campaign counter
var sentimentColumns = map[string]string{
	"positive": "positive_responses",
	"negative": "negative_responses",
	"neutral":  "neutral_responses",
}

const sqlRecordReplyTemplate = `
WITH replied AS (
	UPDATE username_records ur
	SET received_reply = TRUE
	FROM campaigns c
	WHERE c.id = ur.campaign_id
		AND c.account_id = $1
		AND c.deleted_at IS NULL
		AND ur.username = $2
		AND ur.status = 'sent'
		AND ur.received_reply = FALSE
	RETURNING ur.campaign_id
), per_campaign AS (
	SELECT campaign_id, COUNT(*) AS n FROM replied GROUP BY campaign_id
)
UPDATE campaigns
SET replies = replies + per_campaign.n%s, updated_at = NOW()
FROM per_campaign
WHERE campaigns.id = per_campaign.campaign_id
`

// RecordReply flags every sent record addressed to username under the account as replied and bumps
// the owning campaigns' reply counters. Sentiment is optional. Returns the number of campaigns updated.
func (s *Store) RecordReply(ctx context.Context, accountID uuid.UUID, username, sentiment string) (int, error) {
	extra := ""
	if column, ok := sentimentColumns[sentiment]; ok {
		extra = fmt.Sprintf(", %s = %s + per_campaign.n", column, column)
	}

	res, err := s.db.ExecContext(ctx, fmt.Sprintf(sqlRecordReplyTemplate, extra), accountID, username)
	if err != nil {
		return 0, fmt.Errorf("failed to record reply: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return int(rows), nil
}
