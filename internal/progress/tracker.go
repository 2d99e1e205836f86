package progress

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusError      = "error"
)

var ErrNotFound = errors.New("progress not found")

// Key addresses the progress of one collection run.
type Key struct {
	AccountID  uuid.UUID
	CampaignID uuid.UUID
	Subreddit  string
}

func (k Key) String() string {
	return fmt.Sprintf("progress:%s:%s:%s", k.AccountID, k.CampaignID, k.Subreddit)
}

// Record is the polled state of a collection run.
type Record struct {
	Status             string    `json:"status"`
	TotalPosts         int       `json:"total_posts"`
	ProcessedPosts     int       `json:"processed_posts"`
	CollectedUsernames int       `json:"collected_usernames"`
	ErrorMessage       string    `json:"error_message,omitempty"`
	LastUpdated        time.Time `json:"last_updated"`
}

// Tracker stores progress records as Redis hashes that expire after ttl.
type Tracker struct {
	rdb *redis.Client
	ttl time.Duration
	now func() time.Time
}

func NewTracker(rdb *redis.Client, ttl time.Duration) *Tracker {
	return &Tracker{rdb: rdb, ttl: ttl, now: time.Now}
}

// Start overwrites any previous record with a fresh in-progress one.
func (t *Tracker) Start(ctx context.Context, key Key) error {
	k := key.String()
	_, err := t.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, k)
		pipe.HSet(ctx, k,
			"status", StatusInProgress,
			"total_posts", 0,
			"processed_posts", 0,
			"collected_usernames", 0,
			"last_updated", t.stamp(),
		)
		pipe.Expire(ctx, k, t.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to start progress: %w", err)
	}
	return nil
}

func (t *Tracker) SetTotal(ctx context.Context, key Key, total int) error {
	return t.update(ctx, key, "total_posts", total)
}

func (t *Tracker) SetProcessed(ctx context.Context, key Key, processed, collected int) error {
	return t.update(ctx, key, "processed_posts", processed, "collected_usernames", collected)
}

func (t *Tracker) Complete(ctx context.Context, key Key, collected int) error {
	return t.update(ctx, key, "status", StatusCompleted, "collected_usernames", collected)
}

func (t *Tracker) Fail(ctx context.Context, key Key, message string) error {
	return t.update(ctx, key, "status", StatusError, "error_message", message)
}

func (t *Tracker) update(ctx context.Context, key Key, values ...interface{}) error {
	k := key.String()
	values = append(values, "last_updated", t.stamp())
	_, err := t.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, k, values...)
		pipe.Expire(ctx, k, t.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update progress: %w", err)
	}
	return nil
}

// Get returns the current record, or ErrNotFound when no run was started or it expired.
func (t *Tracker) Get(ctx context.Context, key Key) (Record, error) {
	fields, err := t.rdb.HGetAll(ctx, key.String()).Result()
	if err != nil {
		return Record{}, fmt.Errorf("failed to read progress: %w", err)
	}
	if len(fields) == 0 {
		return Record{}, ErrNotFound
	}

	record := Record{
		Status:       fields["status"],
		ErrorMessage: fields["error_message"],
	}
	record.TotalPosts, _ = strconv.Atoi(fields["total_posts"])
	record.ProcessedPosts, _ = strconv.Atoi(fields["processed_posts"])
	record.CollectedUsernames, _ = strconv.Atoi(fields["collected_usernames"])
	if ms, err := strconv.ParseInt(fields["last_updated"], 10, 64); err == nil {
		record.LastUpdated = time.UnixMilli(ms).UTC()
	}
	return record, nil
}

func (t *Tracker) stamp() int64 {
	return t.now().UnixMilli()
}
