package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	CampaignStatusRunning = "running"
	CampaignStatusPaused  = "paused"
)

// OutreachStatus is the tagged outreach state of a username record.
type OutreachStatus string

const (
	OutreachPending OutreachStatus = "pending"
	OutreachSent    OutreachStatus = "sent"
	OutreachFailed  OutreachStatus = "failed"
)

// Attempted reports whether a send was tried for the record.
func (s OutreachStatus) Attempted() bool {
	return s == OutreachSent || s == OutreachFailed
}

// Messaged reports whether a send succeeded for the record.
func (s OutreachStatus) Messaged() bool {
	return s == OutreachSent
}

// Valid reports whether s is a known outreach state.
func (s OutreachStatus) Valid() bool {
	switch s {
	case OutreachPending, OutreachSent, OutreachFailed:
		return true
	}
	return false
}

type Account struct {
	ID                    uuid.UUID  `db:"id" json:"id"`
	Email                 *string    `db:"email" json:"email,omitempty"`
	Role                  *string    `db:"role" json:"role,omitempty"`
	StripeCustomerID      *string    `db:"stripe_customer_id" json:"stripe_customer_id,omitempty"`
	SubscriptionID        *string    `db:"subscription_id" json:"subscription_id,omitempty"`
	SubscriptionStatus    *string    `db:"subscription_status" json:"subscription_status,omitempty"`
	SubscriptionExpires   *int64     `db:"subscription_expires" json:"subscription_expires,omitempty"`
	TrialConverted        bool       `db:"trial_converted" json:"trial_converted"`
	PaidSubscriptionStart *time.Time `db:"paid_subscription_start" json:"paid_subscription_start,omitempty"`
	CreatedAt             time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time  `db:"updated_at" json:"updated_at"`
}

// SubredditEntry is one target subreddit embedded in a campaign.
type SubredditEntry struct {
	Name               string  `json:"name"`
	Members            int     `json:"members"`
	ReplyRate          float64 `json:"reply_rate"`
	MessagesSent       int     `json:"messages_sent"`
	Replies            int     `json:"replies"`
	UsernamesCollected bool    `json:"usernames_collected"`
	TotalUsernames     int     `json:"total_usernames"`
}

// Subreddits is the JSONB-backed list of a campaign's subreddit entries
type Subreddits []SubredditEntry

// Value implements the driver.Valuer interface for Subreddits
func (s Subreddits) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

// Scan implements the sql.Scanner interface for Subreddits
func (s *Subreddits) Scan(value interface{}) error {
	if value == nil {
		*s = Subreddits{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for Subreddits")
	}

	if len(bytes) == 0 || string(bytes) == "null" {
		*s = Subreddits{}
		return nil
	}

	var result Subreddits
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*s = result
	return nil
}

// Find returns the entry with the given name. Subreddit names are case-insensitive on Reddit.
func (s Subreddits) Find(name string) (SubredditEntry, bool) {
	for _, entry := range s {
		if strings.EqualFold(entry.Name, name) {
			return entry, true
		}
	}
	return SubredditEntry{}, false
}

// Collected returns the entries whose usernames have been collected, in list order.
func (s Subreddits) Collected() []SubredditEntry {
	var collected []SubredditEntry
	for _, entry := range s {
		if entry.UsernamesCollected {
			collected = append(collected, entry)
		}
	}
	return collected
}

type CampaignStats struct {
	MessagesSent      int `db:"messages_sent" json:"messages_sent"`
	Replies           int `db:"replies" json:"replies"`
	TotalReach        int `db:"total_reach" json:"total_reach"`
	PositiveResponses int `db:"positive_responses" json:"positive_responses"`
	NegativeResponses int `db:"negative_responses" json:"negative_responses"`
	NeutralResponses  int `db:"neutral_responses" json:"neutral_responses"`
}

// ReplyRate is replies over messages sent, as a percentage.
func (s CampaignStats) ReplyRate() float64 {
	if s.MessagesSent == 0 {
		return 0
	}
	return float64(s.Replies) / float64(s.MessagesSent) * 100
}

type Campaign struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	AccountID       uuid.UUID  `db:"account_id" json:"account_id"`
	Name            string     `db:"name" json:"name"`
	Status          string     `db:"status" json:"status"`
	MessageSubject  string     `db:"message_subject" json:"message_subject"`
	MessageTemplate string     `db:"message_template" json:"message_template"`
	DailyLimit      int        `db:"daily_limit" json:"daily_limit"`
	Subreddits      Subreddits `db:"subreddits" json:"subreddits"`
	CampaignStats   `json:"stats"`
	LastActive      *time.Time `db:"last_active" json:"last_active,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt       *time.Time `db:"deleted_at" json:"-"`
}

type UsernameRecord struct {
	ID              uuid.UUID      `db:"id" json:"id"`
	CampaignID      uuid.UUID      `db:"campaign_id" json:"campaign_id"`
	Subreddit       string         `db:"subreddit" json:"subreddit"`
	Username        string         `db:"username" json:"username"`
	Status          OutreachStatus `db:"status" json:"status"`
	LastAttemptedAt *time.Time     `db:"last_attempted_at" json:"last_attempted_at,omitempty"`
	LastMessagedAt  *time.Time     `db:"last_messaged_at" json:"last_messaged_at,omitempty"`
	ReceivedReply   bool           `db:"received_reply" json:"received_reply"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
}

// MarshalJSON adds the attempted/messaged booleans derived from Status.
func (r UsernameRecord) MarshalJSON() ([]byte, error) {
	type record UsernameRecord
	return json.Marshal(struct {
		record
		Attempted bool `json:"attempted"`
		Messaged  bool `json:"messaged"`
	}{
		record:    record(r),
		Attempted: r.Status.Attempted(),
		Messaged:  r.Status.Messaged(),
	})
}
