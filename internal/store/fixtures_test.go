package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
// All factory methods use testify/require to fail fast on errors.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

// NewFixtures creates a new Fixtures instance for test data generation.
func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

// CampaignOpts customizes campaign creation.
type CampaignOpts struct {
	AccountID  uuid.UUID
	Name       string
	Subject    string
	Template   string
	Subreddits Subreddits
}

// DefaultCampaignOpts returns sensible defaults for campaign creation.
func DefaultCampaignOpts() CampaignOpts {
	return CampaignOpts{
		AccountID: uuid.New(),
		Name:      "Test Campaign",
		Subject:   "Hi {{username}}",
		Template:  "Saw you in r/{{subreddit}}",
		Subreddits: Subreddits{
			{Name: "startups"},
			{Name: "golang"},
		},
	}
}

// CreateCampaign creates a paused test campaign.
func (f *Fixtures) CreateCampaign(opts ...func(*CampaignOpts)) Campaign {
	f.t.Helper()
	o := DefaultCampaignOpts()
	for _, fn := range opts {
		fn(&o)
	}

	campaign, err := f.testDB.Store.CreateCampaign(f.ctx, CreateCampaignParams{
		AccountID:       o.AccountID,
		Name:            o.Name,
		MessageSubject:  o.Subject,
		MessageTemplate: o.Template,
		Subreddits:      o.Subreddits,
	})
	require.NoError(f.t, err, "failed to create test campaign")
	return campaign
}

// CreateRunningCampaign creates a campaign and flips it to running.
func (f *Fixtures) CreateRunningCampaign(opts ...func(*CampaignOpts)) Campaign {
	f.t.Helper()
	campaign := f.CreateCampaign(opts...)
	campaign, err := f.testDB.Store.UpdateCampaignStatus(f.ctx, campaign.ID, CampaignStatusRunning)
	require.NoError(f.t, err, "failed to start test campaign")
	return campaign
}

// CreateUsernameRecords inserts pending records and returns them in selection order.
func (f *Fixtures) CreateUsernameRecords(campaignID uuid.UUID, subreddit string, usernames ...string) []UsernameRecord {
	f.t.Helper()
	_, err := f.testDB.Store.UpsertUsernameRecords(f.ctx, campaignID, subreddit, usernames)
	require.NoError(f.t, err, "failed to create username records")

	records, err := f.testDB.Store.ListPendingUsernameRecords(f.ctx, campaignID, subreddit, len(usernames))
	require.NoError(f.t, err, "failed to list username records")
	return records
}
