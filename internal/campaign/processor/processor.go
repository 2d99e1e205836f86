package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"redditleads/internal/observability"
	"redditleads/internal/store"

	"github.com/google/uuid"
)

const (
	DefaultRecordPageSize = 50
	MaxRecordPageSize     = 500
)

var (
	ErrCampaignNotFound      = errors.New("campaign not found")
	ErrUnauthorized          = errors.New("unauthorized access to campaign")
	ErrInvalidCampaignStatus = errors.New("invalid campaign status")
	ErrInvalidOutreachStatus = errors.New("invalid outreach status")
	ErrDuplicateSubreddit    = errors.New("subreddit listed more than once")
	ErrNoSubreddits          = errors.New("campaign needs at least one subreddit")
	ErrEmptyUpload           = errors.New("upload contains no usernames")
	ErrMalformedUpload       = errors.New("upload is not valid CSV")
)

type CampaignProcessor struct {
	store  CampaignStore
	logger *observability.Logger
}

func New(store CampaignStore, logger *observability.Logger) CampaignProcessor {
	return CampaignProcessor{
		store:  store,
		logger: logger,
	}
}

// SubredditParams describes one target subreddit of a new campaign
type SubredditParams struct {
	Name    string
	Members int
}

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	Name            string
	MessageSubject  string
	MessageTemplate string
	DailyLimit      int
	Subreddits      []SubredditParams
}

// UploadResult reports what an uploaded username list contained
type UploadResult struct {
	Subreddit string `json:"subreddit"`
	Usernames int    `json:"usernames"`
	Inserted  int    `json:"inserted"`
}

// ListUsernameRecordsParams filters one subreddit's username records
type ListUsernameRecordsParams struct {
	Subreddit string
	Status    string
	Limit     int
	Offset    int
}

// CreateCampaign creates a paused campaign whose subreddits still need collecting
func (p *CampaignProcessor) CreateCampaign(ctx context.Context, accountID uuid.UUID, params CreateCampaignParams) (store.Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "account_id", Value: accountID},
		observability.Field{Key: "campaign_name", Value: params.Name},
	)

	if len(params.Subreddits) == 0 {
		return store.Campaign{}, ErrNoSubreddits
	}

	subreddits := make(store.Subreddits, 0, len(params.Subreddits))
	seen := make(map[string]struct{}, len(params.Subreddits))
	for _, sub := range params.Subreddits {
		name := NormalizeSubreddit(sub.Name)
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			return store.Campaign{}, fmt.Errorf("%w: %s", ErrDuplicateSubreddit, name)
		}
		seen[key] = struct{}{}
		subreddits = append(subreddits, store.SubredditEntry{Name: name, Members: sub.Members})
	}

	campaign, err := p.store.CreateCampaign(ctx, store.CreateCampaignParams{
		AccountID:       accountID,
		Name:            params.Name,
		MessageSubject:  params.MessageSubject,
		MessageTemplate: params.MessageTemplate,
		DailyLimit:      params.DailyLimit,
		Subreddits:      subreddits,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create campaign", err)
		return store.Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaign.ID}), "campaign created")
	return campaign, nil
}

// ListCampaigns returns the account's campaigns, newest first
func (p *CampaignProcessor) ListCampaigns(ctx context.Context, accountID uuid.UUID) ([]store.Campaign, error) {
	campaigns, err := p.store.ListCampaignsByAccount(ctx, accountID)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns", err)
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

// GetCampaign returns a campaign the account owns
func (p *CampaignProcessor) GetCampaign(ctx context.Context, accountID, campaignID uuid.UUID) (store.Campaign, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	if campaign.AccountID != accountID {
		return store.Campaign{}, ErrUnauthorized
	}
	return campaign, nil
}

// UpdateCampaignStatus starts or pauses a campaign
func (p *CampaignProcessor) UpdateCampaignStatus(ctx context.Context, accountID, campaignID uuid.UUID, status string) (store.Campaign, error) {
	if status != store.CampaignStatusRunning && status != store.CampaignStatusPaused {
		return store.Campaign{}, ErrInvalidCampaignStatus
	}
	if _, err := p.GetCampaign(ctx, accountID, campaignID); err != nil {
		return store.Campaign{}, err
	}

	campaign, err := p.store.UpdateCampaignStatus(ctx, campaignID, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to update campaign status", err)
		return store.Campaign{}, fmt.Errorf("failed to update campaign status: %w", err)
	}
	return campaign, nil
}

// UploadUsernames stores a CSV username list as pending records of the subreddit and
// marks the subreddit collected, the same way a collection run would.
func (p *CampaignProcessor) UploadUsernames(ctx context.Context, accountID, campaignID uuid.UUID, subreddit string, r io.Reader) (UploadResult, error) {
	subreddit = NormalizeSubreddit(subreddit)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "account_id", Value: accountID},
		observability.Field{Key: "campaign_id", Value: campaignID},
		observability.Field{Key: "subreddit", Value: subreddit},
	)

	campaign, err := p.GetCampaign(ctx, accountID, campaignID)
	if err != nil {
		return UploadResult{}, err
	}
	if entry, ok := campaign.Subreddits.Find(subreddit); ok {
		subreddit = entry.Name
	}

	usernames, err := ParseUsernameCSV(r)
	if err != nil {
		return UploadResult{}, err
	}
	if len(usernames) == 0 {
		return UploadResult{}, ErrEmptyUpload
	}

	inserted, err := p.store.UpsertUsernameRecords(ctx, campaignID, subreddit, usernames)
	if err != nil {
		p.logger.Error(ctx, "failed to save uploaded usernames", err)
		return UploadResult{}, fmt.Errorf("failed to save usernames: %w", err)
	}
	if err := p.store.MarkSubredditCollected(ctx, campaignID, subreddit, len(usernames)); err != nil {
		p.logger.Error(ctx, "failed to mark subreddit collected", err)
		return UploadResult{}, fmt.Errorf("failed to mark subreddit collected: %w", err)
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "usernames", Value: len(usernames)},
		observability.Field{Key: "inserted", Value: inserted},
	), "usernames uploaded")
	return UploadResult{Subreddit: subreddit, Usernames: len(usernames), Inserted: inserted}, nil
}

// ListUsernameRecords pages through a subreddit's records, optionally filtered by outreach status
func (p *CampaignProcessor) ListUsernameRecords(ctx context.Context, accountID, campaignID uuid.UUID, params ListUsernameRecordsParams) ([]store.UsernameRecord, int, error) {
	campaign, err := p.GetCampaign(ctx, accountID, campaignID)
	if err != nil {
		return nil, 0, err
	}

	subreddit := NormalizeSubreddit(params.Subreddit)
	if entry, ok := campaign.Subreddits.Find(subreddit); ok {
		subreddit = entry.Name
	}
	query := store.ListUsernameRecordsParams{
		CampaignID: campaignID,
		Subreddit:  subreddit,
		Limit:      params.Limit,
		Offset:     params.Offset,
	}
	if params.Status != "" {
		status := store.OutreachStatus(params.Status)
		if !status.Valid() {
			return nil, 0, ErrInvalidOutreachStatus
		}
		query.Status = &status
	}
	if query.Limit <= 0 {
		query.Limit = DefaultRecordPageSize
	}
	if query.Limit > MaxRecordPageSize {
		query.Limit = MaxRecordPageSize
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	records, total, err := p.store.ListUsernameRecords(ctx, query)
	if err != nil {
		p.logger.Error(ctx, "failed to list username records", err)
		return nil, 0, fmt.Errorf("failed to list username records: %w", err)
	}
	return records, total, nil
}

// NormalizeSubreddit trims whitespace and an optional r/ prefix.
func NormalizeSubreddit(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, "/")
	if len(name) > 2 && strings.EqualFold(name[:2], "r/") {
		name = name[2:]
	}
	return strings.TrimSpace(name)
}

// ParseUsernameCSV reads every cell of every row as a username. Cells are trimmed,
// empty cells dropped and repeats removed, keeping first-seen order.
func ParseUsernameCSV(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	var usernames []string
	seen := make(map[string]struct{})
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedUpload, err)
		}
		for _, cell := range row {
			name := strings.TrimPrefix(strings.TrimSpace(cell), "u/")
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			usernames = append(usernames, name)
		}
	}
	return usernames, nil
}
