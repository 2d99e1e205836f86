package bootstrap

import (
	"context"
	"fmt"
	"time"

	"redditleads/internal/clients/gemini"
	"redditleads/internal/clients/mail"
	"redditleads/internal/clients/mongo"
	"redditleads/internal/clients/reddit"
	"redditleads/internal/clients/redis"
	"redditleads/internal/config"
	"redditleads/internal/conversations"
	"redditleads/internal/observability"
	"redditleads/internal/progress"
	"redditleads/internal/ratelimit"
	"redditleads/internal/store"

	authHandler "redditleads/internal/auth/handler"
	authProcessor "redditleads/internal/auth/processor"
	campaignHandler "redditleads/internal/campaign/handler"
	campaignProcessor "redditleads/internal/campaign/processor"
	collectorHandler "redditleads/internal/collector/handler"
	collectorProcessor "redditleads/internal/collector/processor"
	dispatchHandler "redditleads/internal/dispatch/handler"
	dispatchProcessor "redditleads/internal/dispatch/processor"
	inboxHandler "redditleads/internal/inbox/handler"
	inboxProcessor "redditleads/internal/inbox/processor"
	billingHandler "redditleads/internal/money/billing/handler"
	billingProcessor "redditleads/internal/money/billing/processor"
	"redditleads/internal/money/subscriptions"
)

// Processors holds the domain routines shared by the API server, the worker and the CLI
type Processors struct {
	Auth      authProcessor.AuthProcessor
	Campaign  campaignProcessor.CampaignProcessor
	Collector collectorProcessor.CollectorProcessor
	Dispatch  dispatchProcessor.DispatchProcessor
	Inbox     inboxProcessor.InboxProcessor
}

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	Processors Processors

	// Handlers
	AuthHandler      authHandler.Handler
	BillingHandler   billingHandler.Handler
	CampaignHandler  campaignHandler.Handler
	CollectorHandler collectorHandler.Handler
	DispatchHandler  dispatchHandler.Handler
	InboxHandler     inboxHandler.Handler

	// Middleware
	RateLimiter *ratelimit.Service

	// Clients (for cleanup)
	RedisClient *redis.Client
	MongoClient *mongo.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	deps.RedisClient, err = redis.NewClient(cfg.Redis, logger)
	if err != nil {
		deps.Cleanup(ctx)
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	deps.MongoClient, err = mongo.NewClient(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  10 * time.Second,
	})
	if err != nil {
		deps.Cleanup(ctx)
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	conversationRepo := conversations.NewRepository(deps.MongoClient.Database())
	if err := conversationRepo.EnsureIndexes(ctx); err != nil {
		deps.Cleanup(ctx)
		return nil, fmt.Errorf("failed to create conversation indexes: %w", err)
	}

	// Initialize clients
	redditClient := reddit.New(reddit.Config{
		ClientID:          cfg.Reddit.ClientID,
		ClientSecret:      cfg.Reddit.ClientSecret,
		Username:          cfg.Reddit.Username,
		Password:          cfg.Reddit.Password,
		UserAgent:         cfg.Reddit.UserAgent,
		RequestsPerMinute: cfg.Reddit.RequestsPerMinute,
	}, logger)

	mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, cfg.Services.DefaultEmailSender, logger)
	if err != nil {
		deps.Cleanup(ctx)
		return nil, fmt.Errorf("failed to create resend client: %w", err)
	}

	// The inbox processor treats a nil classifier as "store replies unlabelled"
	var classifier inboxProcessor.SentimentClassifier
	if cfg.Services.GoogleAIAPIKey != "" {
		classifier = gemini.NewClassifier(cfg.Services.GoogleAIAPIKey, gemini.DefaultModel, logger)
	} else {
		logger.Warn(ctx, "GOOGLE_AI_API_KEY not set, replies will not be classified")
	}

	progressTracker := progress.NewTracker(deps.RedisClient.GetClient(), cfg.Redis.ProgressTTL)

	// Initialize processors
	deps.Processors = Processors{
		Auth:     authProcessor.New(&deps.Store, cfg.Auth.JWTSecret, logger),
		Campaign: campaignProcessor.New(&deps.Store, logger),
		Collector: collectorProcessor.New(&deps.Store, redditClient, progressTracker, collectorProcessor.Config{
			BoundedPostLimit: cfg.Collector.BoundedPostLimit,
			CourtesyDelay:    cfg.Collector.CourtesyDelay,
		}, logger),
		Dispatch: dispatchProcessor.New(&deps.Store, redditClient, dispatchProcessor.Config{
			BatchSize:    cfg.Messaging.BatchSize,
			MessageDelay: cfg.Messaging.MessageDelay,
		}, logger),
		Inbox: inboxProcessor.New(redditClient, conversationRepo, &deps.Store, classifier, logger),
	}

	// Initialize billing processor and handler
	subscriptionService := subscriptions.New(logger, &deps.Store)
	billingProc := billingProcessor.New(
		cfg.Services.StripeSecretKey,
		cfg.Services.StripeWebhookSecret,
		cfg.Services.WebAppURI,
		&subscriptionService,
		billingProcessor.NewStripeCustomers(logger),
		mailClient,
		logger,
	)
	deps.BillingHandler = billingHandler.New(billingProc, logger)

	deps.RateLimiter = ratelimit.NewService(deps.RedisClient.GetClient(), cfg.Server.RequestsPerMinute, logger)

	// Initialize handlers
	deps.AuthHandler = authHandler.New(deps.Processors.Auth, logger)
	deps.CampaignHandler = campaignHandler.New(deps.Processors.Campaign, logger)
	deps.CollectorHandler = collectorHandler.New(deps.Processors.Collector, logger)
	deps.DispatchHandler = dispatchHandler.New(deps.Processors.Dispatch, logger)
	deps.InboxHandler = inboxHandler.New(deps.Processors.Inbox, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup(ctx context.Context) {
	if d.MongoClient != nil {
		if err := d.MongoClient.Close(ctx); err != nil {
			d.Logger.Error(ctx, "failed to close mongo client", err)
		}
	}
	if d.RedisClient != nil {
		if err := d.RedisClient.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close redis client", err)
		}
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database", err)
	}
}
