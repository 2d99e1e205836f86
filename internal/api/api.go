package api

import (
	"net/http"

	authHandler "redditleads/internal/auth/handler"
	campaignHandler "redditleads/internal/campaign/handler"
	collectorHandler "redditleads/internal/collector/handler"
	dispatchHandler "redditleads/internal/dispatch/handler"
	inboxHandler "redditleads/internal/inbox/handler"
	billingHandler "redditleads/internal/money/billing/handler"
	"redditleads/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

type API struct {
	router           *gin.RouterGroup
	authHandler      authHandler.Handler
	campaignHandler  campaignHandler.Handler
	collectorHandler collectorHandler.Handler
	dispatchHandler  dispatchHandler.Handler
	inboxHandler     inboxHandler.Handler
	billingHandler   billingHandler.Handler
	rateLimiter      *ratelimit.Service
}

func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	campaignHandler campaignHandler.Handler,
	collectorHandler collectorHandler.Handler,
	dispatchHandler dispatchHandler.Handler,
	inboxHandler inboxHandler.Handler,
	billingHandler billingHandler.Handler,
	rateLimiter *ratelimit.Service,
) API {
	return API{
		router:           router,
		authHandler:      authHandler,
		campaignHandler:  campaignHandler,
		collectorHandler: collectorHandler,
		dispatchHandler:  dispatchHandler,
		inboxHandler:     inboxHandler,
		billingHandler:   billingHandler,
		rateLimiter:      rateLimiter,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	protectedGroup := apiGroup.Group("/protected", a.authHandler.HandleJWTMiddleware)
	{
		// Routes that spend Reddit API quota
		limited := a.rateLimiter.Middleware()

		protectedGroup.GET("/account", a.authHandler.HandleGetAccount)

		campaignsGroup := protectedGroup.Group("/campaigns")
		campaignsGroup.POST("", a.campaignHandler.HandleCreateCampaign)
		campaignsGroup.GET("", a.campaignHandler.HandleListCampaigns)
		campaignsGroup.GET("/:campaign_id", a.campaignHandler.HandleGetCampaign)
		campaignsGroup.PATCH("/:campaign_id/status", a.campaignHandler.HandleUpdateCampaignStatus)
		campaignsGroup.POST("/:campaign_id/dispatch", limited, a.dispatchHandler.HandleDispatch)

		subredditGroup := campaignsGroup.Group("/:campaign_id/subreddits/:subreddit")
		subredditGroup.POST("/collect", limited, a.collectorHandler.HandleCollect)
		subredditGroup.GET("/progress", a.collectorHandler.HandleGetProgress)
		subredditGroup.POST("/usernames", a.campaignHandler.HandleUploadUsernames)
		subredditGroup.GET("/usernames", a.campaignHandler.HandleListUsernameRecords)

		protectedGroup.POST("/messages/sync", limited, a.inboxHandler.HandleSync)
		protectedGroup.POST("/messages/reply", limited, a.inboxHandler.HandleReply)
		protectedGroup.GET("/conversations", a.inboxHandler.HandleListConversations)
		protectedGroup.GET("/conversations/:username/messages", a.inboxHandler.HandleListMessages)
	}
	apiGroup.POST("/billing/webhook", a.billingHandler.HandleWebhook)
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
