package router

import (
	"github.com/viktor11111122222/money-track/internal/api"
	"github.com/viktor11111122222/money-track/internal/config"
	"github.com/viktor11111122222/money-track/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Setup wires every route. rdb may be nil, which disables response caching;
// handlers fall through to the database.
func Setup(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	r.POST("/api/auth/register", api.RegisterHandler(db, cfg.JWTSecret))
	r.POST("/api/auth/login", api.LoginHandler(db, cfg.JWTSecret))

	// Everything else requires a bearer token
	authed := r.Group("/api")
	authed.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	if rdb != nil {
		authed.Use(func(c *gin.Context) {
			c.Set("redisClient", rdb)
			c.Next()
		})
	}

	// Profile
	authed.GET("/me", api.MeHandler(db))
	authed.PATCH("/me/avatar", api.UpdateAvatarHandler(db))
	authed.POST("/onboarding", api.OnboardingHandler(db))
	authed.POST("/reset-all", api.ResetAllHandler(db))
	authed.GET("/friend-limit", api.FriendLimitHandler(db))

	// Invites and friends
	authed.GET("/invites", api.ListInvitesHandler(db))
	authed.POST("/invites", api.CreateInviteHandler(db, cfg.AppBaseURL))
	authed.POST("/invites/:id/accept", api.AcceptInviteHandler(db))
	authed.GET("/friends", api.ListFriendsHandler(db))
	authed.PATCH("/friends/:id", api.UpdateFriendLimitHandler(db))

	// Shared wallets and their ledgers
	authed.GET("/wallets", api.ListWalletsHandler(db))
	authed.POST("/wallets", api.CreateWalletHandler(db))
	authed.PATCH("/wallets/:id", api.UpdateWalletHandler(db))
	authed.DELETE("/wallets/:id", api.DeleteWalletHandler(db))
	authed.POST("/wallets/:id/leave", api.LeaveWalletHandler(db))
	authed.GET("/wallets/:id/transactions", api.ListTransactionsHandler(db))
	authed.POST("/wallets/:id/transactions", api.AddTransactionHandler(db))
	authed.GET("/wallets/:id/summary", api.WalletSummaryHandler(db))

	// Splits
	authed.GET("/splits", api.ListSplitsHandler(db))
	authed.POST("/splits", api.CreateSplitHandler(db))

	return r
}
