package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/viktor11111122222/money-track/internal/domain"
	"github.com/viktor11111122222/money-track/internal/membership"
	"github.com/viktor11111122222/money-track/internal/middleware"
	"github.com/viktor11111122222/money-track/internal/report"
	"github.com/viktor11111122222/money-track/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// redisContextKey is the context key the router injects the Redis client under.
const redisContextKey = "redisClient"

// cacheClient returns the injected Redis client, or nil when response
// caching is disabled (no Redis configured, or under test).
func cacheClient(c *gin.Context) *redis.Client {
	if v, ok := c.Get(redisContextKey); ok {
		if rdb, ok := v.(*redis.Client); ok {
			return rdb
		}
	}
	return nil
}

// invalidateCache drops cache keys after a write. Best effort; a failed
// delete only extends staleness to the TTL.
func invalidateCache(c *gin.Context, keys ...string) {
	if rdb := cacheClient(c); rdb != nil {
		_ = utils.DeleteCache(context.Background(), rdb, keys...)
	}
}

// currentUserID reads the authenticated user id set by the JWT middleware
func currentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(middleware.ContextUserID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return 0, false
	}
	id, ok := v.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return 0, false
	}
	return id, true
}

// currentUser loads the requester's user row. The row can be gone even with
// a valid token (account deleted), which surfaces as 404 like the rest of
// the not-visible cases.
func currentUser(c *gin.Context, db *gorm.DB) (*domain.User, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return nil, false
	}
	var user domain.User
	if err := db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
		return nil, false
	}
	return &user, true
}

// identityOf builds the membership identity for a user row
func identityOf(u *domain.User) membership.Identity {
	return membership.Identity{UserID: u.ID, Email: u.Email, Name: u.Name}
}

// idParam parses the :id path segment. Malformed ids get the same 404 as
// absent rows so probing reveals nothing.
func idParam(c *gin.Context, notFoundMsg string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundMsg})
		return 0, false
	}
	return uint(id), true
}

// reportTransactions maps ledger rows into the aggregator's input
func reportTransactions(txns []domain.WalletTransaction) []report.Transaction {
	out := make([]report.Transaction, len(txns))
	for i, txn := range txns {
		out[i] = report.Transaction{Member: txn.Member, Amount: txn.Amount, Category: txn.Category}
	}
	return out
}
