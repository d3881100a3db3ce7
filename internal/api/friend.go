package api

import (
	"net/http"

	"github.com/viktor11111122222/money-track/internal/domain"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FriendLimitRequest carries the spending limit for a friend
type FriendLimitRequest struct {
	Limit float64 `json:"limit"`
}

// ListFriendsHandler returns the requester's friends, newest first
func ListFriendsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		friends := []domain.Friend{}
		if err := db.Where("owner_id = ?", userID).Order("created_at DESC").Find(&friends).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch friends."})
			return
		}
		c.JSON(http.StatusOK, friends)
	}
}

// UpdateFriendLimitHandler sets the spending limit the requester grants a
// friend. Scoped to the requester's own rows; a miss is a no-op.
func UpdateFriendLimitHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		friendID, ok := idParam(c, "Friend not found.")
		if !ok {
			return
		}
		var req FriendLimitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields."})
			return
		}
		if err := db.Model(&domain.Friend{}).
			Where("id = ? AND owner_id = ?", friendID, userID).
			Update("limit_amount", req.Limit).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update friend."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
