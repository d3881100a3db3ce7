package api

import (
	"net/http"

	"github.com/viktor11111122222/money-track/internal/domain"
	"github.com/viktor11111122222/money-track/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ProfileResponse is the authenticated user's own profile
type ProfileResponse struct {
	ID                  uint     `json:"id"`
	Name                string   `json:"name"`
	Email               string   `json:"email"`
	Avatar              string   `json:"avatar"`
	MonthlyIncome       *float64 `json:"monthly_income"`
	CurrentBalance      *float64 `json:"current_balance"`
	OnboardingCompleted bool     `json:"onboarding_completed"`
}

// MeHandler returns the requester's profile
func MeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, ProfileResponse{
			ID:                  user.ID,
			Name:                user.Name,
			Email:               user.Email,
			Avatar:              user.Avatar,
			MonthlyIncome:       user.MonthlyIncome,
			CurrentBalance:      user.CurrentBalance,
			OnboardingCompleted: user.OnboardingCompleted,
		})
	}
}

// OnboardingRequest carries the initial profile figures
type OnboardingRequest struct {
	Name           string   `json:"name" binding:"required"`
	MonthlyIncome  *float64 `json:"monthlyIncome" binding:"required"`
	CurrentBalance *float64 `json:"currentBalance" binding:"required"`
}

// OnboardingHandler stores the initial figures and marks onboarding done
func OnboardingHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		var req OnboardingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields."})
			return
		}
		updates := map[string]any{
			"name":                 req.Name,
			"monthly_income":       req.MonthlyIncome,
			"current_balance":      req.CurrentBalance,
			"onboarding_completed": true,
		}
		if err := db.Model(&domain.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save onboarding."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// AvatarRequest carries the avatar identifier
type AvatarRequest struct {
	Avatar string `json:"avatar" binding:"required"`
}

// UpdateAvatarHandler stores the user's avatar choice
func UpdateAvatarHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		var req AvatarRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid avatar."})
			return
		}
		if err := db.Model(&domain.User{}).Where("id = ?", userID).Update("avatar", req.Avatar).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update avatar."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// ResetAllHandler deletes every record the requester owns: wallets with
// their ledgers, friends, invites and splits. Profile figures survive.
func ResetAllHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			// Cascade the owned wallets' ledgers first
			var walletIDs []uint
			if err := tx.Model(&domain.Wallet{}).Where("owner_id = ?", userID).Pluck("id", &walletIDs).Error; err != nil {
				return err
			}
			if len(walletIDs) > 0 {
				if err := tx.Where("wallet_id IN ?", walletIDs).Delete(&domain.WalletTransaction{}).Error; err != nil {
					return err
				}
			}
			for _, model := range []any{&domain.Wallet{}, &domain.Friend{}, &domain.Invite{}, &domain.Split{}} {
				if err := tx.Where("owner_id = ?", userID).Delete(model).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Error("Reset failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to reset data."})
			return
		}
		invalidateCache(c, utils.WalletListKey(userID))
		logrus.WithFields(logrus.Fields{"user_id": userID}).Info("All data reset")
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "All data has been reset."})
	}
}

// FriendLimitHandler returns the most recent spending limit another owner
// set against the requester's email
func FriendLimitHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		var friend domain.Friend
		err := db.Where("email = ?", user.Email).Order("created_at DESC").First(&friend).Error
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"limitAmount": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"limitAmount": friend.LimitAmount, "ownerId": friend.OwnerID})
	}
}
