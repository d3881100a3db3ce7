package api

import (
	"net/http"
	"strings"

	"github.com/viktor11111122222/money-track/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// InviteRequest is the create-invite payload
type InviteRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// ListInvitesHandler returns the requester's invites, newest first
func ListInvitesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		invites := []domain.Invite{}
		if err := db.Where("owner_id = ?", userID).Order("created_at DESC").Find(&invites).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch invites."})
			return
		}
		c.JSON(http.StatusOK, invites)
	}
}

// CreateInviteHandler records a pending invite. Email delivery is not this
// service's job: the response carries the accept URL so the caller can hand
// the link over however it likes.
func CreateInviteHandler(db *gorm.DB, appBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		var req InviteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields."})
			return
		}
		email := strings.ToLower(strings.TrimSpace(req.Email))

		var existing domain.Invite
		if err := db.Where("owner_id = ? AND email = ?", userID, email).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"message": "Invite for this email already exists."})
			return
		}

		invite := domain.Invite{
			OwnerID: userID,
			Token:   uuid.NewString(),
			Name:    strings.TrimSpace(req.Name),
			Email:   email,
			Status:  domain.InviteStatusPending,
		}
		if err := db.Create(&invite).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"owner_id": userID,
				"email":    email,
				"error":    err.Error(),
			}).Error("Failed to create invite")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create invite."})
			return
		}
		logrus.WithFields(logrus.Fields{
			"owner_id":  userID,
			"invite_id": invite.ID,
		}).Info("Invite created")
		c.JSON(http.StatusCreated, gin.H{
			"id":         invite.ID,
			"name":       invite.Name,
			"email":      invite.Email,
			"status":     invite.Status,
			"token":      invite.Token,
			"acceptUrl":  appBaseURL + "/shared/index.html?invite=" + invite.Token,
			"created_at": invite.CreatedAt,
		})
	}
}

// AcceptInviteHandler marks an invite accepted and materializes a friend
// row once
func AcceptInviteHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		inviteID, ok := idParam(c, "Invite not found.")
		if !ok {
			return
		}
		var invite domain.Invite
		if err := db.Where("id = ? AND owner_id = ?", inviteID, userID).First(&invite).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Invite not found."})
			return
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&invite).Update("status", domain.InviteStatusAccepted).Error; err != nil {
				return err
			}
			var existing domain.Friend
			if err := tx.Where("owner_id = ? AND email = ?", userID, invite.Email).First(&existing).Error; err == nil {
				return nil // Friend already materialized
			}
			friend := domain.Friend{
				OwnerID:  userID,
				InviteID: &invite.ID,
				Name:     invite.Name,
				Email:    invite.Email,
			}
			return tx.Create(&friend).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to accept invite."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
