package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/viktor11111122222/money-track/internal/domain"
	"github.com/viktor11111122222/money-track/internal/membership"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SplitRequest is the create-split payload
type SplitRequest struct {
	Name          string             `json:"name" binding:"required"`
	Amount        float64            `json:"amount"`
	Members       []string           `json:"members"`
	MemberAmounts map[string]float64 `json:"memberAmounts"`
}

// SplitResponse is the wire form of a split
type SplitResponse struct {
	ID            uint               `json:"id"`
	Name          string             `json:"name"`
	Amount        float64            `json:"amount"`
	Members       []string           `json:"members"`
	MemberAmounts map[string]float64 `json:"memberAmounts"`
	CreatedAt     int64              `json:"created_at"`
}

func splitResponse(s domain.Split) SplitResponse {
	members := membership.Split(s.Members)
	if members == nil {
		members = []string{}
	}
	amounts := map[string]float64{}
	if s.MemberAmounts != "" {
		_ = json.Unmarshal([]byte(s.MemberAmounts), &amounts)
	}
	return SplitResponse{
		ID:            s.ID,
		Name:          s.Name,
		Amount:        s.Amount,
		Members:       members,
		MemberAmounts: amounts,
		CreatedAt:     s.CreatedAt,
	}
}

// ListSplitsHandler returns the requester's splits, newest first
func ListSplitsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		var splits []domain.Split
		if err := db.Where("owner_id = ?", userID).Order("created_at DESC").Find(&splits).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch splits."})
			return
		}
		out := make([]SplitResponse, 0, len(splits))
		for _, s := range splits {
			out = append(out, splitResponse(s))
		}
		c.JSON(http.StatusOK, out)
	}
}

// CreateSplitHandler records a split with its per-member shares
func CreateSplitHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		var req SplitRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields."})
			return
		}
		amounts := req.MemberAmounts
		if amounts == nil {
			amounts = map[string]float64{}
		}
		encoded, err := json.Marshal(amounts)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields."})
			return
		}
		split := domain.Split{
			OwnerID:       userID,
			Name:          strings.TrimSpace(req.Name),
			Amount:        req.Amount,
			Members:       membership.Join(req.Members),
			MemberAmounts: string(encoded),
		}
		if err := db.Create(&split).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"owner_id": userID,
				"error":    err.Error(),
			}).Error("Failed to create split")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create split."})
			return
		}
		c.JSON(http.StatusCreated, splitResponse(split))
	}
}
