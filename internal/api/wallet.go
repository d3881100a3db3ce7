package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/viktor11111122222/money-track/internal/domain"
	"github.com/viktor11111122222/money-track/internal/membership"
	"github.com/viktor11111122222/money-track/internal/report"
	"github.com/viktor11111122222/money-track/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// WalletRequest is the create/update payload. Updates are a full replace,
// not a patch: omitted numeric optionals become null, omitted lists empty.
type WalletRequest struct {
	Name       string   `json:"name" binding:"required"`
	Amount     float64  `json:"amount"`
	Notes      string   `json:"notes"`
	GoalAmount *float64 `json:"goalAmount"`
	CapAmount  *float64 `json:"capAmount"`
	Deadline   *string  `json:"deadline"`
	Members    []string `json:"members"`
	Categories []string `json:"categories"`
}

// WalletResponse is the wire form of a wallet, with the stored member and
// category strings denormalized back into lists
type WalletResponse struct {
	ID         uint     `json:"id"`
	OwnerID    uint     `json:"ownerId"`
	Name       string   `json:"name"`
	Amount     float64  `json:"amount"`
	Notes      string   `json:"notes"`
	GoalAmount *float64 `json:"goalAmount"`
	CapAmount  *float64 `json:"capAmount"`
	Deadline   *string  `json:"deadline"`
	Members    []string `json:"members"`
	Categories []string `json:"categories"`
	CreatedAt  int64    `json:"created_at"`
}

func walletResponse(w domain.Wallet) WalletResponse {
	members := membership.Split(w.Members)
	if members == nil {
		members = []string{}
	}
	categories := membership.Split(w.Categories)
	if categories == nil {
		categories = []string{}
	}
	return WalletResponse{
		ID:         w.ID,
		OwnerID:    w.OwnerID,
		Name:       w.Name,
		Amount:     w.Amount,
		Notes:      w.Notes,
		GoalAmount: w.GoalAmount,
		CapAmount:  w.CapAmount,
		Deadline:   w.Deadline,
		Members:    members,
		Categories: categories,
		CreatedAt:  w.CreatedAt,
	}
}

// applyWalletRequest writes the mutable fields onto a wallet record. Member
// lists are deduplicated case-insensitively with the last casing winning, so
// re-adding "bob" over "Bob" updates the chip instead of doubling it.
func applyWalletRequest(w *domain.Wallet, req *WalletRequest) {
	w.Name = strings.TrimSpace(req.Name)
	w.Amount = req.Amount
	w.Notes = strings.TrimSpace(req.Notes)
	w.GoalAmount = req.GoalAmount
	w.CapAmount = req.CapAmount
	w.Deadline = req.Deadline
	w.Members = membership.Join(membership.Dedupe(req.Members))
	w.Categories = membership.Join(req.Categories)
}

// ListWalletsHandler returns every wallet the requester is a member of,
// newest first. Membership is resolved per request against the requester's
// current email and display name; nothing is persisted.
func ListWalletsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		cacheKey := utils.WalletListKey(user.ID)
		if rdb := cacheClient(c); rdb != nil {
			var cached []WalletResponse
			if found, err := utils.GetCache(context.Background(), rdb, cacheKey, &cached); err == nil && found {
				c.JSON(http.StatusOK, cached)
				return
			}
		}
		var wallets []domain.Wallet
		if err := db.Order("created_at DESC").Find(&wallets).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch wallets."})
			return
		}
		identity := identityOf(user)
		visible := make([]WalletResponse, 0, len(wallets))
		for _, w := range wallets {
			if membership.IsMember(w.OwnerID, w.Members, identity) {
				visible = append(visible, walletResponse(w))
			}
		}
		if rdb := cacheClient(c); rdb != nil {
			_ = utils.SetCache(context.Background(), rdb, cacheKey, visible, utils.CacheTTL)
		}
		c.JSON(http.StatusOK, visible)
	}
}

// CreateWalletHandler creates a wallet owned by the requester
func CreateWalletHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		var req WalletRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields."})
			return
		}
		wallet := domain.Wallet{OwnerID: userID}
		applyWalletRequest(&wallet, &req)
		if err := db.Create(&wallet).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"owner_id": userID,
				"error":    err.Error(),
			}).Error("Failed to create wallet")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create wallet."})
			return
		}
		logrus.WithFields(logrus.Fields{
			"owner_id":  userID,
			"wallet_id": wallet.ID,
		}).Info("Wallet created")
		invalidateCache(c, utils.WalletListKey(userID))
		c.JSON(http.StatusCreated, walletResponse(wallet))
	}
}

// UpdateWalletHandler fully replaces a wallet's mutable fields. Owner only.
func UpdateWalletHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		walletID, ok := idParam(c, "Wallet not found.")
		if !ok {
			return
		}
		var wallet domain.Wallet
		if err := db.First(&wallet, walletID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Wallet not found."})
			return
		}
		if wallet.OwnerID != userID {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden."})
			return
		}
		var req WalletRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields."})
			return
		}
		// Read-then-rewrite: concurrent member edits are last-write-wins,
		// an accepted limitation for this domain.
		applyWalletRequest(&wallet, &req)
		if err := db.Save(&wallet).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"wallet_id": wallet.ID,
				"error":     err.Error(),
			}).Error("Failed to update wallet")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update wallet."})
			return
		}
		invalidateCache(c, utils.WalletListKey(userID))
		c.JSON(http.StatusOK, walletResponse(wallet))
	}
}

// DeleteWalletHandler deletes a wallet and its whole ledger. Owner only.
func DeleteWalletHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		walletID, ok := idParam(c, "Wallet not found.")
		if !ok {
			return
		}
		var wallet domain.Wallet
		if err := db.First(&wallet, walletID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Wallet not found."})
			return
		}
		if wallet.OwnerID != userID {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden."})
			return
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("wallet_id = ?", wallet.ID).Delete(&domain.WalletTransaction{}).Error; err != nil {
				return err
			}
			return tx.Delete(&wallet).Error
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"wallet_id": wallet.ID,
				"error":     err.Error(),
			}).Error("Failed to delete wallet")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete wallet."})
			return
		}
		logrus.WithFields(logrus.Fields{
			"owner_id":  userID,
			"wallet_id": wallet.ID,
		}).Info("Wallet deleted")
		invalidateCache(c, utils.WalletListKey(userID), utils.WalletTxnsKey(wallet.ID))
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// LeaveWalletHandler removes the requester's own labels from a wallet's
// member list. The owner cannot leave their own wallet; they delete it.
func LeaveWalletHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		walletID, ok := idParam(c, "Wallet not found.")
		if !ok {
			return
		}
		var wallet domain.Wallet
		if err := db.First(&wallet, walletID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Wallet not found."})
			return
		}
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		if wallet.OwnerID == user.ID {
			c.JSON(http.StatusForbidden, gin.H{"message": "Owner cannot leave."})
			return
		}
		members := membership.Remove(membership.Split(wallet.Members), identityOf(user))
		if err := db.Model(&wallet).Update("members", membership.Join(members)).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to leave wallet."})
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":   user.ID,
			"wallet_id": wallet.ID,
		}).Info("Member left wallet")
		invalidateCache(c, utils.WalletListKey(user.ID))
		if members == nil {
			members = []string{}
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "members": members})
	}
}

// WalletSummaryHandler returns the aggregated figures for one wallet:
// totals, per-member contributions, goal progress and cap state. Always
// recomputed from the full ledger. ?mode=savings counts only savings toward
// the goal; the default counts everything.
func WalletSummaryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		walletID, ok := idParam(c, "Wallet not found.")
		if !ok {
			return
		}
		var wallet domain.Wallet
		if err := db.First(&wallet, walletID).Error; err != nil || !membership.IsMember(wallet.OwnerID, wallet.Members, identityOf(user)) {
			// Absence and non-membership answer the same so existence
			// does not leak to non-members
			c.JSON(http.StatusNotFound, gin.H{"message": "Wallet not found."})
			return
		}
		var txns []domain.WalletTransaction
		if err := db.Where("wallet_id = ?", wallet.ID).Find(&txns).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch transactions."})
			return
		}
		mode := report.ModeAll
		if c.Query("mode") == string(report.ModeSavings) {
			mode = report.ModeSavings
		}
		summary := report.Summarize(
			report.Wallet{Amount: wallet.Amount, GoalAmount: wallet.GoalAmount, CapAmount: wallet.CapAmount},
			reportTransactions(txns),
			mode,
		)
		c.JSON(http.StatusOK, summary)
	}
}
