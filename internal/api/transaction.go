package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/viktor11111122222/money-track/internal/domain"
	"github.com/viktor11111122222/money-track/internal/membership"
	"github.com/viktor11111122222/money-track/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// TransactionRequest is the contribution payload. Member and category are
// free text on purpose: a contribution can be attributed to any label, even
// one not in the wallet's member list.
type TransactionRequest struct {
	Member   string  `json:"member" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Note     string  `json:"note"`
}

// memberWallet loads a wallet and gates it behind membership. Absent and
// not-visible both answer 404.
func memberWallet(c *gin.Context, db *gorm.DB, user *domain.User) (*domain.Wallet, bool) {
	walletID, ok := idParam(c, "Wallet not found.")
	if !ok {
		return nil, false
	}
	var wallet domain.Wallet
	if err := db.First(&wallet, walletID).Error; err != nil || !membership.IsMember(wallet.OwnerID, wallet.Members, identityOf(user)) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Wallet not found."})
		return nil, false
	}
	return &wallet, true
}

// ListTransactionsHandler returns a wallet's ledger, newest first
func ListTransactionsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		wallet, ok := memberWallet(c, db, user)
		if !ok {
			return
		}
		cacheKey := utils.WalletTxnsKey(wallet.ID)
		if rdb := cacheClient(c); rdb != nil {
			var cached []domain.WalletTransaction
			if found, err := utils.GetCache(context.Background(), rdb, cacheKey, &cached); err == nil && found {
				c.JSON(http.StatusOK, cached)
				return
			}
		}
		txns := []domain.WalletTransaction{}
		if err := db.Where("wallet_id = ?", wallet.ID).Order("created_at DESC").Find(&txns).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch transactions."})
			return
		}
		if rdb := cacheClient(c); rdb != nil {
			_ = utils.SetCache(context.Background(), rdb, cacheKey, txns, utils.CacheTTL)
		}
		c.JSON(http.StatusOK, txns)
	}
}

// AddTransactionHandler appends a contribution to a wallet's ledger. Any
// resolved member may contribute; the cap is never enforced at write time,
// overspending is only flagged on read.
func AddTransactionHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TransactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields."})
			return
		}
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		wallet, ok := memberWallet(c, db, user)
		if !ok {
			return
		}
		if req.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid amount."})
			return
		}
		txn := domain.WalletTransaction{
			WalletID: wallet.ID,
			Member:   strings.TrimSpace(req.Member),
			Amount:   req.Amount,
			Category: strings.TrimSpace(req.Category),
			Note:     strings.TrimSpace(req.Note),
		}
		if err := db.Create(&txn).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"wallet_id": wallet.ID,
				"member":    txn.Member,
				"error":     err.Error(),
			}).Error("Failed to add transaction")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add transaction."})
			return
		}
		logrus.WithFields(logrus.Fields{
			"wallet_id": wallet.ID,
			"member":    txn.Member,
			"amount":    txn.Amount,
			"category":  txn.Category,
		}).Info("Wallet transaction added")
		invalidateCache(c, utils.WalletTxnsKey(wallet.ID))
		c.JSON(http.StatusCreated, txn)
	}
}
