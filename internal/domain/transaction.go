package domain

// WalletTransaction Model. Member is a free-text contributor label, not a
// foreign key: contributions can be attributed to any name, including people
// who never registered. Rows are never updated, only appended and
// cascade-deleted with their wallet.
type WalletTransaction struct {
	ID        uint    `gorm:"primaryKey" json:"id"`                    // Primary key
	WalletID  uint    `gorm:"index;not null" json:"walletId"`          // Foreign key to the owning Wallet
	Member    string  `gorm:"not null" json:"member"`                  // Contributor label
	Amount    float64 `gorm:"not null" json:"amount"`                  // Contribution amount, always > 0
	Category  string  `gorm:"not null" json:"category"`                // Free-text category
	Note      string  `json:"note"`                                    // Optional note
	CreatedAt int64   `gorm:"autoCreateTime:milli" json:"created_at"`  // Timestamp of creation in milliseconds
}
