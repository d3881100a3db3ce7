package domain

// Wallet Model. Members and Categories are stored as "|"-joined strings so a
// wallet can be shared with people who have no account yet; the membership
// package owns the split/join rules.
type Wallet struct {
	ID         uint     `gorm:"primaryKey"`           // Primary key
	OwnerID    uint     `gorm:"index;not null"`       // Foreign key to the owning User
	Name       string   `gorm:"not null"`             // Wallet name
	Amount     float64  `gorm:"not null;default:0"`   // Seed amount, also the goal fallback
	Notes      string   // Free-text notes
	GoalAmount *float64 // Target sum, nil when unset
	CapAmount  *float64 // Spending ceiling, nil when unset
	Deadline   *string  // Deadline date string, nil when unset
	Members    string   // Member labels (email or display name), "|"-joined
	Categories string   // Allowed categories, "|"-joined; "*" means all
	CreatedAt  int64    `gorm:"autoCreateTime:milli"` // Timestamp of creation in milliseconds
}
