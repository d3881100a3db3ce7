package domain

// Split Model. A one-off expense split between members; MemberAmounts holds
// the per-member share as a JSON object string.
type Split struct {
	ID            uint    `gorm:"primaryKey"`           // Primary key
	OwnerID       uint    `gorm:"index;not null"`       // Owning user
	Name          string  `gorm:"not null"`             // Split name
	Amount        float64 `gorm:"not null;default:0"`   // Total amount being split
	Members       string  `gorm:"not null"`             // Member labels, "|"-joined
	MemberAmounts string  // JSON object: member label -> share
	CreatedAt     int64   `gorm:"autoCreateTime:milli"` // Timestamp of creation in milliseconds
}
