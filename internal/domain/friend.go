package domain

// Friend Model. Materialized from an accepted invite; LimitAmount is the
// spending limit the owner granted this friend.
type Friend struct {
	ID          uint    `gorm:"primaryKey" json:"id"`                   // Primary key
	OwnerID     uint    `gorm:"index;not null" json:"-"`                // Owning user
	InviteID    *uint   `json:"-"`                                     // Invite this friend came from, if any
	Name        string  `gorm:"not null" json:"name"`                   // Friend display name
	Email       string  `gorm:"index;not null" json:"email"`            // Friend email
	LimitAmount float64 `gorm:"not null;default:0" json:"limitAmount"`  // Spending limit set by the owner
	CreatedAt   int64   `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}
