package domain

// Invite statuses
const (
	InviteStatusPending  = "pending"
	InviteStatusAccepted = "accepted"
)

// Invite Model. An invite is just a name + email pair; the invited person
// does not need an account for the owner to add them to wallet member lists.
type Invite struct {
	ID        uint   `gorm:"primaryKey" json:"id"`                   // Primary key
	OwnerID   uint   `gorm:"index:idx_invite_owner_email,unique;not null" json:"-"` // Inviting user
	Token     string `gorm:"uniqueIndex;not null" json:"token"`      // Opaque token embedded in the invite link
	Name      string `gorm:"not null" json:"name"`                   // Invitee display name
	Email     string `gorm:"index:idx_invite_owner_email,unique;not null" json:"email"` // Invitee email, stored lowercase
	Status    string `gorm:"not null;default:pending" json:"status"` // pending or accepted
	CreatedAt int64  `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}
