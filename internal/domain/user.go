package domain

// User Model
type User struct {
	ID                  uint     `gorm:"primaryKey"`       // Primary key
	Name                string   `gorm:"not null"`         // Display name
	Email               string   `gorm:"uniqueIndex;not null"` // Unique login email, stored lowercase
	PasswordHash        string   `gorm:"not null"`         // Hashed password
	Avatar              string   // Avatar identifier chosen by the user
	MonthlyIncome       *float64 // Monthly income set during onboarding
	CurrentBalance      *float64 // Starting balance set during onboarding
	OnboardingCompleted bool     `gorm:"default:false"`        // Whether onboarding has finished
	CreatedAt           int64    `gorm:"autoCreateTime:milli"` // Timestamp of creation in milliseconds
}
