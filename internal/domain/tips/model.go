package tips

import "time"

// Tip categories (single source of truth)
const (
	CategoryFree = "free"
	CategoryVIP  = "vip"
)

// Confidence levels, ordered
const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)

type Tip struct {
	ID              string `gorm:"type:uuid;primaryKey"`
	Title           string `gorm:"not null"`
	Content         string `gorm:"type:text;not null"`
	Category        string `gorm:"type:varchar(10);not null;default:'free'"`
	Sport           string
	ConfidenceLevel string `gorm:"type:varchar(10);not null;default:'medium'"`
	IsActive        bool
	CreatedBy       string `gorm:"type:uuid"`

	Views       int
	Likes       int
	SuccessRate int

	CreatedAt time.Time
	UpdatedAt time.Time
}

func ValidCategory(c string) bool {
	return c == CategoryFree || c == CategoryVIP
}

func ValidConfidence(c string) bool {
	return c == ConfidenceLow || c == ConfidenceMedium || c == ConfidenceHigh
}
