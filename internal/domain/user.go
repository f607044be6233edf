package domain

import "time"

const (
	TierBasic  = "basic"
	TierMember = "member"
)

// User is keyed by the verified email address.
type User struct {
	Email          string    `gorm:"primaryKey;size:255" json:"email"`
	Nickname       string    `gorm:"uniqueIndex;size:64;not null" json:"nickname"`
	PasswordDigest string    `gorm:"size:1024;not null" json:"-"`
	IsAdmin        bool      `gorm:"not null;default:false" json:"is_admin"`
	Tier           string    `gorm:"size:32;not null;default:basic" json:"tier"`
	MemberID       *string   `gorm:"size:64;index" json:"member_id,omitempty"`
	LegalName      *string   `gorm:"size:255" json:"-"`
	BirthDate      *string   `gorm:"size:8" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
