package domain

import "time"

// EmailVerification links an email to a one-time code. At most one
// unconfirmed row exists per email: a new code request deletes prior
// unconfirmed rows before inserting. Confirmed rows are kept but are
// never matched by confirmation lookups again.
type EmailVerification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:255;not null;index:idx_email_verifications_email" json:"email"`
	Code      string    `gorm:"size:16;not null" json:"-"`
	IssuedAt  time.Time `gorm:"not null" json:"issued_at"`
	Confirmed bool      `gorm:"not null;default:false" json:"confirmed"`
}
