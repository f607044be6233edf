package domain

import "time"

// Profile is the one-to-one extension of a User. Optional fields are
// independently absent; updates replace each field wholesale.
type Profile struct {
	UserEmail    string        `gorm:"primaryKey;size:255" json:"user_email"`
	IsOpen       bool          `gorm:"not null;default:false" json:"is_open"`
	ImageKey     string        `gorm:"size:1024" json:"-"`
	Introduction string        `gorm:"type:text" json:"introduction,omitempty"`
	Positions    []Position    `gorm:"many2many:profile_positions;foreignKey:UserEmail;references:ID" json:"positions,omitempty"`
	Technologies []Technology  `gorm:"many2many:profile_technologies;foreignKey:UserEmail;references:ID" json:"technologies,omitempty"`
	Awards       []Award       `gorm:"foreignKey:UserEmail;references:UserEmail" json:"awards,omitempty"`
	Links        []ProfileLink `gorm:"foreignKey:UserEmail;references:UserEmail" json:"links,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type Award struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserEmail string    `gorm:"size:255;not null;index" json:"-"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	AwardedAt time.Time `gorm:"not null" json:"awarded_at"`
}

type ProfileLink struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserEmail string `gorm:"size:255;not null;index" json:"-"`
	URL       string `gorm:"size:1024;not null" json:"url"`
}
