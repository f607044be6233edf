package domain

// ExternalIdentity is one row of the membership registry consulted when
// registering a member-tier account. A registration is accepted only when
// (member id, name, birth date) match an existing row.
type ExternalIdentity struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	MemberID  string `gorm:"uniqueIndex;size:64;not null" json:"member_id"`
	Name      string `gorm:"size:255;not null" json:"name"`
	BirthDate string `gorm:"size:8;not null" json:"birth_date"`
}
