package domain

// Position and Technology are read-mostly lookup tables. Profiles hold
// their ids; names are resolved at read time.
type Position struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:128;not null" json:"name"`
}

type Technology struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:128;not null" json:"name"`
}
