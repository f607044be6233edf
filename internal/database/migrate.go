package database

import (
	"github.com/profolio/profolio/internal/domain"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.EmailVerification{},
		&domain.Profile{},
		&domain.Award{},
		&domain.ProfileLink{},
		&domain.Position{},
		&domain.Technology{},
		&domain.ExternalIdentity{},
	)
}
