package repository

import (
	"github.com/profolio/profolio/internal/domain"

	"gorm.io/gorm"
)

type ExternalIdentityRepository interface {
	// FindByIDNameBirthDate matches a registry row on all three attributes;
	// a partial match is treated as no match.
	FindByIDNameBirthDate(memberID, name, birthDate string) (*domain.ExternalIdentity, error)
	Create(e *domain.ExternalIdentity) error
}

type GormExternalIdentityRepository struct{ db *gorm.DB }

func NewExternalIdentityRepository(db *gorm.DB) ExternalIdentityRepository {
	return &GormExternalIdentityRepository{db: db}
}

func (r *GormExternalIdentityRepository) FindByIDNameBirthDate(memberID, name, birthDate string) (*domain.ExternalIdentity, error) {
	var e domain.ExternalIdentity
	err := r.db.Where("member_id = ? AND name = ? AND birth_date = ?", memberID, name, birthDate).
		First(&e).Error
	if err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r *GormExternalIdentityRepository) Create(e *domain.ExternalIdentity) error {
	return translate(r.db.Create(e).Error)
}
