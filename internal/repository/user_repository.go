package repository

import (
	"errors"

	"github.com/profolio/profolio/internal/domain"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindByEmail(email string) (*domain.User, error)
	// FindByEmailOrNickname returns the first account colliding with either
	// identifier, used by the registration pre-check.
	FindByEmailOrNickname(email, nickname string) (*domain.User, error)
	// FindByEmailAndDigest performs the credential check as a single
	// filtered equality lookup.
	FindByEmailAndDigest(email, digest string) (*domain.User, error)
	FindByMemberID(memberID string) (*domain.User, error)
	Create(user *domain.User) error
}

type GormUserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &GormUserRepository{db: db} }

func (r *GormUserRepository) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *GormUserRepository) FindByEmailOrNickname(email, nickname string) (*domain.User, error) {
	var u domain.User
	if err := r.db.Where("email = ? OR nickname = ?", email, nickname).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *GormUserRepository) FindByEmailAndDigest(email, digest string) (*domain.User, error) {
	var u domain.User
	if err := r.db.Where("email = ? AND password_digest = ?", email, digest).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *GormUserRepository) FindByMemberID(memberID string) (*domain.User, error) {
	var u domain.User
	if err := r.db.Where("member_id = ?", memberID).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *GormUserRepository) Create(user *domain.User) error {
	return translate(r.db.Create(user).Error)
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
