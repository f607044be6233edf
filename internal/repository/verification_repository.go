package repository

import (
	"time"

	"github.com/profolio/profolio/internal/domain"

	"gorm.io/gorm"
)

type VerificationRepository interface {
	// DeleteUnconfirmed removes pending records so a fresh request always
	// leaves exactly one live code per email.
	DeleteUnconfirmed(email string) error
	Create(v *domain.EmailVerification) error
	FindUnconfirmed(email, code string) (*domain.EmailVerification, error)
	// MarkConfirmed flips the record to confirmed and refreshes its
	// timestamp to the confirmation instant.
	MarkConfirmed(id uint, now time.Time) error
}

type GormVerificationRepository struct{ db *gorm.DB }

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &GormVerificationRepository{db: db}
}

func (r *GormVerificationRepository) DeleteUnconfirmed(email string) error {
	return r.db.Where("email = ? AND confirmed = ?", email, false).
		Delete(&domain.EmailVerification{}).Error
}

func (r *GormVerificationRepository) Create(v *domain.EmailVerification) error {
	return r.db.Create(v).Error
}

func (r *GormVerificationRepository) FindUnconfirmed(email, code string) (*domain.EmailVerification, error) {
	var v domain.EmailVerification
	err := r.db.Where("email = ? AND code = ? AND confirmed = ?", email, code, false).
		First(&v).Error
	if err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

func (r *GormVerificationRepository) MarkConfirmed(id uint, now time.Time) error {
	res := r.db.Model(&domain.EmailVerification{}).
		Where("id = ? AND confirmed = ?", id, false).
		Updates(map[string]any{"confirmed": true, "issued_at": now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
