package repository

import (
	"github.com/profolio/profolio/internal/domain"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	FindByUserEmail(email string) (*domain.Profile, error)
	Create(p *domain.Profile) error
	// Replace overwrites the profile row and every optional collection
	// wholesale. Fields are never partially merged.
	Replace(p *domain.Profile) error
	UpdateImageKey(email, key string) error
}

type GormProfileRepository struct{ db *gorm.DB }

func NewProfileRepository(db *gorm.DB) ProfileRepository { return &GormProfileRepository{db: db} }

func (r *GormProfileRepository) FindByUserEmail(email string) (*domain.Profile, error) {
	var p domain.Profile
	err := r.db.
		Preload("Positions").
		Preload("Technologies").
		Preload("Awards").
		Preload("Links").
		Where("user_email = ?", email).
		First(&p).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *GormProfileRepository) Create(p *domain.Profile) error {
	return translate(r.db.Create(p).Error)
}

func (r *GormProfileRepository) Replace(p *domain.Profile) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Profile{UserEmail: p.UserEmail}).
			Select("is_open", "introduction").
			Updates(map[string]any{"is_open": p.IsOpen, "introduction": p.Introduction}).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.Profile{UserEmail: p.UserEmail}).
			Association("Positions").Replace(p.Positions); err != nil {
			return err
		}
		if err := tx.Model(&domain.Profile{UserEmail: p.UserEmail}).
			Association("Technologies").Replace(p.Technologies); err != nil {
			return err
		}
		if err := tx.Where("user_email = ?", p.UserEmail).Delete(&domain.Award{}).Error; err != nil {
			return err
		}
		for i := range p.Awards {
			p.Awards[i].ID = 0
			p.Awards[i].UserEmail = p.UserEmail
		}
		if len(p.Awards) > 0 {
			if err := tx.Create(&p.Awards).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_email = ?", p.UserEmail).Delete(&domain.ProfileLink{}).Error; err != nil {
			return err
		}
		for i := range p.Links {
			p.Links[i].ID = 0
			p.Links[i].UserEmail = p.UserEmail
		}
		if len(p.Links) > 0 {
			if err := tx.Create(&p.Links).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormProfileRepository) UpdateImageKey(email, key string) error {
	res := r.db.Model(&domain.Profile{}).Where("user_email = ?", email).
		Update("image_key", key)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
