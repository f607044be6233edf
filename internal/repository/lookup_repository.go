package repository

import (
	"github.com/profolio/profolio/internal/domain"

	"gorm.io/gorm"
)

type LookupRepository interface {
	AllPositions() ([]domain.Position, error)
	AllTechnologies() ([]domain.Technology, error)
	PositionsByIDs(ids []uint) ([]domain.Position, error)
	TechnologiesByIDs(ids []uint) ([]domain.Technology, error)
}

type GormLookupRepository struct{ db *gorm.DB }

func NewLookupRepository(db *gorm.DB) LookupRepository { return &GormLookupRepository{db: db} }

func (r *GormLookupRepository) AllPositions() ([]domain.Position, error) {
	var out []domain.Position
	err := r.db.Order("id").Find(&out).Error
	return out, err
}

func (r *GormLookupRepository) AllTechnologies() ([]domain.Technology, error) {
	var out []domain.Technology
	err := r.db.Order("id").Find(&out).Error
	return out, err
}

func (r *GormLookupRepository) PositionsByIDs(ids []uint) ([]domain.Position, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []domain.Position
	err := r.db.Where("id IN ?", ids).Order("id").Find(&out).Error
	return out, err
}

func (r *GormLookupRepository) TechnologiesByIDs(ids []uint) ([]domain.Technology, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []domain.Technology
	err := r.db.Where("id IN ?", ids).Order("id").Find(&out).Error
	return out, err
}
