package repository

import (
	"github.com/samyakjain16/SkillVisaFinderNew/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OccupationRepository struct {
	db *gorm.DB
}

func NewOccupationRepository(db *gorm.DB) *OccupationRepository {
	return &OccupationRepository{db}
}

// FindAll returns the full occupation catalog in a single read, so a matching
// run works against one consistent snapshot.
func (r *OccupationRepository) FindAll() ([]model.Occupation, error) {
	var occupations []model.Occupation
	err := r.db.Order("anzsco_code").Find(&occupations).Error
	return occupations, err
}

func (r *OccupationRepository) FindByCode(code string) (*model.Occupation, error) {
	var occ model.Occupation
	err := r.db.First(&occ, "anzsco_code = ?", code).Error
	return &occ, err
}

// Upsert inserts or replaces one catalog row, keyed by ANZSCO code. Used by
// the catalog importer only.
func (r *OccupationRepository) Upsert(occ *model.Occupation) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "anzsco_code"}},
		UpdateAll: true,
	}).Create(occ).Error
}
