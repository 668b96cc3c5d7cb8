package repository

import (
	"github.com/samyakjain16/SkillVisaFinderNew/internal/model"
	"gorm.io/gorm"
)

type AssessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{db}
}

func (r *AssessmentRepository) Create(a *model.Assessment) error {
	return r.db.Create(a).Error
}

func (r *AssessmentRepository) Save(a *model.Assessment) error {
	return r.db.Save(a).Error
}

func (r *AssessmentRepository) FindByID(id string) (*model.Assessment, error) {
	var a model.Assessment
	err := r.db.First(&a, "id = ?", id).Error
	return &a, err
}

func (r *AssessmentRepository) FindByUser(userID string) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&assessments).Error
	return assessments, err
}
