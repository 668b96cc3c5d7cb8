package repository

import (
	"github.com/samyakjain16/SkillVisaFinderNew/internal/model"
	"gorm.io/gorm"
)

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db}
}

func (r *DocumentRepository) Create(d *model.Document) error {
	return r.db.Create(d).Error
}

func (r *DocumentRepository) LatestByClient(clientID string) (*model.Document, error) {
	var d model.Document
	err := r.db.Where("client_id = ?", clientID).Order("created_at desc").First(&d).Error
	return &d, err
}

// ReplaceMatches swaps the recorded occupation matches for a document.
// Matches are derived data and recomputed whenever matching reruns.
func (r *DocumentRepository) ReplaceMatches(documentID string, matches []model.DocumentOccupation) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", documentID).Delete(&model.DocumentOccupation{}).Error; err != nil {
			return err
		}
		if len(matches) == 0 {
			return nil
		}
		return tx.Create(&matches).Error
	})
}

func (r *DocumentRepository) MatchesByDocument(documentID string) ([]model.DocumentOccupation, error) {
	var matches []model.DocumentOccupation
	err := r.db.Where("document_id = ?", documentID).
		Order("confidence_score desc").Find(&matches).Error
	return matches, err
}
