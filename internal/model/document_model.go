package model

import (
	"time"

	"github.com/google/uuid"
)

// Document is an uploaded CV together with its extracted text.
type Document struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        string    `gorm:"type:varchar(64);index" json:"user_id"`
	ClientID      string    `gorm:"type:varchar(64);index" json:"client_id"`
	Filename      string    `gorm:"type:varchar(255)" json:"filename"`
	FileType      string    `gorm:"type:varchar(100)" json:"file_type"`
	FileSize      int64     `json:"file_size"`
	ExtractedText string    `gorm:"type:text" json:"extracted_text"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (d *Document) TableName() string {
	return "documents"
}

// DocumentOccupation is one ranked occupation match recorded against a
// document. Matches are recomputed whenever the document is re-analyzed.
type DocumentOccupation struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DocumentID          uuid.UUID `gorm:"type:uuid;index" json:"document_id"`
	AnzscoCode          string    `gorm:"type:varchar(10)" json:"anzsco_code"`
	OccupationName      string    `gorm:"type:varchar(255)" json:"occupation_name"`
	ConfidenceScore     float64   `json:"confidence_score"`
	SuggestedOccupation string    `gorm:"type:varchar(255)" json:"suggested_occupation"`
	CreatedAt           time.Time `json:"created_at"`
}

func (d *DocumentOccupation) TableName() string {
	return "document_occupations"
}
