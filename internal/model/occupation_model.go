package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// Occupation is one row of the ANZSCO reference catalog. Rows are imported by
// cmd/tools/catalog-importer and treated as immutable at runtime.
type Occupation struct {
	AnzscoCode         string          `gorm:"primaryKey;type:varchar(10)" json:"anzsco_code"`
	OccupationName     string          `gorm:"type:varchar(255);index" json:"occupation_name"`
	List               string          `gorm:"type:varchar(50)" json:"list"` // MLTSSL, STSOL, ROL
	VisaSubclasses     string          `gorm:"type:varchar(100)" json:"visa_subclasses"`
	AssessingAuthority string          `gorm:"type:varchar(100)" json:"assessing_authority"`
	Embedding          pgvector.Vector `gorm:"type:vector(3072)" json:"-"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

func (o *Occupation) TableName() string {
	return "occupations"
}
