package model

import (
	"time"

	"github.com/google/uuid"
)

// Client is an applicant managed by a migration agent. Education and
// experience extracted from the latest CV are stored as jsonb documents and
// decoded into dto types on read.
type Client struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string    `gorm:"type:varchar(64);index" json:"user_id"`
	FullName    string    `gorm:"type:varchar(255)" json:"full_name"`
	Email       string    `gorm:"type:varchar(255)" json:"email"`
	Phone       string    `gorm:"type:varchar(50)" json:"phone"`
	DateOfBirth string    `gorm:"type:varchar(20)" json:"date_of_birth"`
	Nationality string    `gorm:"type:varchar(100)" json:"nationality"`
	Education   string    `gorm:"type:jsonb" json:"education"`
	Experience  string    `gorm:"type:jsonb" json:"experience"`
	English     string    `gorm:"type:jsonb" json:"english"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *Client) TableName() string {
	return "clients"
}
