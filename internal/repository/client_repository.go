package repository

import (
	"github.com/samyakjain16/SkillVisaFinderNew/internal/model"
	"gorm.io/gorm"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db}
}

func (r *ClientRepository) Create(c *model.Client) error {
	return r.db.Create(c).Error
}

func (r *ClientRepository) Save(c *model.Client) error {
	return r.db.Save(c).Error
}

func (r *ClientRepository) FindByID(id, userID string) (*model.Client, error) {
	var c model.Client
	err := r.db.First(&c, "id = ? AND user_id = ?", id, userID).Error
	return &c, err
}

func (r *ClientRepository) FindByUser(userID string) ([]model.Client, error) {
	var clients []model.Client
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&clients).Error
	return clients, err
}
