package repository

import (
	"supercharge_backend/internal/model"

	"gorm.io/gorm"
)

type ShareRepository struct {
	DB *gorm.DB
}

func NewShareRepository(db *gorm.DB) *ShareRepository {
	return &ShareRepository{DB: db}
}

func (r *ShareRepository) Create(snapshot *model.ShareSnapshot) error {
	return r.DB.Create(snapshot).Error
}

func (r *ShareRepository) FindByID(id string) (*model.ShareSnapshot, error) {
	var snapshot model.ShareSnapshot
	err := r.DB.Where("id = ?", id).First(&snapshot).Error
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
