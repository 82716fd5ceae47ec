package repository

import (
	"supercharge_backend/internal/model"

	"gorm.io/gorm"
)

type CertificateRepository struct {
	DB *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{DB: db}
}

func (r *CertificateRepository) Create(cert *model.Certificate) error {
	return r.DB.Create(cert).Error
}

func (r *CertificateRepository) FindByID(id string) (*model.Certificate, error) {
	var cert model.Certificate
	err := r.DB.Where("id = ?", id).First(&cert).Error
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

func (r *CertificateRepository) FindByUserAndPath(userID uint, pathID string) (*model.Certificate, error) {
	var cert model.Certificate
	err := r.DB.Where("user_id = ? AND path_id = ?", userID, pathID).First(&cert).Error
	if err != nil {
		return nil, err
	}
	return &cert, nil
}
