package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"supercharge_backend/internal/model"
	"supercharge_backend/internal/repository"
	"supercharge_backend/internal/util"

	"github.com/google/uuid"
)

type UserService struct {
	UserRepo *repository.UserRepository
	Storage  *StorageService
}

func NewUserService(userRepo *repository.UserRepository, storage *StorageService) *UserService {
	return &UserService{UserRepo: userRepo, Storage: storage}
}

type ProfileUpdateRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

func (s *UserService) UpdateProfile(userID uint, req ProfileUpdateRequest) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UploadAvatar 上传头像到配置的存储后端，返回访问URL
func (s *UserService) UploadAvatar(ctx context.Context, userID uint, fileHeader *multipart.FileHeader) (string, error) {
	ext := filepath.Ext(fileHeader.Filename)
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return "", util.NewValidation("unsupported avatar format: %s", ext)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	filename := fmt.Sprintf("avatars/%d_%s%s", userID, uuid.New().String(), ext)
	url, err := s.Storage.Upload(ctx, filename, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return "", err
	}
	user.Avatar = url
	if err := s.UserRepo.Update(user); err != nil {
		return "", err
	}

	return url, nil
}
