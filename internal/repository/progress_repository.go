package repository

import (
	"supercharge_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// FindByUserAndPath 返回进度记录（含完成明细），不存在时返回 gorm.ErrRecordNotFound
func (r *ProgressRepository) FindByUserAndPath(userID uint, pathID string) (*model.PathProgress, error) {
	var progress model.PathProgress
	err := r.DB.Preload("Completions").
		Where("user_id = ? AND path_id = ?", userID, pathID).
		First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// FindAllByUser 返回用户在所有路径上的进度记录
func (r *ProgressRepository) FindAllByUser(userID uint) ([]model.PathProgress, error) {
	var records []model.PathProgress
	err := r.DB.Preload("Completions").
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// GetOrCreate 惰性创建进度记录
func (r *ProgressRepository) GetOrCreate(userID uint, pathID string) (*model.PathProgress, error) {
	progress, err := r.FindByUserAndPath(userID, pathID)
	if err == nil {
		return progress, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	progress = &model.PathProgress{UserID: userID, PathID: pathID}
	if err := r.DB.Create(progress).Error; err != nil {
		return nil, err
	}
	progress.Completions = []model.MilestoneCompletion{}
	return progress, nil
}

// AddCompletion 标记里程碑完成，已存在时不重复写入
func (r *ProgressRepository) AddCompletion(progressID uint, milestoneID string, completedAt time.Time) error {
	var existing model.MilestoneCompletion
	err := r.DB.Where("progress_id = ? AND milestone_id = ?", progressID, milestoneID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	completion := model.MilestoneCompletion{
		ProgressID:  progressID,
		MilestoneID: milestoneID,
		CompletedAt: completedAt,
	}
	return r.DB.Create(&completion).Error
}

// RemoveCompletion 取消里程碑完成标记，连同时间戳一起删除
func (r *ProgressRepository) RemoveCompletion(progressID uint, milestoneID string) error {
	return r.DB.Unscoped().
		Where("progress_id = ? AND milestone_id = ?", progressID, milestoneID).
		Delete(&model.MilestoneCompletion{}).Error
}
