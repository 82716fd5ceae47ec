package repository

import (
	"supercharge_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementRepository struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

// FindByUserID 返回用户的全部解锁记录
func (r *AchievementRepository) FindByUserID(userID uint) ([]model.UserAchievement, error) {
	var unlocks []model.UserAchievement
	err := r.DB.Where("user_id = ?", userID).
		Order("unlocked_at asc").
		Find(&unlocks).Error
	if err != nil {
		return nil, err
	}
	return unlocks, nil
}

// CreateUnlock 写入解锁记录。唯一索引冲突时静默跳过，保证并发重评估不产生重复行
func (r *AchievementRepository) CreateUnlock(unlock *model.UserAchievement) error {
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(unlock).Error
}
