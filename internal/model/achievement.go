package model

import "time"

// AchievementDefinition 成就定义，进程启动时加载的只读配置，不落库
type AchievementDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// UserAchievement 成就解锁记录，每 (user, achievement) 至多一行，只增不删
type UserAchievement struct {
	BaseModel
	UserID        uint      `gorm:"uniqueIndex:idx_user_achievement;not null" json:"userId"`
	AchievementID string    `gorm:"uniqueIndex:idx_user_achievement;size:64;not null" json:"achievementId"`
	UnlockedAt    time.Time `gorm:"not null" json:"unlockedAt"`
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}
