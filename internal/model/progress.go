package model

import "time"

// PathProgress 用户在某条职业路径上的进度记录，首次操作时惰性创建，之后永不删除。
// CreatedAt 即该路径学习的起点，speed_demon 成就以它为计时起点。
type PathProgress struct {
	BaseModel
	UserID uint   `gorm:"uniqueIndex:idx_user_path;not null" json:"userId"`
	PathID string `gorm:"uniqueIndex:idx_user_path;size:64;not null" json:"pathId"`

	Completions []MilestoneCompletion `gorm:"foreignKey:ProgressID" json:"completions"`
}

func (PathProgress) TableName() string {
	return "path_progress"
}

// MilestoneCompletion 单个里程碑的完成标记及完成时间
type MilestoneCompletion struct {
	BaseModel
	ProgressID  uint      `gorm:"uniqueIndex:idx_progress_milestone;not null" json:"-"`
	MilestoneID string    `gorm:"uniqueIndex:idx_progress_milestone;size:64;not null" json:"milestoneId"`
	CompletedAt time.Time `gorm:"not null" json:"completedAt"`
}

func (MilestoneCompletion) TableName() string {
	return "milestone_completions"
}

// CompletedSet 返回已完成里程碑ID的集合
func (p *PathProgress) CompletedSet() map[string]time.Time {
	set := make(map[string]time.Time, len(p.Completions))
	for _, c := range p.Completions {
		set[c.MilestoneID] = c.CompletedAt
	}
	return set
}

// LatestCompletion 最近一次里程碑完成时间，没有任何完成时返回零值
func (p *PathProgress) LatestCompletion() time.Time {
	var latest time.Time
	for _, c := range p.Completions {
		if c.CompletedAt.After(latest) {
			latest = c.CompletedAt
		}
	}
	return latest
}
