package model

import "time"

// Certificate 路径100%完成后签发的不可变证书。
// 用户名、路径名等字段均为签发时刻的值拷贝，之后用户改名或目录调整都不影响已有证书。
type Certificate struct {
	UUIDBase
	UserID          uint      `gorm:"uniqueIndex:idx_cert_user_path;not null" json:"-"`
	PathID          string    `gorm:"uniqueIndex:idx_cert_user_path;size:64;not null" json:"path_id"`
	UserName        string    `gorm:"size:100;not null" json:"user_name"`
	PathName        string    `gorm:"size:255;not null" json:"path_name"`
	TotalMilestones int       `gorm:"not null" json:"total_milestones"`
	Achievements    []string  `gorm:"serializer:json;type:json" json:"achievements"`
	CompletionDate  time.Time `gorm:"not null" json:"completion_date"`
}

func (Certificate) TableName() string {
	return "certificates"
}
