package model

// ShareSnapshot 进度分享快照，创建后不可变。
// 与证书不同：同一 (user, path) 可以反复分享，每次都生成新快照，历史全部保留。
type ShareSnapshot struct {
	UUIDBase
	UserID              uint     `gorm:"index;not null" json:"-"`
	PathID              string   `gorm:"size:64;not null" json:"path_id"`
	UserName            string   `gorm:"size:100;not null" json:"user_name"`
	PathName            string   `gorm:"size:255;not null" json:"path_name"`
	CompletedMilestones int      `gorm:"not null" json:"completed_milestones"`
	TotalMilestones     int      `gorm:"not null" json:"total_milestones"`
	Achievements        []string `gorm:"serializer:json;type:json" json:"achievements"`
}

func (ShareSnapshot) TableName() string {
	return "share_snapshots"
}
