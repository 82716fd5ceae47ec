package service

import (
	"supercharge_backend/internal/catalog"
	"supercharge_backend/internal/model"
	"supercharge_backend/internal/repository"
	"supercharge_backend/pkg/logger"
	"supercharge_backend/pkg/monitoring"
	"time"

	"go.uber.org/zap"
)

const (
	AchievementFirstStep   = "first_step"
	AchievementHalfwayHero = "halfway_hero"
	AchievementPathMaster  = "path_master"
	AchievementSpeedDemon  = "speed_demon"
	AchievementMultiPath   = "multi_path"
)

// pathStats 单条路径的进度快照，成就谓词只依赖这些字段
type pathStats struct {
	PathID      string
	Completed   int
	Total       int
	NominalDays int
	// StartedAt 进度记录创建时间，CompletedAt 最后一个里程碑的完成时间（仅100%时有意义）。
	// 二者都来自存储的时间戳，重放评估结论不变。
	StartedAt   time.Time
	CompletedAt time.Time
}

func (s pathStats) full() bool {
	return s.Total > 0 && s.Completed == s.Total
}

// achievementPredicates 成就谓词表，与定义表一一对应。只读配置，启动后不再修改。
var achievementPredicates = map[string]func([]pathStats) bool{
	AchievementFirstStep: func(stats []pathStats) bool {
		for _, s := range stats {
			if s.Completed >= 1 {
				return true
			}
		}
		return false
	},
	AchievementHalfwayHero: func(stats []pathStats) bool {
		for _, s := range stats {
			if s.Total > 0 && s.Completed*2 >= s.Total {
				return true
			}
		}
		return false
	},
	AchievementPathMaster: func(stats []pathStats) bool {
		for _, s := range stats {
			if s.full() {
				return true
			}
		}
		return false
	},
	AchievementSpeedDemon: func(stats []pathStats) bool {
		for _, s := range stats {
			// 严格小于：恰好用满预估天数不算
			if s.full() && s.CompletedAt.Sub(s.StartedAt) < time.Duration(s.NominalDays)*24*time.Hour {
				return true
			}
		}
		return false
	},
	AchievementMultiPath: func(stats []pathStats) bool {
		count := 0
		for _, s := range stats {
			if s.full() {
				count++
			}
		}
		return count >= 2
	},
}

// achievementDefinitions 成就定义表，声明顺序即展示顺序
var achievementDefinitions = []model.AchievementDefinition{
	{ID: AchievementFirstStep, Name: "First Step", Icon: "🎯", Description: "Complete your first milestone"},
	{ID: AchievementHalfwayHero, Name: "Halfway Hero", Icon: "🚀", Description: "Reach 50% completion on any career path"},
	{ID: AchievementPathMaster, Name: "Path Master", Icon: "👑", Description: "Complete all milestones of a career path"},
	{ID: AchievementSpeedDemon, Name: "Speed Demon", Icon: "⚡", Description: "Finish a career path faster than its estimated schedule"},
	{ID: AchievementMultiPath, Name: "Multi-Path Explorer", Icon: "🌟", Description: "Complete two different career paths"},
}

type AchievementService struct {
	AchievementRepo *repository.AchievementRepository
	ProgressRepo    *repository.ProgressRepository
	Catalog         *catalog.Catalog
}

func NewAchievementService(
	achievementRepo *repository.AchievementRepository,
	progressRepo *repository.ProgressRepository,
	cat *catalog.Catalog,
) *AchievementService {
	return &AchievementService{
		AchievementRepo: achievementRepo,
		ProgressRepo:    progressRepo,
		Catalog:         cat,
	}
}

// Definitions 返回全部成就定义
func (s *AchievementService) Definitions() []model.AchievementDefinition {
	return achievementDefinitions
}

// GetUnlockedIDs 返回用户已解锁的成就ID，按解锁时间排序
func (s *AchievementService) GetUnlockedIDs(userID uint) ([]string, error) {
	unlocks, err := s.AchievementRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(unlocks))
	for i, u := range unlocks {
		ids[i] = u.AchievementID
	}
	return ids, nil
}

// Evaluate 对用户的跨路径进度重新评估全部成就谓词，为新成立的谓词写入解锁记录。
// 已有解锁永不撤销，重复调用无副作用，返回本次新解锁的成就ID。
func (s *AchievementService) Evaluate(userID uint) ([]string, error) {
	records, err := s.ProgressRepo.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}
	stats := s.buildStats(records)

	unlocks, err := s.AchievementRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	existing := make(map[string]bool, len(unlocks))
	for _, u := range unlocks {
		existing[u.AchievementID] = true
	}

	now := time.Now()
	var newlyUnlocked []string
	for _, def := range achievementDefinitions {
		if existing[def.ID] || !achievementPredicates[def.ID](stats) {
			continue
		}
		unlock := &model.UserAchievement{
			UserID:        userID,
			AchievementID: def.ID,
			UnlockedAt:    now,
		}
		if err := s.AchievementRepo.CreateUnlock(unlock); err != nil {
			return newlyUnlocked, err
		}
		monitoring.AchievementUnlocks.WithLabelValues(def.ID).Inc()
		logger.Log.Info("achievement unlocked",
			zap.Uint("userId", userID),
			zap.String("achievement", def.ID))
		newlyUnlocked = append(newlyUnlocked, def.ID)
	}

	return newlyUnlocked, nil
}

func (s *AchievementService) buildStats(records []model.PathProgress) []pathStats {
	stats := make([]pathStats, 0, len(records))
	for i := range records {
		record := &records[i]
		path, ok := s.Catalog.Path(record.PathID)
		if !ok {
			continue
		}
		completed := record.CompletedSet()
		metrics := ComputePathMetrics(path, completed)

		st := pathStats{
			PathID:      record.PathID,
			Completed:   metrics.CompletedMilestones,
			Total:       metrics.TotalMilestones,
			NominalDays: metrics.TotalDays,
			StartedAt:   record.CreatedAt,
		}
		if st.Total > 0 && st.Completed == st.Total {
			st.CompletedAt = record.LatestCompletion()
		}
		stats = append(stats, st)
	}
	return stats
}
