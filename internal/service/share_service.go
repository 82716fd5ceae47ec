package service

import (
	"context"
	"encoding/json"
	"supercharge_backend/internal/catalog"
	"supercharge_backend/internal/model"
	"supercharge_backend/internal/repository"
	"supercharge_backend/internal/util"
	"supercharge_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shareCachePrefix = "share:"

type ShareService struct {
	ShareRepo          *repository.ShareRepository
	ProgressRepo       *repository.ProgressRepository
	AchievementService *AchievementService
	UserRepo           *repository.UserRepository
	Catalog            *catalog.Catalog
	Redis              *redis.Client
}

func NewShareService(
	shareRepo *repository.ShareRepository,
	progressRepo *repository.ProgressRepository,
	achievementService *AchievementService,
	userRepo *repository.UserRepository,
	cat *catalog.Catalog,
	rdb *redis.Client,
) *ShareService {
	return &ShareService{
		ShareRepo:          shareRepo,
		ProgressRepo:       progressRepo,
		AchievementService: achievementService,
		UserRepo:           userRepo,
		Catalog:            cat,
		Redis:              rdb,
	}
}

// Create 冻结当前进度生成新快照。任何进度（包括0%）都可以分享，
// 每次调用都产生新的快照，分享历史全部保留。
func (s *ShareService) Create(userID uint, pathID string) (*model.ShareSnapshot, error) {
	path, ok := s.Catalog.Path(pathID)
	if !ok {
		return nil, util.NewNotFound("career path", pathID)
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	completedCount := 0
	record, err := s.ProgressRepo.FindByUserAndPath(userID, pathID)
	if err == nil {
		completedCount = len(record.CompletedSet())
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	achievements, err := s.AchievementService.GetUnlockedIDs(userID)
	if err != nil {
		return nil, err
	}

	snapshot := &model.ShareSnapshot{
		UserID:              userID,
		PathID:              pathID,
		UserName:            user.Name,
		PathName:            path.Name,
		CompletedMilestones: completedCount,
		TotalMilestones:     len(path.Milestones),
		Achievements:        achievements,
	}
	if err := s.ShareRepo.Create(snapshot); err != nil {
		return nil, err
	}

	logger.Log.Info("progress snapshot shared",
		zap.Uint("userId", userID),
		zap.String("pathId", pathID),
		zap.String("shareId", snapshot.ID))
	return snapshot, nil
}

// Resolve 公开查询分享快照。快照不可变，命中一次后走Redis缓存。
func (s *ShareService) Resolve(ctx context.Context, shareID string) (*model.ShareSnapshot, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, shareCachePrefix+shareID).Result()
		if err == nil {
			var snapshot model.ShareSnapshot
			if err := json.Unmarshal([]byte(cached), &snapshot); err == nil {
				return &snapshot, nil
			}
		}
	}

	snapshot, err := s.ShareRepo.FindByID(shareID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.NewNotFound("share", shareID)
	}
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(snapshot); err == nil {
			if err := s.Redis.Set(ctx, shareCachePrefix+snapshot.ID, data, 24*time.Hour).Err(); err != nil {
				logger.Log.Warn("share cache write failed", zap.Error(err))
			}
		}
	}
	return snapshot, nil
}
