package service

import (
	"fmt"
	"sort"
	"supercharge_backend/internal/catalog"
	"supercharge_backend/internal/model"
	"supercharge_backend/internal/repository"
	"supercharge_backend/internal/util"
	"sync"
	"time"

	"gorm.io/gorm"
)

// ProgressView 进度记录加派生指标的对外视图
type ProgressView struct {
	PathID              string      `json:"path_id"`
	CompletedMilestones []string    `json:"completed_milestones"`
	Metrics             PathMetrics `json:"metrics"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

// ToggleResult 里程碑切换的结果：最新进度视图加本次新解锁的成就
type ToggleResult struct {
	Progress             ProgressView `json:"progress"`
	UnlockedAchievements []string     `json:"unlocked_achievements"`
}

type ProgressService struct {
	ProgressRepo       *repository.ProgressRepository
	AchievementService *AchievementService
	Catalog            *catalog.Catalog

	// 每用户一把锁：里程碑切换和随后的成就评估是一个逻辑事务，
	// 同一用户的并发切换必须串行，不同用户互不影响。
	// 锁表只增不减，进程生命周期内每活跃用户常驻一个互斥量。
	mu        sync.Mutex
	userLocks map[uint]*sync.Mutex
}

func NewProgressService(
	progressRepo *repository.ProgressRepository,
	achievementService *AchievementService,
	cat *catalog.Catalog,
) *ProgressService {
	return &ProgressService{
		ProgressRepo:       progressRepo,
		AchievementService: achievementService,
		Catalog:            cat,
		userLocks:          make(map[uint]*sync.Mutex),
	}
}

func (s *ProgressService) userLock(userID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	return lock
}

// GetProgress 返回用户在指定路径上的进度。没有记录时返回空进度，不落库。
func (s *ProgressService) GetProgress(userID uint, pathID string) (*ProgressView, error) {
	path, ok := s.Catalog.Path(pathID)
	if !ok {
		return nil, util.NewNotFound("career path", pathID)
	}

	record, err := s.ProgressRepo.FindByUserAndPath(userID, pathID)
	if err == gorm.ErrRecordNotFound {
		view := emptyView(path)
		return &view, nil
	}
	if err != nil {
		return nil, err
	}

	view := s.buildView(path, record)
	return &view, nil
}

// GetAllProgress 返回用户在全部已触达路径上的进度视图
func (s *ProgressService) GetAllProgress(userID uint) ([]ProgressView, error) {
	records, err := s.ProgressRepo.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}

	views := make([]ProgressView, 0, len(records))
	for i := range records {
		path, ok := s.Catalog.Path(records[i].PathID)
		if !ok {
			continue
		}
		views = append(views, s.buildView(path, &records[i]))
	}
	return views, nil
}

// SetMilestoneCompletion 切换里程碑完成状态并同步重评估成就。
// 评估失败时向调用方返回错误（即使切换本身已落库），调用方据此显式重试。
func (s *ProgressService) SetMilestoneCompletion(userID uint, pathID, milestoneID string, completed bool) (*ToggleResult, error) {
	path, ok := s.Catalog.Path(pathID)
	if !ok {
		return nil, util.NewNotFound("career path", pathID)
	}
	if _, ok := s.Catalog.Milestone(pathID, milestoneID); !ok {
		return nil, util.NewNotFound("milestone", milestoneID)
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	record, err := s.ProgressRepo.GetOrCreate(userID, pathID)
	if err != nil {
		return nil, err
	}

	if completed {
		err = s.ProgressRepo.AddCompletion(record.ID, milestoneID, time.Now())
	} else {
		err = s.ProgressRepo.RemoveCompletion(record.ID, milestoneID)
	}
	if err != nil {
		return nil, err
	}

	record, err = s.ProgressRepo.FindByUserAndPath(userID, pathID)
	if err != nil {
		return nil, err
	}

	unlocked, err := s.AchievementService.Evaluate(userID)
	if err != nil {
		return nil, fmt.Errorf("milestone toggle saved but achievement evaluation failed: %w", err)
	}

	view := s.buildView(path, record)
	return &ToggleResult{Progress: view, UnlockedAchievements: unlocked}, nil
}

func (s *ProgressService) buildView(path *catalog.CareerPath, record *model.PathProgress) ProgressView {
	completed := record.CompletedSet()

	ids := make([]string, 0, len(completed))
	for id := range completed {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ProgressView{
		PathID:              path.ID,
		CompletedMilestones: ids,
		Metrics:             ComputePathMetrics(path, completed),
		UpdatedAt:           record.UpdatedAt,
	}
}

func emptyView(path *catalog.CareerPath) ProgressView {
	return ProgressView{
		PathID:              path.ID,
		CompletedMilestones: []string{},
		Metrics:             ComputePathMetrics(path, nil),
	}
}
