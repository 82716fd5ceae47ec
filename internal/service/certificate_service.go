package service

import (
	"context"
	"encoding/json"
	"fmt"
	"supercharge_backend/internal/catalog"
	"supercharge_backend/internal/model"
	"supercharge_backend/internal/repository"
	"supercharge_backend/internal/util"
	"supercharge_backend/pkg/logger"
	"supercharge_backend/pkg/monitoring"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const certificateCachePrefix = "certificate:"

type CertificateService struct {
	CertRepo           *repository.CertificateRepository
	ProgressRepo       *repository.ProgressRepository
	AchievementService *AchievementService
	UserRepo           *repository.UserRepository
	Catalog            *catalog.Catalog
	Redis              *redis.Client

	// 每 (user, path) 一把锁，保证"至多一张证书"在并发签发下也成立。
	// 锁表只增不减，每个签发过证书的 (user, path) 常驻一个互斥量。
	mu         sync.Mutex
	issueLocks map[string]*sync.Mutex
}

func NewCertificateService(
	certRepo *repository.CertificateRepository,
	progressRepo *repository.ProgressRepository,
	achievementService *AchievementService,
	userRepo *repository.UserRepository,
	cat *catalog.Catalog,
	rdb *redis.Client,
) *CertificateService {
	return &CertificateService{
		CertRepo:           certRepo,
		ProgressRepo:       progressRepo,
		AchievementService: achievementService,
		UserRepo:           userRepo,
		Catalog:            cat,
		Redis:              rdb,
		issueLocks:         make(map[string]*sync.Mutex),
	}
}

func (s *CertificateService) issueLock(userID uint, pathID string) *sync.Mutex {
	key := fmt.Sprintf("%d:%s", userID, pathID)
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.issueLocks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.issueLocks[key] = lock
	}
	return lock
}

// Issue 为100%完成的路径签发证书。重复调用返回既有证书，不报错也不重复签发。
// 用户名、路径名、成就列表都是签发时刻的值拷贝。
func (s *CertificateService) Issue(userID uint, pathID string) (*model.Certificate, error) {
	path, ok := s.Catalog.Path(pathID)
	if !ok {
		return nil, util.NewNotFound("career path", pathID)
	}

	lock := s.issueLock(userID, pathID)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.CertRepo.FindByUserAndPath(userID, pathID)
	if err == nil {
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	record, err := s.ProgressRepo.FindByUserAndPath(userID, pathID)
	completedCount := 0
	if err == nil {
		completedCount = len(record.CompletedSet())
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	if completedCount < len(path.Milestones) {
		return nil, &util.IncompleteError{
			PathID:    pathID,
			Completed: completedCount,
			Total:     len(path.Milestones),
		}
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	achievements, err := s.AchievementService.GetUnlockedIDs(userID)
	if err != nil {
		return nil, err
	}

	cert := &model.Certificate{
		UserID:          userID,
		PathID:          pathID,
		UserName:        user.Name,
		PathName:        path.Name,
		TotalMilestones: len(path.Milestones),
		Achievements:    achievements,
		CompletionDate:  time.Now(),
	}
	if err := s.CertRepo.Create(cert); err != nil {
		return nil, err
	}

	monitoring.CertificatesIssued.Inc()
	logger.Log.Info("certificate issued",
		zap.Uint("userId", userID),
		zap.String("pathId", pathID),
		zap.String("certificateId", cert.ID))
	return cert, nil
}

// Lookup 公开查询，无需身份。证书不可变，命中一次后走Redis缓存。
func (s *CertificateService) Lookup(ctx context.Context, certificateID string) (*model.Certificate, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, certificateCachePrefix+certificateID).Result()
		if err == nil {
			var cert model.Certificate
			if err := json.Unmarshal([]byte(cached), &cert); err == nil {
				return &cert, nil
			}
		}
	}

	cert, err := s.CertRepo.FindByID(certificateID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.NewNotFound("certificate", certificateID)
	}
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(cert); err == nil {
			if err := s.Redis.Set(ctx, certificateCachePrefix+cert.ID, data, 24*time.Hour).Err(); err != nil {
				logger.Log.Warn("certificate cache write failed", zap.Error(err))
			}
		}
	}
	return cert, nil
}
