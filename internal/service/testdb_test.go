package service

import (
	"testing"

	"supercharge_backend/internal/catalog"
	"supercharge_backend/internal/model"
	"supercharge_backend/internal/repository"
	"supercharge_backend/pkg/logger"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// 内存数据库，每个测试独立一份
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	logger.Log = zap.NewNop()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.PathProgress{},
		&model.MilestoneCompletion{},
		&model.UserAchievement{},
		&model.Certificate{},
		&model.ShareSnapshot{},
	))
	return db
}

// engineFixture 把全部服务装配到同一个内存库上
type engineFixture struct {
	db           *gorm.DB
	catalog      *catalog.Catalog
	users        *repository.UserRepository
	progressRepo *repository.ProgressRepository
	achievements *AchievementService
	progress     *ProgressService
	certificates *CertificateService
	shares       *ShareService
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	db := newTestDB(t)
	cat := catalog.Default()

	userRepo := repository.NewUserRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	certRepo := repository.NewCertificateRepository(db)
	shareRepo := repository.NewShareRepository(db)

	achievementSvc := NewAchievementService(achievementRepo, progressRepo, cat)

	return &engineFixture{
		db:           db,
		catalog:      cat,
		users:        userRepo,
		progressRepo: progressRepo,
		achievements: achievementSvc,
		progress:     NewProgressService(progressRepo, achievementSvc, cat),
		certificates: NewCertificateService(certRepo, progressRepo, achievementSvc, userRepo, cat, nil),
		shares:       NewShareService(shareRepo, progressRepo, achievementSvc, userRepo, cat, nil),
	}
}

func (f *engineFixture) createUser(t *testing.T, name string) *model.User {
	t.Helper()
	user := &model.User{Name: name, Email: name + "@example.com", Password: "hashed"}
	require.NoError(t, f.users.Create(user))
	return user
}

// completeMilestones 按目录顺序标记前 n 个里程碑完成
func (f *engineFixture) completeMilestones(t *testing.T, userID uint, pathID string, n int) {
	t.Helper()
	path, ok := f.catalog.Path(pathID)
	require.True(t, ok)
	require.LessOrEqual(t, n, len(path.Milestones))

	for i := 0; i < n; i++ {
		_, err := f.progress.SetMilestoneCompletion(userID, pathID, path.Milestones[i].ID, true)
		require.NoError(t, err)
	}
}

func (f *engineFixture) completePath(t *testing.T, userID uint, pathID string) {
	t.Helper()
	path, ok := f.catalog.Path(pathID)
	require.True(t, ok)
	f.completeMilestones(t, userID, pathID, len(path.Milestones))
}
