package service

import (
	"testing"

	"supercharge_backend/internal/config"
	"supercharge_backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestStorageFallsBackToLocalOnBadMinio(t *testing.T) {
	logger.Log = zap.NewNop()

	cfg := &config.Config{}
	cfg.Storage.Type = "minio"
	cfg.Storage.MinioEndpoint = "not a valid endpoint"
	cfg.Storage.LocalPath = t.TempDir()

	s := NewStorageService(cfg)
	assert.IsType(t, &LocalStorageProvider{}, s.Provider)
}

func TestStorageDefaultsToLocal(t *testing.T) {
	logger.Log = zap.NewNop()

	cfg := &config.Config{}
	cfg.Storage.Type = "local"
	cfg.Storage.LocalPath = t.TempDir()

	s := NewStorageService(cfg)
	assert.IsType(t, &LocalStorageProvider{}, s.Provider)
}
