package util

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"supercharge_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFailFromErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"not found", NewNotFound("career path", "nope"), http.StatusNotFound},
		{"validation", NewValidation("bad input"), http.StatusBadRequest},
		{"incomplete", &IncompleteError{PathID: "software-dev", Completed: 3, Total: 5}, http.StatusBadRequest},
		{"conflict", &ConflictError{Message: "already exists"}, http.StatusConflict},
		{"wrapped not found", errors.Join(errors.New("outer"), NewNotFound("certificate", "x")), http.StatusNotFound},
		{"unknown", errors.New("database on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			FailFromError(c, tt.err)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestNotFoundErrorMessage(t *testing.T) {
	assert.Equal(t, "career path not found: web3", NewNotFound("career path", "web3").Error())
	assert.Equal(t, "share snapshot not found", NewNotFound("share snapshot", "").Error())
}
