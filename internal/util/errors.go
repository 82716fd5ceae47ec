package util

import "fmt"

// NotFoundError 资源不存在（路径/里程碑/证书/分享快照），可安全暴露给匿名访问者
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func NewNotFound(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError 输入不合法（测验答卷、未知的里程碑ID等）
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IncompleteError 路径未100%完成时申请证书
type IncompleteError struct {
	PathID    string
	Completed int
	Total     int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("path %s is not complete: %d of %d milestones", e.PathID, e.Completed, e.Total)
}

// ConflictError 预留给未来的唯一性冲突（当前幂等路径已覆盖）
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
