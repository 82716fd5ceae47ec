package service

import (
	"math"
	"supercharge_backend/internal/catalog"
	"time"
)

// PathMetrics 路径维度的派生指标。永远即时计算，不落库，避免存储值与展示值漂移。
type PathMetrics struct {
	CompletedMilestones int `json:"completed_milestones"`
	TotalMilestones     int `json:"total_milestones"`
	CompletionPercent   int `json:"completion_percent"`
	CompletedDays       int `json:"completed_days"`
	TotalDays           int `json:"total_days"`
}

// ComputePathMetrics 由目录里程碑与完成集合推导指标。
// 只统计目录中真实存在的里程碑，无关ID不计入。
func ComputePathMetrics(path *catalog.CareerPath, completed map[string]time.Time) PathMetrics {
	m := PathMetrics{TotalMilestones: len(path.Milestones)}

	for _, milestone := range path.Milestones {
		m.TotalDays += milestone.EstimatedDays
		if _, ok := completed[milestone.ID]; ok {
			m.CompletedMilestones++
			m.CompletedDays += milestone.EstimatedDays
		}
	}

	if m.TotalMilestones > 0 {
		m.CompletionPercent = int(math.Round(100 * float64(m.CompletedMilestones) / float64(m.TotalMilestones)))
	}
	return m
}
