package service

import (
	"testing"
	"time"

	"supercharge_backend/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func metricsTestPath() *catalog.CareerPath {
	return &catalog.CareerPath{
		ID:   "test-path",
		Name: "Test Path",
		Milestones: []catalog.Milestone{
			{ID: "a", Order: 1, EstimatedDays: 2},
			{ID: "b", Order: 2, EstimatedDays: 3},
			{ID: "c", Order: 3, EstimatedDays: 5},
		},
	}
}

func completedAt(ids ...string) map[string]time.Time {
	now := time.Now()
	m := make(map[string]time.Time, len(ids))
	for _, id := range ids {
		m[id] = now
	}
	return m
}

func TestComputePathMetrics(t *testing.T) {
	path := metricsTestPath()

	tests := []struct {
		name      string
		completed map[string]time.Time
		want      PathMetrics
	}{
		{
			name:      "empty",
			completed: completedAt(),
			want:      PathMetrics{CompletedMilestones: 0, TotalMilestones: 3, CompletionPercent: 0, CompletedDays: 0, TotalDays: 10},
		},
		{
			name:      "two of three rounds up",
			completed: completedAt("a", "b"),
			want:      PathMetrics{CompletedMilestones: 2, TotalMilestones: 3, CompletionPercent: 67, CompletedDays: 5, TotalDays: 10},
		},
		{
			name:      "one of three rounds down",
			completed: completedAt("a"),
			want:      PathMetrics{CompletedMilestones: 1, TotalMilestones: 3, CompletionPercent: 33, CompletedDays: 2, TotalDays: 10},
		},
		{
			name:      "all complete",
			completed: completedAt("a", "b", "c"),
			want:      PathMetrics{CompletedMilestones: 3, TotalMilestones: 3, CompletionPercent: 100, CompletedDays: 10, TotalDays: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputePathMetrics(path, tt.completed))
		})
	}
}

func TestComputePathMetricsIgnoresUnknownMilestones(t *testing.T) {
	path := metricsTestPath()

	got := ComputePathMetrics(path, completedAt("a", "ghost", "another-ghost"))
	assert.Equal(t, 1, got.CompletedMilestones)
	assert.Equal(t, 33, got.CompletionPercent)
	assert.Equal(t, 2, got.CompletedDays)
}

func TestComputePathMetricsBounds(t *testing.T) {
	c := catalog.Default()
	for _, p := range c.Paths() {
		path, _ := c.Path(p.ID)

		all := make(map[string]time.Time)
		for _, m := range path.Milestones {
			got := ComputePathMetrics(path, all)
			assert.GreaterOrEqual(t, got.CompletionPercent, 0)
			assert.LessOrEqual(t, got.CompletionPercent, 100)
			all[m.ID] = time.Now()
		}
		got := ComputePathMetrics(path, all)
		assert.Equal(t, 100, got.CompletionPercent)
		assert.Equal(t, got.TotalDays, got.CompletedDays)
	}
}
