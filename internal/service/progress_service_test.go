package service

import (
	"errors"
	"testing"

	"supercharge_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleMarksMilestoneAndUnlocksFirstStep(t *testing.T) {
	f := newEngineFixture(t)
	user := f.createUser(t, "ada")

	path, _ := f.catalog.Path("software-dev")
	first := path.Milestones[0].ID

	result, err := f.progress.SetMilestoneCompletion(user.ID, "software-dev", first, true)
	require.NoError(t, err)

	assert.Equal(t, []string{first}, result.Progress.CompletedMilestones)
	assert.Equal(t, 1, result.Progress.Metrics.CompletedMilestones)
	assert.Contains(t, result.UnlockedAchievements, AchievementFirstStep)
}

func TestToggleIdempotent(t *testing.T) {
	f := newEngineFixture(t)
	user := f.createUser(t, "bob")

	path, _ := f.catalog.Path("software-dev")
	first := path.Milestones[0].ID

	_, err := f.progress.SetMilestoneCompletion(user.ID, "software-dev", first, true)
	require.NoError(t, err)

	record, err := f.progressRepo.FindByUserAndPath(user.ID, "software-dev")
	require.NoError(t, err)
	originalAt := record.CompletedSet()[first]

	// 重复标记：完成数不变，原始完成时间保留，也没有新成就
	result, err := f.progress.SetMilestoneCompletion(user.ID, "software-dev", first, true)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Progress.Metrics.CompletedMilestones)
	assert.Empty(t, result.UnlockedAchievements)

	record, err = f.progressRepo.FindByUserAndPath(user.ID, "software-dev")
	require.NoError(t, err)
	assert.True(t, originalAt.Equal(record.CompletedSet()[first]))
}

func TestToggleInvertible(t *testing.T) {
	f := newEngineFixture(t)
	user := f.createUser(t, "cara")

	path, _ := f.catalog.Path("software-dev")
	first := path.Milestones[0].ID

	_, err := f.progress.SetMilestoneCompletion(user.ID, "software-dev", first, true)
	require.NoError(t, err)

	result, err := f.progress.SetMilestoneCompletion(user.ID, "software-dev", first, false)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Progress.Metrics.CompletedMilestones)
	assert.Empty(t, result.Progress.CompletedMilestones)

	// 对从未完成的里程碑取消也是无操作
	result, err = f.progress.SetMilestoneCompletion(user.ID, "software-dev", path.Milestones[1].ID, false)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Progress.Metrics.CompletedMilestones)
}

func TestToggleUnknownIDs(t *testing.T) {
	f := newEngineFixture(t)
	user := f.createUser(t, "dan")

	var notFound *util.NotFoundError

	_, err := f.progress.SetMilestoneCompletion(user.ID, "no-such-path", "whatever", true)
	require.Error(t, err)
	assert.True(t, errors.As(err, &notFound))

	_, err = f.progress.SetMilestoneCompletion(user.ID, "software-dev", "no-such-milestone", true)
	require.Error(t, err)
	assert.True(t, errors.As(err, &notFound))
}

func TestGetProgressEmptyForUntouchedPath(t *testing.T) {
	f := newEngineFixture(t)
	user := f.createUser(t, "eve")

	view, err := f.progress.GetProgress(user.ID, "cybersecurity")
	require.NoError(t, err)
	assert.Equal(t, "cybersecurity", view.PathID)
	assert.Empty(t, view.CompletedMilestones)
	assert.Equal(t, 0, view.Metrics.CompletionPercent)
	assert.Equal(t, 5, view.Metrics.TotalMilestones)

	var notFound *util.NotFoundError
	_, err = f.progress.GetProgress(user.ID, "no-such-path")
	require.Error(t, err)
	assert.True(t, errors.As(err, &notFound))
}

func TestGetAllProgressOnlyTouchedPaths(t *testing.T) {
	f := newEngineFixture(t)
	user := f.createUser(t, "fay")

	f.completeMilestones(t, user.ID, "software-dev", 2)
	f.completeMilestones(t, user.ID, "web3", 1)

	views, err := f.progress.GetAllProgress(user.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	byPath := map[string]int{}
	for _, v := range views {
		byPath[v.PathID] = v.Metrics.CompletedMilestones
	}
	assert.Equal(t, 2, byPath["software-dev"])
	assert.Equal(t, 1, byPath["web3"])
}
