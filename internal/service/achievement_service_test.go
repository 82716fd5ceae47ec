package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionsMatchPredicates(t *testing.T) {
	require.Len(t, achievementDefinitions, len(achievementPredicates))
	for _, def := range achievementDefinitions {
		assert.Contains(t, achievementPredicates, def.ID)
		assert.NotEmpty(t, def.Name)
		assert.NotEmpty(t, def.Icon)
		assert.NotEmpty(t, def.Description)
	}
}

func TestFirstStepPredicate(t *testing.T) {
	pred := achievementPredicates[AchievementFirstStep]

	assert.False(t, pred(nil))
	assert.False(t, pred([]pathStats{{PathID: "a", Completed: 0, Total: 5}}))
	assert.True(t, pred([]pathStats{{PathID: "a", Completed: 1, Total: 5}}))
	assert.True(t, pred([]pathStats{
		{PathID: "a", Completed: 0, Total: 5},
		{PathID: "b", Completed: 1, Total: 5},
	}))
}

func TestHalfwayHeroPredicate(t *testing.T) {
	pred := achievementPredicates[AchievementHalfwayHero]

	// 2/5 未到一半，3/5 过半
	assert.False(t, pred([]pathStats{{PathID: "a", Completed: 2, Total: 5}}))
	assert.True(t, pred([]pathStats{{PathID: "a", Completed: 3, Total: 5}}))
	// 偶数总量时恰好一半即可
	assert.True(t, pred([]pathStats{{PathID: "a", Completed: 2, Total: 4}}))
	// 跨路径不累计
	assert.False(t, pred([]pathStats{
		{PathID: "a", Completed: 2, Total: 5},
		{PathID: "b", Completed: 2, Total: 5},
	}))
}

func TestPathMasterPredicate(t *testing.T) {
	pred := achievementPredicates[AchievementPathMaster]

	assert.False(t, pred([]pathStats{{PathID: "a", Completed: 4, Total: 5}}))
	assert.True(t, pred([]pathStats{{PathID: "a", Completed: 5, Total: 5}}))
	// 空路径不算完成
	assert.False(t, pred([]pathStats{{PathID: "a", Completed: 0, Total: 0}}))
}

func TestSpeedDemonPredicate(t *testing.T) {
	pred := achievementPredicates[AchievementSpeedDemon]
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	full := func(elapsed time.Duration) []pathStats {
		return []pathStats{{
			PathID:      "a",
			Completed:   5,
			Total:       5,
			NominalDays: 10,
			StartedAt:   start,
			CompletedAt: start.Add(elapsed),
		}}
	}

	assert.True(t, pred(full(9*24*time.Hour)))
	assert.True(t, pred(full(10*24*time.Hour-time.Nanosecond)))
	// 恰好用满预估天数不算提前
	assert.False(t, pred(full(10*24*time.Hour)))
	assert.False(t, pred(full(11*24*time.Hour)))

	// 未完成的路径无论多快都不触发
	fast := full(time.Hour)
	fast[0].Completed = 4
	assert.False(t, pred(fast))
}

func TestMultiPathPredicate(t *testing.T) {
	pred := achievementPredicates[AchievementMultiPath]

	one := []pathStats{{PathID: "a", Completed: 5, Total: 5}}
	assert.False(t, pred(one))

	two := append(one, pathStats{PathID: "b", Completed: 5, Total: 5})
	assert.True(t, pred(two))

	// 第二条路径接近完成也不够
	almost := append(one, pathStats{PathID: "b", Completed: 4, Total: 5})
	assert.False(t, pred(almost))
}

func TestPredicatesMonotonicUnderProgress(t *testing.T) {
	// 任何谓词一旦为真，增加完成量后仍为真（解锁永不回收的前提）
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	stats := []pathStats{
		{PathID: "a", Completed: 3, Total: 5, NominalDays: 10, StartedAt: start},
		{PathID: "b", Completed: 5, Total: 5, NominalDays: 10, StartedAt: start, CompletedAt: start.Add(24 * time.Hour)},
	}

	held := make(map[string]bool)
	for id, pred := range achievementPredicates {
		held[id] = pred(stats)
	}

	grown := []pathStats{
		{PathID: "a", Completed: 5, Total: 5, NominalDays: 10, StartedAt: start, CompletedAt: start.Add(48 * time.Hour)},
		{PathID: "b", Completed: 5, Total: 5, NominalDays: 10, StartedAt: start, CompletedAt: start.Add(24 * time.Hour)},
	}

	for id, pred := range achievementPredicates {
		if held[id] {
			assert.True(t, pred(grown), "predicate %s regressed", id)
		}
	}
}

func TestEvaluatePersistsUnlocksOnce(t *testing.T) {
	f := newEngineFixture(t)
	user := f.createUser(t, "gus")

	f.completeMilestones(t, user.ID, "software-dev", 1)

	unlocked, err := f.achievements.GetUnlockedIDs(user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{AchievementFirstStep}, unlocked)

	// 状态未变时重跑评估不产生任何新解锁
	newly, err := f.achievements.Evaluate(user.ID)
	require.NoError(t, err)
	assert.Empty(t, newly)

	unlocked, err = f.achievements.GetUnlockedIDs(user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{AchievementFirstStep}, unlocked)
}

func TestUnlocksSurviveProgressRollback(t *testing.T) {
	f := newEngineFixture(t)
	user := f.createUser(t, "hana")

	path, _ := f.catalog.Path("software-dev")
	first := path.Milestones[0].ID

	_, err := f.progress.SetMilestoneCompletion(user.ID, "software-dev", first, true)
	require.NoError(t, err)
	_, err = f.progress.SetMilestoneCompletion(user.ID, "software-dev", first, false)
	require.NoError(t, err)

	unlocked, err := f.achievements.GetUnlockedIDs(user.ID)
	require.NoError(t, err)
	assert.Contains(t, unlocked, AchievementFirstStep)
}

func TestFullPathUnlocksMasterTier(t *testing.T) {
	f := newEngineFixture(t)
	user := f.createUser(t, "iris")

	f.completePath(t, user.ID, "software-dev")

	unlocked, err := f.achievements.GetUnlockedIDs(user.ID)
	require.NoError(t, err)
	assert.Contains(t, unlocked, AchievementFirstStep)
	assert.Contains(t, unlocked, AchievementHalfwayHero)
	assert.Contains(t, unlocked, AchievementPathMaster)
	assert.NotContains(t, unlocked, AchievementMultiPath)

	f.completePath(t, user.ID, "web3")

	unlocked, err = f.achievements.GetUnlockedIDs(user.ID)
	require.NoError(t, err)
	assert.Contains(t, unlocked, AchievementMultiPath)
}
