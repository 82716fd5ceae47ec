package service

import (
	"context"
	"errors"
	"testing"

	"supercharge_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareAllowedAtZeroPercent(t *testing.T) {
	f := newEngineFixture(t)
	user := f.createUser(t, "nina")

	snapshot, err := f.shares.Create(user.ID, "data-science")
	require.NoError(t, err)
	assert.Equal(t, 0, snapshot.CompletedMilestones)
	assert.Equal(t, 5, snapshot.TotalMilestones)
	assert.Equal(t, "nina", snapshot.UserName)
}

func TestShareCreatesDistinctImmutableSnapshots(t *testing.T) {
	f := newEngineFixture(t)
	user := f.createUser(t, "omar")

	f.completeMilestones(t, user.ID, "software-dev", 2)

	first, err := f.shares.Create(user.ID, "software-dev")
	require.NoError(t, err)

	f.completeMilestones(t, user.ID, "software-dev", 3)

	second, err := f.shares.Create(user.ID, "software-dev")
	require.NoError(t, err)

	// 每次分享都是新快照
	assert.NotEqual(t, first.ID, second.ID)

	// 两个快照都可解析，旧快照保留创建时刻的进度
	got, err := f.shares.Resolve(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CompletedMilestones)

	got, err = f.shares.Resolve(context.Background(), second.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.CompletedMilestones)
}

func TestShareUnknownPath(t *testing.T) {
	f := newEngineFixture(t)
	user := f.createUser(t, "pia")

	_, err := f.shares.Create(user.ID, "no-such-path")
	require.Error(t, err)

	var notFound *util.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestResolveUnknownSnapshot(t *testing.T) {
	f := newEngineFixture(t)

	_, err := f.shares.Resolve(context.Background(), "deadbeef-0000-0000-0000-000000000000")
	require.Error(t, err)

	var notFound *util.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}
