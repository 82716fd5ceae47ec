package service

import (
	"context"
	"errors"
	"testing"

	"supercharge_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueRequiresFullCompletion(t *testing.T) {
	f := newEngineFixture(t)
	user := f.createUser(t, "jady")

	f.completeMilestones(t, user.ID, "software-dev", 4)

	_, err := f.certificates.Issue(user.ID, "software-dev")
	require.Error(t, err)

	var incomplete *util.IncompleteError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, 4, incomplete.Completed)
	assert.Equal(t, 5, incomplete.Total)
}

func TestIssueIdempotent(t *testing.T) {
	f := newEngineFixture(t)
	user := f.createUser(t, "kim")

	f.completePath(t, user.ID, "software-dev")

	first, err := f.certificates.Issue(user.ID, "software-dev")
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	// 重复签发返回同一张证书
	second, err := f.certificates.Issue(user.ID, "software-dev")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestIssueSnapshotsUserAndPath(t *testing.T) {
	f := newEngineFixture(t)
	user := f.createUser(t, "lena")

	f.completePath(t, user.ID, "cybersecurity")

	cert, err := f.certificates.Issue(user.ID, "cybersecurity")
	require.NoError(t, err)
	assert.Equal(t, "lena", cert.UserName)
	assert.Equal(t, 5, cert.TotalMilestones)
	assert.Contains(t, cert.Achievements, AchievementPathMaster)
	assert.False(t, cert.CompletionDate.IsZero())

	// 证书是签发时刻的值拷贝，之后改名不影响已有证书
	user.Name = "lena-renamed"
	require.NoError(t, f.users.Update(user))

	got, err := f.certificates.Lookup(context.Background(), cert.ID)
	require.NoError(t, err)
	assert.Equal(t, "lena", got.UserName)
}

func TestIssueUnknownPath(t *testing.T) {
	f := newEngineFixture(t)
	user := f.createUser(t, "mia")

	_, err := f.certificates.Issue(user.ID, "no-such-path")
	require.Error(t, err)

	var notFound *util.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestLookupUnknownCertificate(t *testing.T) {
	f := newEngineFixture(t)

	_, err := f.certificates.Lookup(context.Background(), "deadbeef-0000-0000-0000-000000000000")
	require.Error(t, err)

	var notFound *util.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}
