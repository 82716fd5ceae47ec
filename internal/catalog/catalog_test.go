package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogShape(t *testing.T) {
	c := Default()

	paths := c.Paths()
	require.Len(t, paths, 6)

	seen := make(map[string]bool)
	for _, p := range paths {
		assert.False(t, seen[p.ID], "duplicate path id %s", p.ID)
		seen[p.ID] = true

		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Description)
		assert.NotEmpty(t, p.Icon)
		require.Len(t, p.Milestones, 5, "path %s", p.ID)

		milestoneIDs := make(map[string]bool)
		for i, m := range p.Milestones {
			assert.False(t, milestoneIDs[m.ID], "duplicate milestone id %s in %s", m.ID, p.ID)
			milestoneIDs[m.ID] = true

			assert.Equal(t, i+1, m.Order, "milestone order in %s", p.ID)
			assert.Greater(t, m.EstimatedDays, 0, "milestone %s days", m.ID)
			assert.NotEmpty(t, m.Resources, "milestone %s resources", m.ID)
			for _, r := range m.Resources {
				assert.Contains(t, []ResourceType{ResourceVideo, ResourceArticle, ResourceCourse}, r.Type)
			}
		}
	}
}

func TestPathLookup(t *testing.T) {
	c := Default()

	p, ok := c.Path("software-dev")
	require.True(t, ok)
	assert.Equal(t, "software-dev", p.ID)

	_, ok = c.Path("quantum-basket-weaving")
	assert.False(t, ok)
}

func TestMilestoneLookup(t *testing.T) {
	c := Default()

	p, ok := c.Path("cybersecurity")
	require.True(t, ok)

	first := p.Milestones[0]
	m, ok := c.Milestone("cybersecurity", first.ID)
	require.True(t, ok)
	assert.Equal(t, first.Title, m.Title)

	// 里程碑ID只在所属路径下可见
	_, ok = c.Milestone("software-dev", first.ID)
	assert.False(t, ok)

	_, ok = c.Milestone("no-such-path", first.ID)
	assert.False(t, ok)
}

func TestOrderIndex(t *testing.T) {
	c := Default()

	for i, p := range c.Paths() {
		assert.Equal(t, i, c.OrderIndex(p.ID))
	}
	assert.Equal(t, len(c.Paths()), c.OrderIndex("unknown"))
}

func TestTotalDays(t *testing.T) {
	c := Default()

	for _, p := range c.Paths() {
		sum := 0
		for _, m := range p.Milestones {
			sum += m.EstimatedDays
		}
		path, ok := c.Path(p.ID)
		require.True(t, ok)
		assert.Equal(t, sum, path.TotalDays())
		assert.Greater(t, path.TotalDays(), 0)
	}
}
