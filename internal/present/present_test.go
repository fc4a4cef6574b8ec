package present

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortKeyLessOrdersGroupThenRankThenOrder(t *testing.T) {
	assert.True(t, SortKey{Group: 0, Rank: 0, Order: 0}.Less(SortKey{Group: 1, Rank: 0, Order: 0}))
	assert.True(t, SortKey{Group: 0, Rank: RankTotal}.Less(SortKey{Group: 0, Rank: RankLeaf}))
	assert.True(t, SortKey{Group: 0, Rank: RankLeaf, Order: 1}.Less(SortKey{Group: 0, Rank: RankLeaf, Order: 2}))
	assert.False(t, SortKey{Group: 0}.Less(SortKey{Group: 0}))
}

func TestRegistryCoversEveryDomain(t *testing.T) {
	reg := Registry()
	assert.Len(t, reg, 8)
	seen := map[string]bool{}
	for _, p := range reg {
		seen[string(p.Domain())] = true
	}
	for _, d := range []string{"cpu", "memory", "swap", "disk", "network", "gpu", "power", "accel"} {
		assert.True(t, seen[d], "missing presenter for domain %s", d)
	}
}
