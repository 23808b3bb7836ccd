package tree

import (
	"testing"

	"github.com/Natali-Skv/forum_tree/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanTableComplete(t *testing.T) {
	for _, mode := range []Mode{Flat, Tree, ParentTree} {
		for _, desc := range []bool{false, true} {
			for _, hasSince := range []bool{false, true} {
				p, err := lookupPlan(mode, desc, hasSince)
				require.NoError(t, err, "%s desc=%v since=%v", mode, desc, hasSince)
				assert.Equal(t, hasSince, p.boundary != noBoundary)

				switch mode {
				case Flat:
					assert.Equal(t, scanPosts, p.scan)
					assert.Equal(t, store.OrderByID, p.order)
				case Tree:
					assert.Equal(t, scanPosts, p.scan)
					assert.Equal(t, store.OrderByPath, p.order)
				case ParentTree:
					assert.Equal(t, scanGroups, p.scan)
				}
			}
		}
	}
	assert.Len(t, plans, 12)

	_, err := lookupPlan("bfs", false, false)
	assert.Error(t, err)
}
