package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanLayoutSinglePage(t *testing.T) {
	// 187mm of content, 9mm header, 26mm summary leaves 152mm: 21 rows of 7mm.
	plan, err := PlanLayout(187, 9, 7, 26, 10)
	require.NoError(t, err)

	assert.Equal(t, 21, plan.RowsPerPage)
	assert.Equal(t, 1, plan.PageCount)

	start, end := plan.Rows(1)
	assert.Equal(t, 0, start)
	assert.Equal(t, 10, end)
	assert.True(t, plan.IsLastPage(1))
}

func TestPlanLayoutExactCapacityStaysOnOnePage(t *testing.T) {
	plan, err := PlanLayout(100, 10, 10, 20, 7)
	require.NoError(t, err)

	require.Equal(t, 7, plan.RowsPerPage)
	assert.Equal(t, 1, plan.PageCount)

	_, end := plan.Rows(1)
	assert.Equal(t, 7, end)
}

func TestPlanLayoutSpillsAcrossPages(t *testing.T) {
	// Capacity 20 rows per page, 45 items: pages of 20, 20 and 5.
	plan, err := PlanLayout(230, 10, 10, 20, 45)
	require.NoError(t, err)

	require.Equal(t, 20, plan.RowsPerPage)
	assert.Equal(t, 3, plan.PageCount)

	start, end := plan.Rows(1)
	assert.Equal(t, 0, start)
	assert.Equal(t, 20, end)

	start, end = plan.Rows(2)
	assert.Equal(t, 20, start)
	assert.Equal(t, 40, end)

	start, end = plan.Rows(3)
	assert.Equal(t, 40, start)
	assert.Equal(t, 45, end)

	assert.False(t, plan.IsLastPage(2))
	assert.True(t, plan.IsLastPage(3))
}

func TestPlanLayoutOverflow(t *testing.T) {
	// Header and summary consume the whole page: no room for a single row.
	_, err := PlanLayout(40, 10, 10, 30, 1)
	assert.ErrorIs(t, err, ErrLayoutOverflow)

	_, err = PlanLayout(100, 10, 0, 20, 1)
	assert.ErrorIs(t, err, ErrLayoutOverflow)
}
