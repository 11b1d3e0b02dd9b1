package match

import (
	"fmt"
	"testing"

	"recipe-finder/internal/pkg/common"

	"github.com/stretchr/testify/assert"
)

func makeScored(count int) []common.ScoredRecipe {
	scored := make([]common.ScoredRecipe, count)
	for i := range scored {
		scored[i] = common.ScoredRecipe{
			Recipe: common.Recipe{ID: fmt.Sprintf("r%d", i)},
		}
	}
	return scored
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0))
	assert.Equal(t, 1, TotalPages(1))
	assert.Equal(t, 1, TotalPages(10))
	assert.Equal(t, 2, TotalPages(11))
	assert.Equal(t, 3, TotalPages(25))
}

func TestPage(t *testing.T) {
	scored := makeScored(25)

	assert.Len(t, Page(scored, 1), 10)
	assert.Len(t, Page(scored, 2), 10)
	assert.Len(t, Page(scored, 3), 5)
	assert.Empty(t, Page(scored, 4))
	assert.Empty(t, Page(scored, 0))
	assert.Empty(t, Page(scored, -1))
}

func TestPageCoversEachItemOnce(t *testing.T) {
	scored := makeScored(25)

	seen := map[string]int{}
	for page := 1; page <= TotalPages(len(scored)); page++ {
		for _, item := range Page(scored, page) {
			seen[item.ID]++
		}
	}

	assert.Len(t, seen, 25)
	for id, count := range seen {
		assert.Equal(t, 1, count, "recipe %s", id)
	}
}

func TestHasNext(t *testing.T) {
	scored := makeScored(25)

	assert.True(t, HasNext(scored, 1))
	assert.True(t, HasNext(scored, 2))
	assert.False(t, HasNext(scored, 3))
	assert.False(t, HasNext(scored, 0))

	assert.False(t, HasNext(makeScored(10), 1))
}

func TestPaginate(t *testing.T) {
	scored := makeScored(25)

	result := Paginate(scored, 2)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, 25, result.TotalMatches)
	assert.True(t, result.HasNext)
	assert.Len(t, result.Recipes, 10)
	assert.Equal(t, "r10", result.Recipes[0].ID)

	// 페이지 지정이 없으면 첫 페이지
	first := Paginate(scored, 0)
	assert.Equal(t, 1, first.Page)
	assert.Equal(t, "r0", first.Recipes[0].ID)
}
