package match

import (
	"testing"

	"recipe-finder/internal/pkg/common"

	"github.com/stretchr/testify/assert"
)

func makeRecipe(id string, names ...string) common.Recipe {
	ingredients := make([]common.RecipeIngredient, len(names))
	for i, name := range names {
		ingredients[i] = common.RecipeIngredient{Name: name}
	}
	return common.Recipe{ID: id, Title: id, Ingredients: ingredients}
}

func TestIsFullyCoverable(t *testing.T) {
	s := NewScorer(nil)
	recipe := makeRecipe("r1", "양파", "당근", "감자")

	// 사용자 재료가 모두 레시피에 있으면 조리 가능
	assert.True(t, s.IsFullyCoverable(recipe, []string{"양파", "당근"}))
	assert.True(t, s.IsFullyCoverable(recipe, []string{"양파", "당근", "감자"}))

	// 레시피에 없는 재료가 하나라도 있으면 불가
	assert.False(t, s.IsFullyCoverable(recipe, []string{"양파", "두부"}))
}

func TestIsFullyCoverableEmptySets(t *testing.T) {
	s := NewScorer(nil)

	assert.False(t, s.IsFullyCoverable(makeRecipe("r1", "양파"), nil))
	assert.False(t, s.IsFullyCoverable(makeRecipe("r1", "양파"), []string{}))
	assert.False(t, s.IsFullyCoverable(makeRecipe("empty"), []string{"양파"}))
}

func TestIsFullyCoverableUsesNormalization(t *testing.T) {
	s := NewScorer(nil)
	recipe := makeRecipe("r1", "쇠고기 200g", "양파(중간)")

	assert.True(t, s.IsFullyCoverable(recipe, []string{"소고기", "양파"}))
}

func TestMatchRate(t *testing.T) {
	s := NewScorer(nil)

	// 재료 3개 중 2개 매칭 → 66.67
	recipe := makeRecipe("r1", "양파", "당근", "감자")
	assert.InDelta(t, 66.67, s.MatchRate(recipe, []string{"양파", "당근"}), 0.001)

	// 전부 매칭 → 100
	assert.InDelta(t, 100.0, s.MatchRate(recipe, []string{"양파", "당근", "감자"}), 0.001)

	// 빈 입력 → 0
	assert.Zero(t, s.MatchRate(recipe, nil))
	assert.Zero(t, s.MatchRate(makeRecipe("empty"), []string{"양파"}))
}

func TestScoreAndRank(t *testing.T) {
	s := NewScorer(nil)

	full := makeRecipe("full", "양파", "당근")        // 100
	partial := makeRecipe("partial", "양파", "당근", "감자") // 66.67
	uncoverable := makeRecipe("uncoverable", "두부")

	scored := s.ScoreAndRank(
		[]common.Recipe{uncoverable, partial, full},
		[]string{"양파", "당근"},
	)

	// 조리 불가 레시피는 제외, 매칭률 내림차순
	assert.Len(t, scored, 2)
	assert.Equal(t, "full", scored[0].ID)
	assert.InDelta(t, 100.0, scored[0].MatchRate, 0.001)
	assert.Equal(t, "partial", scored[1].ID)
	assert.InDelta(t, 66.67, scored[1].MatchRate, 0.001)
}

func TestScoreAndRankStableOnTies(t *testing.T) {
	s := NewScorer(nil)

	a := makeRecipe("a", "양파", "당근")
	b := makeRecipe("b", "양파", "당근")
	c := makeRecipe("c", "양파", "당근")

	scored := s.ScoreAndRank([]common.Recipe{a, b, c}, []string{"양파", "당근"})

	// 동률이면 입력 순서 유지
	assert.Equal(t, []string{"a", "b", "c"},
		[]string{scored[0].ID, scored[1].ID, scored[2].ID})
}

func TestScoreAndRankEmptyInput(t *testing.T) {
	s := NewScorer(nil)

	assert.Empty(t, s.ScoreAndRank(nil, []string{"양파"}))
	assert.Empty(t, s.ScoreAndRank([]common.Recipe{makeRecipe("r1", "양파")}, nil))
}
