package match

import (
	"math"
	"sort"

	"recipe-finder/internal/core/ingredient"
	"recipe-finder/internal/pkg/common"
)

// Scorer 레시피별 재료 충족도 계산
// 레시피 레코드는 읽기만 하고 수정하지 않는다.
type Scorer struct {
	matcher *ingredient.Matcher
}

// NewScorer 스코어러 생성
func NewScorer(matcher *ingredient.Matcher) *Scorer {
	if matcher == nil {
		matcher = ingredient.NewMatcher(nil)
	}
	return &Scorer{matcher: matcher}
}

// IsFullyCoverable 선택한 재료 전부가 레시피 재료와 매칭되는지 판정
// 재료를 하나도 선택하지 않았으면 항상 false 다. 선언된 재료가 없는
// 레시피도 false 다.
func (s *Scorer) IsFullyCoverable(recipe common.Recipe, userIngredients []string) bool {
	if len(userIngredients) == 0 || len(recipe.Ingredients) == 0 {
		return false
	}

	for _, user := range userIngredients {
		found := false
		for _, ing := range recipe.Ingredients {
			if s.matcher.Matches(ing.DisplayName(), user) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// MatchRate 레시피 재료 중 충족된 비율 (0~100, 소수 둘째 자리 반올림)
// 충족도는 coverability 와 독립적으로 계산한다.
func (s *Scorer) MatchRate(recipe common.Recipe, userIngredients []string) float64 {
	if len(userIngredients) == 0 || len(recipe.Ingredients) == 0 {
		return 0
	}

	matched := 0
	for _, ing := range recipe.Ingredients {
		for _, user := range userIngredients {
			if s.matcher.Matches(ing.DisplayName(), user) {
				matched++
				break
			}
		}
	}

	rate := float64(matched) / float64(len(recipe.Ingredients)) * 100
	return math.Round(rate*100) / 100
}

// ScoreAndRank 만들 수 있는 레시피만 걸러 매칭률 내림차순으로 정렬
// 동률은 원래 순서를 유지한다 (stable sort).
func (s *Scorer) ScoreAndRank(recipes []common.Recipe, userIngredients []string) []common.ScoredRecipe {
	scored := make([]common.ScoredRecipe, 0, len(recipes))
	for _, r := range recipes {
		if !s.IsFullyCoverable(r, userIngredients) {
			continue
		}
		scored = append(scored, common.ScoredRecipe{
			Recipe:    r,
			MatchRate: s.MatchRate(r, userIngredients),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchRate > scored[j].MatchRate
	})

	return scored
}
