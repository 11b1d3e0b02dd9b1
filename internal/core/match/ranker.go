package match

import "recipe-finder/internal/pkg/common"

// PageSize 한 페이지에 담는 레시피 수
const PageSize = 10

// PagedResult 페이지 단위 결과
type PagedResult struct {
	Page         int                   `json:"page"`
	TotalPages   int                   `json:"total_pages"`
	TotalMatches int                   `json:"total_matches"`
	HasNext      bool                  `json:"has_next"`
	Recipes      []common.ScoredRecipe `json:"recipes"`
}

// TotalPages 전체 페이지 수 (ceil)
func TotalPages(count int) int {
	if count <= 0 {
		return 0
	}
	return (count + PageSize - 1) / PageSize
}

// Page n 번째 페이지 조각 (1부터 시작)
// 범위를 벗어나면 빈 조각을 반환한다.
func Page(scored []common.ScoredRecipe, page int) []common.ScoredRecipe {
	if page < 1 {
		return []common.ScoredRecipe{}
	}
	start := (page - 1) * PageSize
	if start >= len(scored) {
		return []common.ScoredRecipe{}
	}
	end := start + PageSize
	if end > len(scored) {
		end = len(scored)
	}
	return scored[start:end]
}

// HasNext n 번째 페이지 뒤에 다음 페이지가 있는지
func HasNext(scored []common.ScoredRecipe, page int) bool {
	return page >= 1 && page*PageSize < len(scored)
}

// Paginate 페이지 결과 구성
func Paginate(scored []common.ScoredRecipe, page int) PagedResult {
	if page < 1 {
		page = 1
	}
	return PagedResult{
		Page:         page,
		TotalPages:   TotalPages(len(scored)),
		TotalMatches: len(scored),
		HasNext:      HasNext(scored, page),
		Recipes:      Page(scored, page),
	}
}
