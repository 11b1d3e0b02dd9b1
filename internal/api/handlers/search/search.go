package search

import (
	"net/http"

	"recipe-finder/internal/core/match"
	coresearch "recipe-finder/internal/core/search"
	"recipe-finder/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchRequest 레시피 검색 요청 본문
type SearchRequest struct {
	Ingredients []string `json:"ingredients" binding:"required"`
	Source      string   `json:"source"`
}

// SearchResponse 원본 검색 결과 응답
type SearchResponse struct {
	SearchID string          `json:"search_id"`
	Count    int             `json:"count"`
	Recipes  []common.Recipe `json:"recipes"`
}

// MatchRequest 검색 + 매칭률 + 페이지네이션 요청 본문
type MatchRequest struct {
	Ingredients []string `json:"ingredients" binding:"required"`
	Source      string   `json:"source"`
	Page        int      `json:"page"`
}

// MatchResponse 매칭률 순으로 정렬된 페이지 응답
type MatchResponse struct {
	SearchID     string                `json:"search_id"`
	Page         int                   `json:"page"`
	TotalPages   int                   `json:"total_pages"`
	TotalMatches int                   `json:"total_matches"`
	HasNext      bool                  `json:"has_next"`
	Recipes      []common.ScoredRecipe `json:"recipes"`
}

// Handler 레시피 검색 핸들러 묶음
type Handler struct {
	service *coresearch.Service
	scorer  *match.Scorer
}

// NewHandler 핸들러 생성
func NewHandler(service *coresearch.Service, scorer *match.Scorer) *Handler {
	return &Handler{
		service: service,
		scorer:  scorer,
	}
}

// HandleSearch 재료 기반 레시피 검색 (원본 결과 그대로)
func (h *Handler) HandleSearch(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("Invalid request format",
			zap.Error(err),
			zap.String("request_id", requestID))
		writeError(c, common.ErrInvalidRequest.WithCause(err))
		return
	}

	recipes, err := h.search(c, req.Ingredients, req.Source)
	if err != nil {
		common.LogError("레시피 검색 실패",
			zap.Error(err),
			zap.String("request_id", requestID))
		writeError(c, err)
		return
	}

	common.LogInfo("레시피 검색 응답",
		zap.String("request_id", requestID),
		zap.Int("count", len(recipes)))

	c.JSON(http.StatusOK, SearchResponse{
		SearchID: requestID,
		Count:    len(recipes),
		Recipes:  recipes,
	})
}

// HandleMatch 검색 → 매칭률 → 정렬 → 페이지네이션 전체 파이프라인
func (h *Handler) HandleMatch(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("Invalid request format",
			zap.Error(err),
			zap.String("request_id", requestID))
		writeError(c, common.ErrInvalidRequest.WithCause(err))
		return
	}

	recipes, err := h.search(c, req.Ingredients, req.Source)
	if err != nil {
		common.LogError("레시피 검색 실패",
			zap.Error(err),
			zap.String("request_id", requestID))
		writeError(c, err)
		return
	}

	scored := h.scorer.ScoreAndRank(recipes, req.Ingredients)
	if len(scored) == 0 {
		writeError(c, common.ErrEmptyResult)
		return
	}

	paged := match.Paginate(scored, req.Page)

	common.LogInfo("레시피 매칭 응답",
		zap.String("request_id", requestID),
		zap.Int("total_matches", paged.TotalMatches),
		zap.Int("page", paged.Page))

	c.JSON(http.StatusOK, MatchResponse{
		SearchID:     requestID,
		Page:         paged.Page,
		TotalPages:   paged.TotalPages,
		TotalMatches: paged.TotalMatches,
		HasNext:      paged.HasNext,
		Recipes:      paged.Recipes,
	})
}

// search 소스 기본값 적용 후 파사드 호출
func (h *Handler) search(c *gin.Context, ingredients []string, source string) ([]common.Recipe, error) {
	src := common.Source(source)
	if source == "" {
		src = common.SourceInternational
	}

	return h.service.Search(c.Request.Context(), &common.SearchRequest{
		SelectedIngredients: ingredients,
		Source:              src,
	})
}

// ensureRequestID 요청 ID 가 없으면 생성해 응답 헤더에 싣는다
func ensureRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}

// writeError 에러 분류에 맞는 상태 코드와 본문을 기록
func writeError(c *gin.Context, err error) {
	if ce, ok := common.AsCustomError(err); ok {
		c.JSON(ce.Status, common.ErrorResponse{
			Code:    ce.Code,
			Message: ce.Message,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, common.ErrorResponse{
		Code:    "INTERNAL_ERROR",
		Message: "서버 내부 오류가 발생했습니다.",
	})
}
