package search

import (
	"context"
	"strings"
	"sync"

	"recipe-finder/internal/pkg/common"

	"go.uber.org/zap"
)

// ErrSuperseded 더 새로운 검색이 시작되어 취소된 검색
var ErrSuperseded = common.NewError("SUPERSEDED", "새로운 검색이 시작되어 이전 검색이 취소되었습니다.", 409, context.Canceled)

// Adapter 레시피 소스 어댑터
type Adapter interface {
	Search(ctx context.Context, userIngredients []string) ([]common.Recipe, error)
}

// Enricher 레시피 번역 보강
type Enricher interface {
	EnrichRecipe(ctx context.Context, recipe *common.Recipe)
}

// Service 소스 어댑터를 묶는 검색 파사드
// 같은 인스턴스에서 새 검색이 시작되면 진행 중이던 검색을 취소한다.
type Service struct {
	international Adapter
	domestic      Adapter
	enricher      Enricher

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewService 검색 파사드 생성
func NewService(international, domestic Adapter, enricher Enricher) *Service {
	return &Service{
		international: international,
		domestic:      domestic,
		enricher:      enricher,
	}
}

// Search 소스에 맞는 어댑터로 레시피 검색
// 양식 결과는 번역 보강을 거치고 한식 결과는 그대로 반환한다.
func (s *Service) Search(ctx context.Context, req *common.SearchRequest) ([]common.Recipe, error) {
	ingredients := cleanIngredients(req.SelectedIngredients)
	if len(ingredients) == 0 {
		return nil, common.ErrInvalidRequest
	}

	if !req.Source.Valid() {
		return nil, common.ErrInvalidRequest.WithMessage("지원하지 않는 검색 소스입니다.")
	}

	searchID := common.GenerateUUID()
	common.LogInfo("레시피 검색 시작",
		zap.String("검색ID", searchID),
		zap.String("소스", string(req.Source)),
		zap.Int("재료수", len(ingredients)),
	)

	// 최신 검색이 이긴다. 이전 검색의 컨텍스트를 취소한다.
	ctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		if s.cancel != nil {
			// 아직 내가 최신 검색인 경우에만 슬롯을 비운다
			select {
			case <-ctx.Done():
			default:
				s.cancel = nil
			}
		}
		s.mu.Unlock()
		cancel()
	}()

	var recipes []common.Recipe
	var err error
	switch req.Source {
	case common.SourceDomestic:
		recipes, err = s.domestic.Search(ctx, ingredients)
	default:
		recipes, err = s.international.Search(ctx, ingredients)
	}

	if err != nil {
		if ctx.Err() == context.Canceled {
			return nil, ErrSuperseded
		}
		return nil, err
	}

	// 한식은 원문이 이미 한국어라 보강이 필요 없다
	if req.Source == common.SourceInternational && s.enricher != nil {
		for i := range recipes {
			if ctx.Err() != nil {
				return nil, ErrSuperseded
			}
			s.enricher.EnrichRecipe(ctx, &recipes[i])
		}
	}

	common.LogInfo("레시피 검색 완료",
		zap.String("검색ID", searchID),
		zap.Int("건수", len(recipes)),
	)

	return recipes, nil
}

// cleanIngredients 공백 항목을 제거하고 앞뒤 공백을 정리
func cleanIngredients(raw []string) []string {
	cleaned := make([]string, 0, len(raw))
	for _, item := range raw {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}
