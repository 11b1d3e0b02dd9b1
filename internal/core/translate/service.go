package translate

import (
	"context"
	"net/http"
	"strings"
	"time"

	"recipe-finder/internal/infrastructure/config"
	"recipe-finder/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Service 표시 언어 번역 서비스 (Google Translate gtx 엔드포인트)
// 모든 호출은 best-effort 다. 실패하면 원문을 그대로 돌려주며
// 검색 실패로 번지는 일은 없다.
type Service struct {
	config *config.TranslateConfig
	client *resty.Client
	memory *CacheManager
	redis  *RedisStore
}

// NewService 번역 서비스 생성
func NewService(cfg *config.Config, memory *CacheManager, store *RedisStore) *Service {
	client := resty.New().
		SetBaseURL(cfg.Translate.BaseURL).
		SetTimeout(cfg.Translate.Timeout)

	return &Service{
		config: &cfg.Translate,
		client: client,
		memory: memory,
		redis:  store,
	}
}

// Translate 원문을 표시 언어로 번역
// 캐시(메모리 → Redis) 를 먼저 보고, 없으면 네트워크 호출한다.
func (s *Service) Translate(ctx context.Context, text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return text
	}

	target := s.config.TargetLang

	if cached, ok := s.memory.Get(text, target); ok {
		common.LogCacheHit("translate", text)
		return cached
	}
	if cached, ok := s.redis.Get(ctx, text, target); ok {
		s.memory.Set(text, target, cached)
		return cached
	}

	start := time.Now()
	translated, err := s.fetch(ctx, text)
	if err != nil {
		// 번역 실패는 조용히 원문으로 강등
		common.LogWarn("번역 실패, 원문 사용",
			zap.Error(err),
			zap.Duration("소요시간", time.Since(start)),
		)
		return text
	}

	s.memory.Set(text, target, translated)
	s.redis.Set(ctx, text, target, translated)

	return translated
}

// TranslateList 목록 일괄 번역
// 결과는 입력과 길이/순서가 항상 같다. 빈 항목은 그대로 둔다.
func (s *Service) TranslateList(ctx context.Context, texts []string) []string {
	translated := make([]string, len(texts))
	for i, text := range texts {
		if strings.TrimSpace(text) == "" {
			translated[i] = text
			continue
		}
		translated[i] = s.Translate(ctx, text)
	}
	return translated
}

// EnrichRecipe 레시피를 표시 언어로 보강
// 제목/설명/재료명/조리 단계를 번역해 translated 필드를 채운다.
// 재료와 단계는 원본과 같은 길이, 같은 순서를 유지한다.
func (s *Service) EnrichRecipe(ctx context.Context, recipe *common.Recipe) {
	recipe.TranslatedTitle = s.Translate(ctx, recipe.Title)
	if recipe.Description != "" {
		recipe.TranslatedDescription = s.Translate(ctx, recipe.Description)
	}

	if len(recipe.Ingredients) > 0 {
		names := make([]string, len(recipe.Ingredients))
		for i, ing := range recipe.Ingredients {
			names[i] = ing.Name
		}
		translatedNames := s.TranslateList(ctx, names)

		recipe.TranslatedIngredients = make([]common.RecipeIngredient, len(recipe.Ingredients))
		for i, ing := range recipe.Ingredients {
			translated := ing
			if translatedNames[i] != "" {
				translated.TranslatedName = translatedNames[i]
			} else {
				translated.TranslatedName = ing.Name
			}
			recipe.TranslatedIngredients[i] = translated
		}
	}

	if len(recipe.Steps) > 0 {
		recipe.TranslatedSteps = s.TranslateList(ctx, recipe.Steps)
	}
}

// fetch gtx 엔드포인트 호출
// 응답은 중첩 배열이며 첫 세그먼트의 첫 요소가 번역문이다.
func (s *Service) fetch(ctx context.Context, text string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     s.config.SourceLang,
			"tl":     s.config.TargetLang,
			"dt":     "t",
			"q":      text,
		}).
		Get("/translate_a/single")
	if err != nil {
		return "", err
	}

	if resp.StatusCode() != http.StatusOK {
		return "", &common.CustomError{
			Code:    common.ErrCodeUpstreamAppError,
			Message: "translation upstream returned " + resp.Status(),
			Status:  http.StatusBadGateway,
		}
	}

	var payload interface{}
	if err := common.ParseJSONBytes(resp.Body(), &payload); err != nil {
		return "", err
	}

	outer, ok := payload.([]interface{})
	if !ok || len(outer) == 0 {
		return "", common.ErrMalformedResponse
	}
	segments, ok := outer[0].([]interface{})
	if !ok || len(segments) == 0 {
		return "", common.ErrMalformedResponse
	}

	// 세그먼트를 이어 붙인다. 각 세그먼트의 첫 요소가 번역 조각이다.
	var sb strings.Builder
	for _, seg := range segments {
		parts, ok := seg.([]interface{})
		if !ok || len(parts) == 0 {
			continue
		}
		if piece, ok := parts[0].(string); ok {
			sb.WriteString(piece)
		}
	}

	result := sb.String()
	if result == "" {
		return "", common.ErrMalformedResponse
	}
	return result, nil
}
