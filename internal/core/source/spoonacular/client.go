package spoonacular

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"recipe-finder/internal/core/ingredient"
	"recipe-finder/internal/infrastructure/config"
	"recipe-finder/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client 양식 레시피 소스 어댑터 (Spoonacular)
// 재료 검색 후 후보별 상세 정보를 가져와 정규화된 Recipe 로 만든다.
type Client struct {
	config  *config.SpoonacularConfig
	client  *resty.Client
	lexicon *ingredient.Lexicon
}

// NewClient 어댑터 생성
func NewClient(cfg *config.Config, lexicon *ingredient.Lexicon) *Client {
	if lexicon == nil {
		lexicon = ingredient.NewLexicon()
	}

	client := resty.New().
		SetBaseURL(cfg.Spoonacular.BaseURL).
		SetTimeout(cfg.Spoonacular.Timeout)

	return &Client{
		config:  &cfg.Spoonacular,
		client:  client,
		lexicon: lexicon,
	}
}

// summaryItem findByIngredients 응답 항목
type summaryItem struct {
	ID    json.Number `json:"id"`
	Title string      `json:"title"`
	Image string      `json:"image"`
}

// detailResponse 레시피 상세 응답 (사용하는 필드만)
type detailResponse struct {
	ID                  json.Number `json:"id"`
	Title               string      `json:"title"`
	Summary             string      `json:"summary"`
	Image               string      `json:"image"`
	ReadyInMinutes      int         `json:"readyInMinutes"`
	Servings            int         `json:"servings"`
	ExtendedIngredients []struct {
		Name      string  `json:"name"`
		NameClean string  `json:"nameClean"`
		Amount    float64 `json:"amount"`
		Unit      string  `json:"unit"`
	} `json:"extendedIngredients"`
	AnalyzedInstructions []struct {
		Steps []struct {
			Step string `json:"step"`
		} `json:"steps"`
	} `json:"analyzedInstructions"`
}

// Search 사용자 재료로 레시피 검색
// 후보별 상세 조회 실패는 해당 후보만 요약 정보로 강등하고 계속 진행한다.
func (c *Client) Search(ctx context.Context, userIngredients []string) ([]common.Recipe, error) {
	// 발신 사전으로 한→영 변환 후 쉼표로 연결
	english := c.lexicon.TranslateList(userIngredients)
	for i := range english {
		english[i] = strings.TrimSpace(english[i])
	}
	query := strings.Join(english, ",")

	common.LogInfo("양식 레시피 검색",
		zap.Strings("재료", userIngredients),
		zap.Strings("변환된 재료", english),
	)

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ingredients": query,
			"apiKey":      c.config.APIKey,
			"number":      fmt.Sprintf("%d", c.config.MaxResults),
		}).
		Get("/recipes/findByIngredients")
	common.LogUpstreamCall("spoonacular", time.Since(start), err, "")

	if err != nil {
		return nil, classifyTransportError(err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, classifyStatusError(resp)
	}

	var items []summaryItem
	if err := common.ParseJSONBytes(resp.Body(), &items); err != nil {
		return nil, common.ErrMalformedResponse.WithCause(err)
	}

	if len(items) == 0 {
		return nil, common.ErrEmptyResult
	}

	if len(items) > c.config.MaxResults {
		items = items[:c.config.MaxResults]
	}

	common.LogInfo("레시피 후보 확보", zap.Int("건수", len(items)))

	return c.fetchDetails(ctx, items), nil
}

// fetchDetails 후보별 상세 조회
// 제한된 워커 풀로 병렬 실행하되 결과는 후보 순서대로 배치한다.
// 한 후보의 실패가 다른 후보를 막지 않는다.
func (c *Client) fetchDetails(ctx context.Context, items []summaryItem) []common.Recipe {
	recipes := make([]common.Recipe, len(items))

	workers := c.config.DetailWorkers
	if workers < 1 {
		workers = 1
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(idx int, item summaryItem) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			detail, err := c.GetRecipeDetail(ctx, item.ID.String())
			if err != nil || detail == nil {
				common.LogWarn("레시피 상세 조회 실패, 요약 정보로 대체",
					zap.String("recipe_id", item.ID.String()),
					zap.Error(err),
				)
				recipes[idx] = summaryFallback(item)
				return
			}
			recipes[idx] = *detail
		}(i, item)
	}

	wg.Wait()
	return recipes
}

// summaryFallback 상세 조회 실패 시 요약 필드만으로 구성한 최소 레시피
func summaryFallback(item summaryItem) common.Recipe {
	title := item.Title
	if title == "" {
		title = "레시피"
	}
	return common.Recipe{
		ID:          item.ID.String(),
		Title:       title,
		ImageURL:    item.Image,
		ServingSize: 1,
		Ingredients: []common.RecipeIngredient{},
		Steps:       []string{},
	}
}

// GetRecipeDetail 레시피 상세 정보 조회
func (c *Client) GetRecipeDetail(ctx context.Context, recipeID string) (*common.Recipe, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("apiKey", c.config.APIKey).
		Get(fmt.Sprintf("/recipes/%s/information", recipeID))
	if err != nil {
		return nil, classifyTransportError(err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, classifyStatusError(resp)
	}

	var detail detailResponse
	if err := common.ParseJSONBytes(resp.Body(), &detail); err != nil {
		return nil, common.ErrMalformedResponse.WithCause(err)
	}

	return mapDetail(&detail), nil
}

// mapDetail 상세 응답을 정규화된 Recipe 로 변환
func mapDetail(detail *detailResponse) *common.Recipe {
	title := detail.Title
	if title == "" {
		title = "레시피"
	}

	servings := detail.Servings
	if servings <= 0 {
		servings = 1
	}

	ingredients := make([]common.RecipeIngredient, 0, len(detail.ExtendedIngredients))
	for _, ing := range detail.ExtendedIngredients {
		name := ing.Name
		if name == "" {
			name = ing.NameClean
		}
		ingredients = append(ingredients, common.RecipeIngredient{
			Name:   name,
			Amount: ing.Amount,
			Unit:   ing.Unit,
		})
	}

	steps := []string{}
	if len(detail.AnalyzedInstructions) > 0 {
		for _, step := range detail.AnalyzedInstructions[0].Steps {
			steps = append(steps, step.Step)
		}
	}

	return &common.Recipe{
		ID:                 detail.ID.String(),
		Title:              title,
		Description:        cleanSummary(detail.Summary),
		ImageURL:           detail.Image,
		CookingTimeMinutes: detail.ReadyInMinutes,
		ServingSize:        servings,
		Ingredients:        ingredients,
		Steps:              steps,
	}
}

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// cleanSummary HTML 태그 제거 후 200자 제한
func cleanSummary(summary string) string {
	if summary == "" {
		return ""
	}
	plain := htmlTagPattern.ReplaceAllString(summary, "")
	runes := []rune(plain)
	if len(runes) > 200 {
		return string(runes[:200])
	}
	return plain
}

// classifyStatusError 상태 코드를 에러 분류로 변환
func classifyStatusError(resp *resty.Response) *common.CustomError {
	status := resp.StatusCode()
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return common.ErrUnauthorized
	case http.StatusPaymentRequired:
		return common.ErrQuotaExceeded
	case http.StatusTooManyRequests:
		return common.ErrRateLimited
	case http.StatusServiceUnavailable:
		return common.ErrUpstreamUnavail
	}

	// 업스트림 자체 에러 메시지가 있으면 전달
	var errBody struct {
		Message string `json:"message"`
	}
	if err := common.ParseJSONBytes(resp.Body(), &errBody); err == nil && errBody.Message != "" {
		return common.ErrUpstreamAppError.WithMessage(errBody.Message)
	}
	return common.ErrUpstreamAppError.WithMessage(
		fmt.Sprintf("API 오류가 발생했습니다. (상태 코드: %d)", status))
}

// classifyTransportError 전송 계층 에러 분류
func classifyTransportError(err error) *common.CustomError {
	if errors.Is(err, context.DeadlineExceeded) {
		return common.ErrTimeout.WithCause(err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return common.ErrTimeout.WithCause(err)
	}
	return common.ErrNetworkUnreach.WithCause(err)
}
