package foodsafety

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"recipe-finder/internal/infrastructure/config"
	"recipe-finder/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// successCode 식품안전나라 API 의 정상 결과 코드
const successCode = "INFO-000"

// fallbackLimit 필터가 빈손일 때 돌려줄 행 수
const fallbackLimit = 10

// Client 한식 레시피 소스 어댑터 (식품안전나라 COOKRCP01)
// 목록을 한 번에 받아 클라이언트 쪽에서 재료 문자열로 거른다.
type Client struct {
	config *config.FoodSafetyConfig
	client *resty.Client
}

// NewClient 어댑터 생성
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(cfg.FoodSafety.BaseURL).
		SetTimeout(cfg.FoodSafety.Timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		config: &cfg.FoodSafety,
		client: client,
	}
}

// envelope COOKRCP01 응답 구조
type envelope struct {
	CookRcp *struct {
		Result *struct {
			Code string `json:"CODE"`
			Msg  string `json:"MSG"`
		} `json:"RESULT"`
		Row []row `json:"row"`
	} `json:"COOKRCP01"`
}

// row 고정 컬럼 스키마의 레시피 행
type row struct {
	Seq        string `json:"RCP_SEQ"`
	Name       string `json:"RCP_NM"`
	Parts      string `json:"RCP_PARTS_DTLS"`
	HashTag    string `json:"HASH_TAG"`
	ImageMK    string `json:"ATT_FILE_NO_MK"`
	ImageMain  string `json:"ATT_FILE_NO_MAIN"`
	RecipeType string `json:"RCP_PAT2"`
	Method     string `json:"RCP_WAY2"`
	Calories   string `json:"INFO_ENG"`
	Weight     string `json:"INFO_WGT"`

	Manual01 string `json:"MANUAL01"`
	Manual02 string `json:"MANUAL02"`
	Manual03 string `json:"MANUAL03"`
	Manual04 string `json:"MANUAL04"`
	Manual05 string `json:"MANUAL05"`
	Manual06 string `json:"MANUAL06"`
	Manual07 string `json:"MANUAL07"`
	Manual08 string `json:"MANUAL08"`
	Manual09 string `json:"MANUAL09"`
	Manual10 string `json:"MANUAL10"`
	Manual11 string `json:"MANUAL11"`
	Manual12 string `json:"MANUAL12"`
	Manual13 string `json:"MANUAL13"`
	Manual14 string `json:"MANUAL14"`
	Manual15 string `json:"MANUAL15"`
	Manual16 string `json:"MANUAL16"`
	Manual17 string `json:"MANUAL17"`
	Manual18 string `json:"MANUAL18"`
	Manual19 string `json:"MANUAL19"`
	Manual20 string `json:"MANUAL20"`
}

// manuals MANUAL01..20 을 순서대로 반환
func (r *row) manuals() []string {
	return []string{
		r.Manual01, r.Manual02, r.Manual03, r.Manual04, r.Manual05,
		r.Manual06, r.Manual07, r.Manual08, r.Manual09, r.Manual10,
		r.Manual11, r.Manual12, r.Manual13, r.Manual14, r.Manual15,
		r.Manual16, r.Manual17, r.Manual18, r.Manual19, r.Manual20,
	}
}

// Search 사용자 재료로 한식 레시피 검색
func (c *Client) Search(ctx context.Context, userIngredients []string) ([]common.Recipe, error) {
	common.LogInfo("한식 레시피 검색", zap.Strings("재료", userIngredients))

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/%s/COOKRCP01/json/1/%d", c.config.APIKey, c.config.RowEnd))
	common.LogUpstreamCall("foodsafety", time.Since(start), err, "")

	if err != nil {
		return nil, classifyTransportError(err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, classifyStatusError(resp)
	}

	var env envelope
	if err := common.ParseJSONBytes(resp.Body(), &env); err != nil {
		return nil, common.ErrMalformedResponse.WithCause(err)
	}

	// 예상한 최상위 키가 없으면 형식 오류
	if env.CookRcp == nil {
		return nil, common.ErrMalformedResponse
	}

	// 정상 응답 내 비성공 코드는 제공자 메시지를 그대로 전달
	if env.CookRcp.Result != nil && env.CookRcp.Result.Code != successCode {
		msg := env.CookRcp.Result.Msg
		if msg == "" {
			msg = "알 수 없는 오류"
		}
		return nil, common.ErrUpstreamAppError.WithMessage(msg)
	}

	rows := env.CookRcp.Row
	if len(rows) == 0 {
		return nil, common.ErrEmptyResult
	}

	common.LogInfo("한식 레시피 수신", zap.Int("건수", len(rows)))

	filtered := filterRows(rows, userIngredients)

	// 필터가 걸러낸 행이 없으면 앞쪽 행들을 그대로 보여준다
	if len(filtered) == 0 {
		limit := fallbackLimit
		if limit > len(rows) {
			limit = len(rows)
		}
		filtered = rows[:limit]
	}

	recipes := make([]common.Recipe, 0, len(filtered))
	for i := range filtered {
		recipes = append(recipes, mapRow(&filtered[i]))
	}

	common.LogInfo("한식 레시피 변환 완료", zap.Int("건수", len(recipes)))

	return recipes, nil
}

// filterRows 재료 설명에 사용자 재료가 원문 그대로 포함된 행만 유지
// 정규화 없는 거친 필터다. 세밀한 매칭은 이후 스코어러가 담당한다.
func filterRows(rows []row, userIngredients []string) []row {
	kept := make([]row, 0, len(rows))
	for _, r := range rows {
		for _, ing := range userIngredients {
			if ing != "" && strings.Contains(r.Parts, ing) {
				kept = append(kept, r)
				break
			}
		}
	}
	return kept
}

// mapRow 고정 컬럼 행을 정규화된 Recipe 로 변환
// 한식은 이미 표시 언어이므로 translated 필드에 원본을 그대로 넣는다.
func mapRow(r *row) common.Recipe {
	title := r.Name
	if title == "" {
		title = "레시피"
	}

	// 번호 붙은 조리 단계 필드를 순서대로 수집
	steps := []string{}
	for _, manual := range r.manuals() {
		if strings.TrimSpace(manual) != "" {
			steps = append(steps, manual)
		}
	}

	// 재료 설명을 쉼표로 나누고 공백 항목은 버린다
	ingredients := []common.RecipeIngredient{}
	for _, part := range strings.Split(r.Parts, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		ingredients = append(ingredients, common.RecipeIngredient{Name: trimmed})
	}

	imageURL := r.ImageMK
	if imageURL == "" {
		imageURL = r.ImageMain
	}

	return common.Recipe{
		ID:                    r.Seq,
		Title:                 title,
		TranslatedTitle:       title,
		Description:           r.HashTag,
		TranslatedDescription: r.HashTag,
		ImageURL:              imageURL,
		CookingTimeMinutes:    0, // 한식 API 에는 조리 시간 정보가 없다
		ServingSize:           1,
		Ingredients:           ingredients,
		TranslatedIngredients: ingredients,
		Steps:                 steps,
		TranslatedSteps:       steps,
		RecipeType:            r.RecipeType,
		RecipeMethod:          r.Method,
		Calories:              r.Calories,
		Weight:                r.Weight,
	}
}

// classifyStatusError 상태 코드를 에러 분류로 변환
func classifyStatusError(resp *resty.Response) *common.CustomError {
	status := resp.StatusCode()
	switch status {
	case http.StatusServiceUnavailable:
		return common.ErrUpstreamUnavail
	case http.StatusUnauthorized, http.StatusForbidden:
		return common.ErrDomesticUnauthorized
	case http.StatusTooManyRequests:
		return common.ErrRateLimited
	}

	// HTML 에러 페이지 응답
	if strings.Contains(string(resp.Body()), "<html") {
		return common.ErrUpstreamUnavail.WithMessage(
			fmt.Sprintf("서버 오류가 발생했습니다. (상태 코드: %d)", status))
	}

	var errBody struct {
		Message string `json:"message"`
	}
	if err := common.ParseJSONBytes(resp.Body(), &errBody); err == nil && errBody.Message != "" {
		return common.ErrUpstreamAppError.WithMessage(errBody.Message)
	}
	return common.ErrUpstreamAppError.WithMessage(
		fmt.Sprintf("한식 API 오류가 발생했습니다. (상태 코드: %d)", status))
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
