package common

// Source 레시피 검색 소스
type Source string

const (
	// SourceInternational 양식 (Spoonacular)
	SourceInternational Source = "international"
	// SourceDomestic 한식 (식품안전나라)
	SourceDomestic Source = "domestic"
)

// Valid 소스 값 검증
func (s Source) Valid() bool {
	return s == SourceInternational || s == SourceDomestic
}

// RecipeIngredient 레시피 재료
type RecipeIngredient struct {
	Name           string  `json:"name"`
	TranslatedName string  `json:"translated_name,omitempty"`
	Amount         float64 `json:"amount,omitempty"`
	Unit           string  `json:"unit,omitempty"`
}

// DisplayName 표시용 이름 (번역명 우선)
func (ri RecipeIngredient) DisplayName() string {
	if ri.TranslatedName != "" {
		return ri.TranslatedName
	}
	return ri.Name
}

// Recipe 정규화된 레시피 레코드
// 검색 응답마다 새로 구성되며 이후 변경하지 않는다.
// TranslatedIngredients 가 있으면 Ingredients 와 길이/순서가 항상 같다.
type Recipe struct {
	ID                    string             `json:"id"`
	Title                 string             `json:"title"`
	TranslatedTitle       string             `json:"translated_title,omitempty"`
	Description           string             `json:"description,omitempty"`
	TranslatedDescription string             `json:"translated_description,omitempty"`
	ImageURL              string             `json:"image_url,omitempty"`
	CookingTimeMinutes    int                `json:"cooking_time_minutes,omitempty"`
	ServingSize           int                `json:"serving_size"`
	Ingredients           []RecipeIngredient `json:"ingredients"`
	TranslatedIngredients []RecipeIngredient `json:"translated_ingredients,omitempty"`
	Steps                 []string           `json:"steps"`
	TranslatedSteps       []string           `json:"translated_steps,omitempty"`

	// 한식 API 부가 정보
	RecipeType   string `json:"recipe_type,omitempty"`
	RecipeMethod string `json:"recipe_method,omitempty"`
	Calories     string `json:"calories,omitempty"`
	Weight       string `json:"weight,omitempty"`
}

// ScoredRecipe 매칭률이 붙은 레시피
// MatchRate 는 검색마다 새로 계산하며 저장하지 않는다.
type ScoredRecipe struct {
	Recipe
	MatchRate float64 `json:"match_rate"`
}

// SearchRequest 재료 기반 레시피 검색 요청
type SearchRequest struct {
	SelectedIngredients []string `json:"ingredients"`
	Source              Source   `json:"source"`
}
