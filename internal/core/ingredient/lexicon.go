package ingredient

import "strings"

// koreanToEnglish 발신 검색어용 한→영 재료 사전
// Spoonacular 검색 쿼리에만 쓰는 동기 사전 조회이며, 결과 번역과는 별개다.
var koreanToEnglish = map[string]string{
	"소고기":  "beef",
	"쇠고기":  "beef",
	"돼지고기": "pork",
	"닭고기":  "chicken",
	"닭가슴살": "chicken breast",
	"달걀":   "egg",
	"계란":   "egg",
	"양파":   "onion",
	"대파":   "green onion",
	"파":    "green onion",
	"마늘":   "garlic",
	"생강":   "ginger",
	"당근":   "carrot",
	"감자":   "potato",
	"고구마":  "sweet potato",
	"토마토":  "tomato",
	"오이":   "cucumber",
	"가지":   "eggplant",
	"호박":   "zucchini",
	"애호박":  "zucchini",
	"버섯":   "mushroom",
	"시금치":  "spinach",
	"배추":   "napa cabbage",
	"양배추":  "cabbage",
	"브로콜리": "broccoli",
	"콩나물":  "bean sprouts",
	"두부":   "tofu",
	"새우":   "shrimp",
	"오징어":  "squid",
	"고등어":  "mackerel",
	"연어":   "salmon",
	"참치":   "tuna",
	"멸치":   "anchovy",
	"김치":   "kimchi",
	"쌀":    "rice",
	"밥":    "rice",
	"밀가루":  "flour",
	"면":    "noodles",
	"치즈":   "cheese",
	"우유":   "milk",
	"버터":   "butter",
	"간장":   "soy sauce",
	"고추장":  "gochujang",
	"된장":   "soybean paste",
	"고춧가루": "red pepper flakes",
	"설탕":   "sugar",
	"소금":   "salt",
	"후추":   "black pepper",
	"참기름":  "sesame oil",
	"식용유":  "cooking oil",
	"올리브유": "olive oil",
	"베이컨":  "bacon",
	"햄":    "ham",
	"소시지":  "sausage",
	"고추":   "chili pepper",
	"청양고추": "chili pepper",
	"피망":   "bell pepper",
	"파프리카": "bell pepper",
	"옥수수":  "corn",
	"콩":    "beans",
	"레몬":   "lemon",
	"사과":   "apple",
}

// Lexicon 발신 재료명 사전
type Lexicon struct {
	entries map[string]string
}

// NewLexicon 기본 사전으로 생성
func NewLexicon() *Lexicon {
	return &Lexicon{entries: koreanToEnglish}
}

// Translate 한글 재료명을 영어 검색어로 변환
// 사전에 없으면 입력을 그대로 돌려준다.
func (l *Lexicon) Translate(name string) string {
	key := strings.TrimSpace(name)
	if en, ok := l.entries[key]; ok {
		return en
	}
	// 공백 제거 표기도 한번 더 조회
	if en, ok := l.entries[strings.ReplaceAll(key, " ", "")]; ok {
		return en
	}
	return key
}

// TranslateList 목록 전체 변환, 순서 유지
func (l *Lexicon) TranslateList(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = l.Translate(name)
	}
	return out
}
