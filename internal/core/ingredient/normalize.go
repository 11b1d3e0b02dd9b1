package ingredient

import (
	"regexp"
	"sort"
	"strings"
)

// SynonymTable 대표 재료명 → 표기 변형 목록
// 코드가 아니라 데이터로 관리한다. 새 동의어는 여기에만 추가하면 된다.
type SynonymTable map[string][]string

// DefaultSynonyms 기본 동의어 표
var DefaultSynonyms = SynonymTable{
	"소고기":  {"쇠고기", "우육", "소 고기"},
	"돼지고기": {"돈육", "돼지 고기"},
	"닭고기":  {"계육", "닭 고기"},
	"달걀":   {"계란"},
	"마늘":   {"다진마늘", "다진 마늘", "통마늘"},
	"고춧가루": {"고추가루"},
	"간장":   {"진간장", "국간장", "양조간장"},
	"식용유":  {"포도씨유", "카놀라유"},
}

var (
	// 괄호 내용 제거
	reParen = regexp.MustCompile(`\([^)]*\)`)
	// 단위+숫자 연쇄 제거 ("g200" 형태, ASCII 단위만)
	reUnitQty = regexp.MustCompile(`(?i)[a-z]{1,2} ?\d+(?:[/.]\d+)*`)
	// 숫자+단위 연쇄 제거 ("1/2개", "200g" 형태)
	reQtyUnit = regexp.MustCompile(`\d+(?:[/.]\d+)*[ ]?[\p{L}%]{0,3}`)
)

// Normalizer 재료명 정규화기
// 소문자/공백 정리, 동의어 접기, 괄호 및 수량 표기 제거를 순서대로 적용한다.
// 같은 입력에 두 번 적용해도 결과가 바뀌지 않는다.
type Normalizer struct {
	synonyms SynonymTable
	keys     []string // 결정적 순회를 위해 정렬해 둔 대표명 목록
}

// NewNormalizer 정규화기 생성. table 이 nil 이면 기본 표를 쓴다.
func NewNormalizer(table SynonymTable) *Normalizer {
	if table == nil {
		table = DefaultSynonyms
	}
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &Normalizer{synonyms: table, keys: keys}
}

// Normalize 원시 재료 문자열을 비교 가능한 토큰으로 변환
// 빈 문자열이나 공백만 있는 입력은 빈 문자열을 반환한다.
func (n *Normalizer) Normalize(raw string) string {
	value := strings.TrimSpace(strings.ToLower(raw))
	if value == "" {
		return ""
	}

	// 동의어 접기: 대표명 자신 또는 변형 표기가 포함되면 값 전체를 대표명으로 치환
	for _, key := range n.keys {
		if strings.Contains(value, key) {
			value = key
			break
		}
		folded := false
		for _, surface := range n.synonyms[key] {
			if strings.Contains(value, surface) {
				value = key
				folded = true
				break
			}
		}
		if folded {
			break
		}
	}

	value = reParen.ReplaceAllString(value, "")
	value = reUnitQty.ReplaceAllString(value, "")
	value = reQtyUnit.ReplaceAllString(value, "")

	return strings.TrimSpace(value)
}
