package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	n := NewNormalizer(nil)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"공백과 대소문자 정리", "  Tomato  ", "tomato"},
		{"동의어 접기", "계란", "달걀"},
		{"동의어 접기는 수량 표기보다 먼저", "쇠고기 200g", "소고기"},
		{"대표명 자신도 접힌다", "소고기 안심 300g", "소고기"},
		{"괄호 내용 제거", "양파(중간 크기)", "양파"},
		{"숫자+단위 제거", "당근 1/2개", "당근"},
		{"그램 표기 제거", "설탕 200g", "설탕"},
		{"단위 없는 숫자 제거", "감자 2", "감자"},
		{"빈 문자열", "", ""},
		{"공백만", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	n := NewNormalizer(nil)

	inputs := []string{
		"쇠고기 200g",
		"양파(중간 크기)",
		"당근 1/2개",
		"다진 마늘 1큰술",
		"Tomato",
		"대파",
		"",
	}

	for _, input := range inputs {
		once := n.Normalize(input)
		twice := n.Normalize(once)
		assert.Equal(t, once, twice, "input %q", input)
	}
}

func TestNormalizeCustomTable(t *testing.T) {
	n := NewNormalizer(SynonymTable{
		"두부": {"순두부", "연두부"},
	})

	assert.Equal(t, "두부", n.Normalize("순두부 1모"))
	// 기본 표의 동의어는 적용되지 않는다
	assert.Equal(t, "계란", n.Normalize("계란"))
}
