package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexiconTranslate(t *testing.T) {
	l := NewLexicon()

	assert.Equal(t, "beef", l.Translate("소고기"))
	assert.Equal(t, "beef", l.Translate("쇠고기"))
	assert.Equal(t, "onion", l.Translate(" 양파 "))
	// 공백 제거 표기도 조회
	assert.Equal(t, "chicken breast", l.Translate("닭 가슴살"))
	// 사전에 없으면 그대로
	assert.Equal(t, "미상재료", l.Translate("미상재료"))
}

func TestLexiconTranslateList(t *testing.T) {
	l := NewLexicon()

	out := l.TranslateList([]string{"소고기", "양파", "미상재료"})
	assert.Equal(t, []string{"beef", "onion", "미상재료"}, out)
}
