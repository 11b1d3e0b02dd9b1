package ingredient

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Matcher 사용자 재료와 레시피 재료가 같은 것을 가리키는지 판정
type Matcher struct {
	norm *Normalizer
}

// NewMatcher 매처 생성
func NewMatcher(norm *Normalizer) *Matcher {
	if norm == nil {
		norm = NewNormalizer(nil)
	}
	return &Matcher{norm: norm}
}

// Normalizer 내부 정규화기 반환
func (m *Matcher) Normalizer() *Normalizer {
	return m.norm
}

// Matches 판정 규칙, 먼저 성공하는 규칙이 이긴다:
//  1. 정규화 후 완전 일치
//  2. 레시피 재료명이 사용자 재료를 경계가 맞는 부분 문자열로 포함
//  3. 역방향: 사용자 재료가 레시피 재료명을 경계가 맞는 부분 문자열로 포함
//
// 단순 부분 문자열 포함은 오탐이다. "대파" 안의 "파" 는 매칭되면 안 된다.
func (m *Matcher) Matches(recipeIngredientName, userIngredient string) bool {
	recipe := m.norm.Normalize(recipeIngredientName)
	user := m.norm.Normalize(userIngredient)
	if recipe == "" || user == "" {
		return false
	}

	if recipe == user {
		return true
	}

	if containsBounded(recipe, user) {
		return true
	}
	if containsBounded(user, recipe) {
		return true
	}

	return false
}

// containsBounded needle 이 haystack 에 포함되되, 양쪽 경계가
// 문자열 끝이거나 글자가 아닌 문자(공백, 쉼표, 구두점)여야 한다.
func containsBounded(haystack, needle string) bool {
	for start := 0; ; {
		idx := strings.Index(haystack[start:], needle)
		if idx < 0 {
			return false
		}
		idx += start

		if boundaryBefore(haystack, idx) && boundaryAfter(haystack, idx+len(needle)) {
			return true
		}

		start = idx + len(needle)
		if start >= len(haystack) {
			return false
		}
	}
}

func boundaryBefore(s string, idx int) bool {
	if idx == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:idx])
	return !unicode.IsLetter(r)
}

func boundaryAfter(s string, idx int) bool {
	if idx >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[idx:])
	return !unicode.IsLetter(r)
}
