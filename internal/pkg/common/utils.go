package common

import (
	"github.com/google/uuid"
)

// GenerateUUID UUID 생성 (검색 상관 ID 용)
func GenerateUUID() string {
	return uuid.New().String()
}
