package translate

import (
	"context"
	"fmt"

	"recipe-finder/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

// RedisStore Redis 기반 번역 캐시 (2차 캐시)
// 프로세스 재시작 후에도 번역 결과를 재사용하기 위한 선택 사항이다.
type RedisStore struct {
	client *redis.Client
	config *config.CacheConfig
}

// NewRedisStore Redis 캐시 생성. 꺼져 있으면 클라이언트 없이 반환한다.
func NewRedisStore(cfg *config.CacheConfig) (*RedisStore, error) {
	if !cfg.RedisEnabled {
		return &RedisStore{config: cfg}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	// 연결 확인
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{
		client: client,
		config: cfg,
	}, nil
}

// Get 캐시된 번역문 조회
func (s *RedisStore) Get(ctx context.Context, text, targetLang string) (string, bool) {
	if s == nil || s.client == nil {
		return "", false
	}

	value, err := s.client.Get(ctx, s.key(text, targetLang)).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

// Set 번역문 저장. 실패해도 검색 흐름에는 영향을 주지 않는다.
func (s *RedisStore) Set(ctx context.Context, text, targetLang, translated string) {
	if s == nil || s.client == nil {
		return
	}

	_ = s.client.Set(ctx, s.key(text, targetLang), translated, s.config.TTL).Err()
}

// Close 연결 종료
func (s *RedisStore) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

func (s *RedisStore) key(text, targetLang string) string {
	return fmt.Sprintf("translate:%s:%s", targetLang, CacheKey(text, targetLang))
}
