package translate

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"recipe-finder/internal/infrastructure/config"
	"recipe-finder/internal/pkg/common"

	"go.uber.org/zap"
)

// CacheManager 번역 결과 인메모리 캐시
// 같은 문장을 검색마다 다시 번역하지 않도록 1차 캐시로 쓴다.
type CacheManager struct {
	config *config.Config
	mu     sync.RWMutex
	store  map[string]cacheEntry
	stats  cacheStats
	done   chan struct{}
}

// cacheEntry 캐시 항목
type cacheEntry struct {
	value       string
	expiresAt   time.Time
	createdAt   time.Time
	lastAccess  time.Time
	accessCount int
}

// cacheStats 캐시 통계
type cacheStats struct {
	hits      int64
	misses    int64
	evictions int64
}

// NewCacheManager 캐시 매니저 생성. 캐시가 꺼져 있으면 nil 을 반환한다.
func NewCacheManager(cfg *config.Config) *CacheManager {
	if !cfg.Cache.Enabled {
		common.LogInfo("번역 캐시 비활성화")
		return nil
	}

	m := &CacheManager{
		config: cfg,
		store:  make(map[string]cacheEntry),
		done:   make(chan struct{}),
	}

	go m.startCleanup()

	common.LogInfo("번역 캐시 초기화 완료",
		zap.Int("최대 용량", cfg.Cache.MaxSize),
		zap.Duration("TTL", cfg.Cache.TTL),
		zap.Duration("정리 주기", cfg.Cache.CleanupInterval),
	)

	return m
}

// Get 캐시된 번역문 조회
func (m *CacheManager) Get(text, targetLang string) (string, bool) {
	if m == nil {
		return "", false
	}

	key := CacheKey(text, targetLang)

	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.store[key]
	if !exists {
		m.stats.misses++
		return "", false
	}

	if time.Now().After(entry.expiresAt) {
		delete(m.store, key)
		m.stats.evictions++
		m.stats.misses++
		return "", false
	}

	entry.lastAccess = time.Now()
	entry.accessCount++
	m.store[key] = entry
	m.stats.hits++

	return entry.value, true
}

// Set 번역문 저장
func (m *CacheManager) Set(text, targetLang, translated string) {
	if m == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.store) >= m.config.Cache.MaxSize {
		evicted := m.cleanupLocked()
		if evicted == 0 && len(m.store) >= m.config.Cache.MaxSize {
			m.evictLRULocked()
		}
	}

	now := time.Now()
	m.store[CacheKey(text, targetLang)] = cacheEntry{
		value:      translated,
		expiresAt:  now.Add(m.config.Cache.TTL),
		createdAt:  now,
		lastAccess: now,
	}
}

// CacheKey 원문+대상 언어의 SHA-256 해시 키
func CacheKey(text, targetLang string) string {
	hash := sha256.Sum256([]byte(targetLang + ":" + text))
	return hex.EncodeToString(hash[:])
}

// startCleanup 만료 항목 정리 고루틴
func (m *CacheManager) startCleanup() {
	ticker := time.NewTicker(m.config.Cache.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.mu.Lock()
			m.cleanupLocked()
			m.mu.Unlock()
		case <-m.done:
			return
		}
	}
}

// cleanupLocked 만료된 항목 제거. 호출자가 잠금을 잡고 있어야 한다.
func (m *CacheManager) cleanupLocked() int {
	now := time.Now()
	count := 0

	for key, entry := range m.store {
		if now.After(entry.expiresAt) {
			delete(m.store, key)
			count++
			m.stats.evictions++
		}
	}

	return count
}

// evictLRULocked 가장 덜 쓰인 항목 하나 제거
func (m *CacheManager) evictLRULocked() {
	var oldestKey string
	var oldestAccess time.Time
	var lowestAccessCount int

	for key, entry := range m.store {
		if oldestKey == "" ||
			entry.accessCount < lowestAccessCount ||
			(entry.accessCount == lowestAccessCount && entry.lastAccess.Before(oldestAccess)) {
			oldestKey = key
			oldestAccess = entry.lastAccess
			lowestAccessCount = entry.accessCount
		}
	}

	if oldestKey != "" {
		delete(m.store, oldestKey)
		m.stats.evictions++
	}
}

// GetStats 캐시 통계
func (m *CacheManager) GetStats() map[string]interface{} {
	if m == nil {
		return map[string]interface{}{"enabled": false}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	total := m.stats.hits + m.stats.misses
	hitRatio := 0.0
	if total > 0 {
		hitRatio = float64(m.stats.hits) / float64(total)
	}

	return map[string]interface{}{
		"enabled":   true,
		"size":      len(m.store),
		"max_size":  m.config.Cache.MaxSize,
		"hits":      m.stats.hits,
		"misses":    m.stats.misses,
		"evictions": m.stats.evictions,
		"hit_ratio": hitRatio,
	}
}

// Close 캐시 매니저 종료
func (m *CacheManager) Close() error {
	if m == nil {
		return nil
	}

	close(m.done)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.store = make(map[string]cacheEntry)
	common.LogInfo("번역 캐시 종료",
		zap.Int64("히트", m.stats.hits),
		zap.Int64("미스", m.stats.misses),
		zap.Int64("제거", m.stats.evictions),
	)
	return nil
}

// 통계 문자열 포맷 도우미
func (m *CacheManager) String() string {
	if m == nil {
		return "cache disabled"
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fmt.Sprintf("size=%d hits=%d misses=%d", len(m.store), m.stats.hits, m.stats.misses)
}
