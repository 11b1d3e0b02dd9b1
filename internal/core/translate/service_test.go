package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"recipe-finder/internal/infrastructure/config"
	"recipe-finder/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	common.Logger = zap.NewNop()
}

func testConfig(baseURL string, cacheEnabled bool) *config.Config {
	return &config.Config{
		Translate: config.TranslateConfig{
			BaseURL:    baseURL,
			Timeout:    2 * time.Second,
			SourceLang: "en",
			TargetLang: "ko",
		},
		Cache: config.CacheConfig{
			Enabled:         cacheEnabled,
			MaxSize:         10,
			TTL:             time.Minute,
			CleanupInterval: time.Minute,
		},
	}
}

func newTestService(t *testing.T, cfg *config.Config) *Service {
	t.Helper()
	memory := NewCacheManager(cfg)
	if memory != nil {
		t.Cleanup(func() { memory.Close() })
	}
	store, err := NewRedisStore(&cfg.Cache)
	require.NoError(t, err)
	return NewService(cfg, memory, store)
}

func TestTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translate_a/single", r.URL.Path)
		assert.Equal(t, "gtx", r.URL.Query().Get("client"))
		assert.Equal(t, "ko", r.URL.Query().Get("tl"))
		w.Write([]byte(`[[["비프 스튜","Beef Stew",null,null,10]],null,"en"]`))
	}))
	defer srv.Close()

	svc := newTestService(t, testConfig(srv.URL, false))

	assert.Equal(t, "비프 스튜", svc.Translate(context.Background(), "Beef Stew"))
}

func TestTranslateConcatenatesSegments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[["고기를 볶는다. ","Brown the beef. ",null,null],["육수를 붓는다.","Add the broth.",null,null]],null,"en"]`))
	}))
	defer srv.Close()

	svc := newTestService(t, testConfig(srv.URL, false))

	assert.Equal(t, "고기를 볶는다. 육수를 붓는다.",
		svc.Translate(context.Background(), "Brown the beef. Add the broth."))
}

func TestTranslateFailureReturnsSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := newTestService(t, testConfig(srv.URL, false))

	// 번역 실패는 원문으로 강등, 에러를 밖으로 내보내지 않는다
	assert.Equal(t, "Beef Stew", svc.Translate(context.Background(), "Beef Stew"))
}

func TestTranslateMalformedReturnsSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected": true}`))
	}))
	defer srv.Close()

	svc := newTestService(t, testConfig(srv.URL, false))

	assert.Equal(t, "Beef Stew", svc.Translate(context.Background(), "Beef Stew"))
}

func TestTranslateBlankText(t *testing.T) {
	svc := newTestService(t, testConfig("http://127.0.0.1:0", false))

	// 빈 입력은 네트워크를 타지 않는다
	assert.Equal(t, "", svc.Translate(context.Background(), ""))
	assert.Equal(t, "   ", svc.Translate(context.Background(), "   "))
}

func TestTranslateUsesMemoryCache(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`[[["비프 스튜","Beef Stew",null,null]],null,"en"]`))
	}))
	defer srv.Close()

	svc := newTestService(t, testConfig(srv.URL, true))

	assert.Equal(t, "비프 스튜", svc.Translate(context.Background(), "Beef Stew"))
	assert.Equal(t, "비프 스튜", svc.Translate(context.Background(), "Beef Stew"))

	// 두 번째 호출은 캐시에서
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestTranslateList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		w.Write([]byte(`[[["번역:` + q + `","` + q + `",null,null]],null,"en"]`))
	}))
	defer srv.Close()

	svc := newTestService(t, testConfig(srv.URL, false))

	input := []string{"beef", "", "onion"}
	result := svc.TranslateList(context.Background(), input)

	// 길이와 순서 유지, 빈 항목은 그대로
	require.Len(t, result, 3)
	assert.Equal(t, "번역:beef", result[0])
	assert.Equal(t, "", result[1])
	assert.Equal(t, "번역:onion", result[2])
}

func TestEnrichRecipe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		w.Write([]byte(`[[["번역:` + q + `","` + q + `",null,null]],null,"en"]`))
	}))
	defer srv.Close()

	svc := newTestService(t, testConfig(srv.URL, false))

	recipe := common.Recipe{
		ID:          "101",
		Title:       "Beef Stew",
		Description: "A hearty stew.",
		Ingredients: []common.RecipeIngredient{
			{Name: "beef", Amount: 200, Unit: "g"},
			{Name: "onion", Amount: 1},
		},
		Steps: []string{"Brown the beef.", "Simmer."},
	}

	svc.EnrichRecipe(context.Background(), &recipe)

	assert.Equal(t, "번역:Beef Stew", recipe.TranslatedTitle)
	assert.Equal(t, "번역:A hearty stew.", recipe.TranslatedDescription)

	// 재료는 원본과 같은 길이/순서, 수량 정보 유지
	require.Len(t, recipe.TranslatedIngredients, 2)
	assert.Equal(t, "번역:beef", recipe.TranslatedIngredients[0].TranslatedName)
	assert.Equal(t, 200.0, recipe.TranslatedIngredients[0].Amount)
	assert.Equal(t, "g", recipe.TranslatedIngredients[0].Unit)
	assert.Equal(t, "번역:onion", recipe.TranslatedIngredients[1].TranslatedName)

	require.Len(t, recipe.TranslatedSteps, 2)
	assert.Equal(t, "번역:Brown the beef.", recipe.TranslatedSteps[0])
}

func TestCacheManagerDisabled(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:0", false)

	// 캐시 비활성화 시 nil 매니저, nil 수신자도 안전해야 한다
	manager := NewCacheManager(cfg)
	assert.Nil(t, manager)

	_, ok := manager.Get("text", "ko")
	assert.False(t, ok)
	manager.Set("text", "ko", "번역")
	assert.NoError(t, manager.Close())
}
