package spoonacular

import (
	"context"
	"net/http"
	"net/http/httptest"
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

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Spoonacular: config.SpoonacularConfig{
			BaseURL:       baseURL,
			APIKey:        "test-key",
			Timeout:       2 * time.Second,
			MaxResults:    10,
			DetailWorkers: 5,
		},
	}
}

const detailBody = `{
	"id": 101,
	"title": "Beef Stew",
	"summary": "<b>A hearty</b> beef stew.",
	"image": "https://img.example.com/101.jpg",
	"readyInMinutes": 45,
	"servings": 4,
	"extendedIngredients": [
		{"name": "beef", "nameClean": "beef", "amount": 200, "unit": "g"},
		{"name": "", "nameClean": "onion", "amount": 1, "unit": ""}
	],
	"analyzedInstructions": [
		{"steps": [{"step": "Brown the beef."}, {"step": "Simmer for an hour."}]}
	]
}`

func TestSearchHappyPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/recipes/findByIngredients":
			assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
			assert.Equal(t, "beef,onion", r.URL.Query().Get("ingredients"))
			w.Write([]byte(`[{"id": 101, "title": "Beef Stew", "image": "https://img.example.com/101.jpg"}]`))
		case "/recipes/101/information":
			w.Write([]byte(detailBody))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nil)

	recipes, err := client.Search(context.Background(), []string{"소고기", "양파"})
	require.NoError(t, err)
	require.Len(t, recipes, 1)

	recipe := recipes[0]
	assert.Equal(t, "101", recipe.ID)
	assert.Equal(t, "Beef Stew", recipe.Title)
	assert.Equal(t, "A hearty beef stew.", recipe.Description)
	assert.Equal(t, 45, recipe.CookingTimeMinutes)
	assert.Equal(t, 4, recipe.ServingSize)
	require.Len(t, recipe.Ingredients, 2)
	assert.Equal(t, "beef", recipe.Ingredients[0].Name)
	assert.Equal(t, 200.0, recipe.Ingredients[0].Amount)
	// name 이 비면 nameClean 사용
	assert.Equal(t, "onion", recipe.Ingredients[1].Name)
	assert.Equal(t, []string{"Brown the beef.", "Simmer for an hour."}, recipe.Steps)
}

func TestSearchUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nil)

	_, err := client.Search(context.Background(), []string{"소고기"})
	require.Error(t, err)

	ce, ok := common.AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, common.ErrCodeUnauthorized, ce.Code)
	assert.Equal(t, "API 키가 유효하지 않습니다.", ce.Message)
}

func TestSearchQuotaExceeded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nil)

	_, err := client.Search(context.Background(), []string{"소고기"})

	ce, ok := common.AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, common.ErrCodeQuotaExceeded, ce.Code)
}

func TestSearchEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nil)

	_, err := client.Search(context.Background(), []string{"소고기"})

	ce, ok := common.AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, common.ErrCodeEmptyResult, ce.Code)
}

func TestSearchMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected": "shape"}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nil)

	_, err := client.Search(context.Background(), []string{"소고기"})

	ce, ok := common.AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, common.ErrCodeMalformedResponse, ce.Code)
}

func TestSearchDetailFailureFallsBackToSummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/recipes/findByIngredients":
			w.Write([]byte(`[
				{"id": 101, "title": "Beef Stew", "image": "https://img.example.com/101.jpg"},
				{"id": 102, "title": "Beef Soup", "image": ""}
			]`))
		case "/recipes/101/information":
			w.Write([]byte(detailBody))
		default:
			// 102 상세 조회는 실패
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nil)

	recipes, err := client.Search(context.Background(), []string{"소고기"})
	require.NoError(t, err)
	require.Len(t, recipes, 2)

	// 순서는 후보 순서 그대로
	assert.Equal(t, "101", recipes[0].ID)
	assert.Len(t, recipes[0].Ingredients, 2)

	// 실패한 후보는 요약 정보로 강등
	assert.Equal(t, "102", recipes[1].ID)
	assert.Equal(t, "Beef Soup", recipes[1].Title)
	assert.Equal(t, 1, recipes[1].ServingSize)
	assert.Empty(t, recipes[1].Ingredients)
	assert.Empty(t, recipes[1].Steps)
}

func TestSearchTruncatesToMaxResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/recipes/findByIngredients":
			w.Write([]byte(`[
				{"id": 1, "title": "A"}, {"id": 2, "title": "B"}, {"id": 3, "title": "C"}
			]`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Spoonacular.MaxResults = 2
	client := NewClient(cfg, nil)

	recipes, err := client.Search(context.Background(), []string{"소고기"})
	require.NoError(t, err)
	assert.Len(t, recipes, 2)
}

func TestCleanSummary(t *testing.T) {
	assert.Equal(t, "", cleanSummary(""))
	assert.Equal(t, "plain text", cleanSummary("plain text"))
	assert.Equal(t, "A hearty stew.", cleanSummary("<b>A hearty</b> stew."))

	long := make([]rune, 0, 300)
	for i := 0; i < 300; i++ {
		long = append(long, '가')
	}
	cleaned := cleanSummary(string(long))
	assert.Len(t, []rune(cleaned), 200)
}
