package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 애플리케이션 설정
type Config struct {
	App         AppConfig         `mapstructure:"app"`
	Server      ServerConfig      `mapstructure:"server"`
	Spoonacular SpoonacularConfig `mapstructure:"spoonacular"`
	FoodSafety  FoodSafetyConfig  `mapstructure:"foodsafety"`
	Translate   TranslateConfig   `mapstructure:"translate"`
	Cache       CacheConfig       `mapstructure:"cache"`
	RateLimit   RateLimitConfig   `mapstructure:"rate_limit"`
	DedupWindow time.Duration     `mapstructure:"dedup_window"`
	LogLevel    string            `mapstructure:"log_level"`
}

// AppConfig 애플리케이션 정보
type AppConfig struct {
	Env      string `mapstructure:"env"`
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
	Version  string `mapstructure:"version"`
	Name     string `mapstructure:"name"`
}

// ServerConfig 서버 설정
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// SpoonacularConfig 양식 레시피 API 설정
type SpoonacularConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	APIKey      string        `mapstructure:"api_key"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxResults  int           `mapstructure:"max_results"`
	DetailWorkers int         `mapstructure:"detail_workers"`
}

// FoodSafetyConfig 식품안전나라 API 설정
type FoodSafetyConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
	RowEnd  int           `mapstructure:"row_end"`
}

// TranslateConfig 번역 서비스 설정
type TranslateConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	SourceLang string        `mapstructure:"source_lang"`
	TargetLang string        `mapstructure:"target_lang"`
}

// CacheConfig 번역 캐시 설정
type CacheConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	MaxSize         int           `mapstructure:"max_size"`
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	RedisEnabled    bool          `mapstructure:"redis_enabled"`
	RedisAddr       string        `mapstructure:"redis_addr"`
}

// RateLimitConfig 속도 제한 설정
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// LoadConfig 설정 로드
func LoadConfig() (*Config, error) {
	// .env 파일 로드
	if err := godotenv.Load(); err != nil {
		return nil, err
	}

	// 기본값 설정
	setDefaults()

	// 환경 변수 프리픽스
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 환경 변수 바인딩
	viper.BindEnv("spoonacular.api_key", "SPOONACULAR_API_KEY")
	viper.BindEnv("foodsafety.api_key", "FOODSAFETY_API_KEY")
	viper.BindEnv("cache.enabled", "CACHE_ENABLED")
	viper.BindEnv("cache.redis_enabled", "CACHE_REDIS_ENABLED")
	viper.BindEnv("cache.redis_addr", "CACHE_REDIS_ADDR")
	viper.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	viper.BindEnv("rate_limit.requests", "RATE_LIMIT_REQUESTS")
	viper.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	viper.BindEnv("dedup_window", "DEDUP_WINDOW")
	viper.BindEnv("log_level", "LOG_LEVEL")

	// 설정 파일 이름과 경로
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// 로거 초기화 전이므로 fmt.Println 사용
	fmt.Println("Loading configuration",
		"spoonacular_api_key:", maskAPIKey(viper.GetString("spoonacular.api_key")),
		"foodsafety_api_key:", maskAPIKey(viper.GetString("foodsafety.api_key")))

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// maskAPIKey API 키 마스킹, 앞뒤 4자리만 표시
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// setDefaults 기본값 설정
func setDefaults() {
	// 애플리케이션
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.name", "recipe-finder")

	// 서버
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// Spoonacular
	viper.SetDefault("spoonacular.base_url", "https://api.spoonacular.com")
	viper.SetDefault("spoonacular.timeout", "15s")
	viper.SetDefault("spoonacular.max_results", 10)
	viper.SetDefault("spoonacular.detail_workers", 5)

	// 식품안전나라
	viper.SetDefault("foodsafety.base_url", "http://openapi.foodsafetykorea.go.kr/api")
	viper.SetDefault("foodsafety.timeout", "10s")
	viper.SetDefault("foodsafety.row_end", 100)

	// 번역
	viper.SetDefault("translate.base_url", "https://translate.googleapis.com")
	viper.SetDefault("translate.timeout", "10s")
	viper.SetDefault("translate.source_lang", "en")
	viper.SetDefault("translate.target_lang", "ko")

	// 캐시
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.max_size", 1000)
	viper.SetDefault("cache.ttl", "24h")
	viper.SetDefault("cache.cleanup_interval", "10m")
	viper.SetDefault("cache.redis_enabled", false)
	viper.SetDefault("cache.redis_addr", "localhost:6379")

	// 속도 제한
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests", 100)
	viper.SetDefault("rate_limit.window", "1m")

	// 중복 요청 억제
	viper.SetDefault("dedup_window", "1s")
}

// validateConfig 설정 검증
func validateConfig(config *Config) error {
	if config.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}

	if config.Spoonacular.MaxResults <= 0 {
		return fmt.Errorf("invalid spoonacular max results")
	}
	if config.Spoonacular.DetailWorkers <= 0 {
		return fmt.Errorf("invalid spoonacular detail workers")
	}
	if config.FoodSafety.RowEnd <= 0 {
		return fmt.Errorf("invalid foodsafety row end")
	}

	if config.Cache.Enabled {
		if config.Cache.MaxSize <= 0 {
			return fmt.Errorf("invalid cache max size")
		}
		if config.Cache.TTL <= 0 {
			return fmt.Errorf("invalid cache ttl")
		}
		if config.Cache.CleanupInterval <= 0 {
			return fmt.Errorf("invalid cache cleanup interval")
		}
	}

	return nil
}
