package common

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger 전역 로거 인스턴스
	Logger  *zap.Logger
	LogMode string // 선언만, 초기화는 InitLogger 에서

	// 로그 레벨별 색상
	levelColors = map[zapcore.Level]string{
		zapcore.DebugLevel: "\033[36m", // 청록
		zapcore.InfoLevel:  "\033[32m", // 초록
		zapcore.WarnLevel:  "\033[33m", // 노랑
		zapcore.ErrorLevel: "\033[31m", // 빨강
		zapcore.FatalLevel: "\033[35m", // 보라
	}
	resetColor = "\033[0m"
)

// 커스텀 인코더 설정
func getEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "",
		CallerKey:      "",
		MessageKey:     "msg",
		StacktraceKey:  "",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    customLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   nil,
	}
}

// 밀리초 단위 타임스탬프
func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05.000"))
}

// 색상 포함 레벨 인코더
func customLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	color := levelColors[l]
	level := l.String()
	switch l {
	case zapcore.DebugLevel:
		level = "DBG"
	case zapcore.InfoLevel:
		level = "INF"
	case zapcore.WarnLevel:
		level = "WRN"
	case zapcore.ErrorLevel:
		level = "ERR"
	case zapcore.FatalLevel:
		level = "FAT"
	}
	enc.AppendString(color + level + resetColor)
}

// InitLogger 로깅 시스템 초기화
func InitLogger(logLevel string) error {
	var level zapcore.Level
	switch strings.ToLower(logLevel) {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	case "fatal":
		level = zapcore.FatalLevel
	default:
		level = zapcore.InfoLevel
	}

	// LOG_MODE 는 .env 로드 이후에 읽어야 한다
	LogMode = os.Getenv("LOG_MODE")

	if err := os.MkdirAll("logs", 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile("logs/app.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	fileWriter := zapcore.AddSync(logFile)
	consoleWriter := zapcore.AddSync(os.Stdout)

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(getEncoderConfig()),
		fileWriter,
		level,
	)
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(getEncoderConfig()),
		consoleWriter,
		level,
	)

	core := zapcore.NewTee(fileCore, consoleCore)

	Logger = zap.New(core,
		zap.AddCallerSkip(1),
		zap.Fields(
			zap.String("service", "recipe-finder"),
		),
	)

	zap.ReplaceGlobals(Logger)

	return nil
}

// filterSensitive API 키가 들어간 필드 제거
func filterSensitive(fields []zap.Field) []zap.Field {
	filtered := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		if field.Key == "api_key" || strings.Contains(field.Key, "apiKey") || strings.Contains(field.Key, "auth") {
			continue
		}
		filtered = append(filtered, field)
	}
	return filtered
}

// LogInfo 정보 로그
func LogInfo(msg string, fields ...zap.Field) {
	if LogMode == "concise" {
		// 요청 완료 및 서버 시작/종료 메시지만 출력
		if msg != "요청 완료" && msg != "서버 시작" && msg != "Server exited" && msg != "Shutting down server..." {
			return
		}
	}
	Logger.Info(msg, filterSensitive(fields)...)
}

// LogError 에러 로그
func LogError(msg string, fields ...zap.Field) {
	Logger.Error(msg, filterSensitive(fields)...)
}

// LogWarn 경고 로그
func LogWarn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, filterSensitive(fields)...)
}

// LogDebug 디버그 로그
func LogDebug(msg string, fields ...zap.Field) {
	Logger.Debug(msg, filterSensitive(fields)...)
}

// LogFatal 치명적 에러 로그
func LogFatal(msg string, fields ...zap.Field) {
	Logger.Fatal(msg, fields...)
}

// Sync 로그 버퍼 플러시
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// LogCacheHit 캐시 히트 기록
func LogCacheHit(cacheType, key string) {
	LogInfo("캐시 히트", zap.String("유형", cacheType))
}

// LogCacheMiss 캐시 미스 기록
func LogCacheMiss(cacheType, key string) {
	LogInfo("캐시 미스", zap.String("유형", cacheType))
}

// LogUpstreamCall 업스트림 API 호출 기록
func LogUpstreamCall(source string, duration time.Duration, err error, requestID string) {
	if err != nil {
		LogError("업스트림 요청 실패",
			zap.String("소스", source),
			zap.Error(err),
			zap.Duration("소요시간", duration),
		)
		return
	}
	LogInfo("업스트림 요청 성공",
		zap.String("소스", source),
		zap.Duration("소요시간", duration),
	)
}
