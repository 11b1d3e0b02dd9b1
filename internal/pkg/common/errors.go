package common

import (
	"errors"
	"net/http"
)

// ErrorResponse API 에러 응답 구조
type ErrorResponse struct {
	Code    string `json:"code"`              // 에러 코드
	Message string `json:"message"`           // 에러 메시지
	Details string `json:"details,omitempty"` // 상세 정보 (개발 모드에서만)
}

// CustomError 커스텀 에러 타입
type CustomError struct {
	Code    string // 에러 코드
	Message string // 사용자에게 보여줄 메시지
	Err     error  // 원본 에러
	Status  int    // HTTP 상태 코드
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap errors.Is / errors.As 지원
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewError 커스텀 에러 생성
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// WithCause 원본 에러를 붙인 복사본을 반환
// 사전 정의된 에러 값은 공유되므로 직접 수정하지 않는다.
func (e *CustomError) WithCause(err error) *CustomError {
	return &CustomError{
		Code:    e.Code,
		Message: e.Message,
		Status:  e.Status,
		Err:     err,
	}
}

// WithMessage 메시지를 바꾼 복사본을 반환 (업스트림 자체 메시지 전달용)
func (e *CustomError) WithMessage(message string) *CustomError {
	return &CustomError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Err:     e.Err,
	}
}

// AsCustomError 에러 체인에서 CustomError 추출
func AsCustomError(err error) (*CustomError, bool) {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// 업스트림 에러 분류 코드
const (
	ErrCodeEmptyResult        = "EMPTY_RESULT"         // 사용 가능한 결과 없음
	ErrCodeMalformedResponse  = "MALFORMED_RESPONSE"   // 응답 형식 불일치
	ErrCodeUnauthorized       = "UNAUTHORIZED"         // 401/403
	ErrCodeQuotaExceeded      = "QUOTA_EXCEEDED"       // 402
	ErrCodeRateLimited        = "RATE_LIMITED"         // 429
	ErrCodeUpstreamUnavail    = "UPSTREAM_UNAVAILABLE" // 503 또는 HTML 에러 페이지
	ErrCodeTimeout            = "TIMEOUT"              // 요청 시간 초과
	ErrCodeNetworkUnreachable = "NETWORK_UNREACHABLE"  // 연결 실패
	ErrCodeUpstreamAppError   = "UPSTREAM_APP_ERROR"   // 정상 응답 내 비성공 코드

	// 클라이언트 에러
	ErrCodeInvalidRequest = "INVALID_REQUEST" // 400
)

// 사전 정의된 에러 (메시지는 원래 앱이 사용자에게 보여주던 문구)
var (
	ErrEmptyResult       = NewError(ErrCodeEmptyResult, "검색 결과가 없습니다. 다른 재료를 시도해보세요.", http.StatusNotFound, nil)
	ErrMalformedResponse = NewError(ErrCodeMalformedResponse, "API 응답 형식이 올바르지 않습니다.", http.StatusBadGateway, nil)
	ErrUnauthorized      = NewError(ErrCodeUnauthorized, "API 키가 유효하지 않습니다.", http.StatusBadGateway, nil)
	ErrQuotaExceeded     = NewError(ErrCodeQuotaExceeded, "API 사용량 한도를 초과했습니다.", http.StatusBadGateway, nil)
	ErrRateLimited       = NewError(ErrCodeRateLimited, "너무 많은 요청이 발생했습니다. 잠시 후 다시 시도해주세요.", http.StatusBadGateway, nil)
	ErrUpstreamUnavail   = NewError(ErrCodeUpstreamUnavail, "서버가 일시적으로 사용할 수 없습니다. 잠시 후 다시 시도해주세요.", http.StatusBadGateway, nil)
	ErrTimeout           = NewError(ErrCodeTimeout, "요청 시간이 초과되었습니다. 네트워크 연결을 확인해주세요.", http.StatusGatewayTimeout, nil)
	ErrNetworkUnreach    = NewError(ErrCodeNetworkUnreachable, "네트워크 연결에 실패했습니다. 인터넷 연결을 확인해주세요.", http.StatusBadGateway, nil)
	ErrUpstreamAppError  = NewError(ErrCodeUpstreamAppError, "알 수 없는 오류", http.StatusBadGateway, nil)

	// 한식 API 전용 인증 에러 문구
	ErrDomesticUnauthorized = NewError(ErrCodeUnauthorized, "한식 API 인증키가 유효하지 않습니다.", http.StatusBadGateway, nil)

	ErrInvalidRequest = NewError(ErrCodeInvalidRequest, "재료를 하나 이상 추가해주세요.", http.StatusBadRequest, nil)
)
