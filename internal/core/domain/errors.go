package domain

import (
	"fmt"

	"github.com/go-faster/errors"
)

// ErrMalformedResponse - маркер для любых ответов маркетплейса неожиданной формы.
var ErrMalformedResponse = errors.New("malformed upstream response")

// UpstreamError - маркетплейс вернул ошибку в ожидаемом формате {"error": "..."}.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream responded with status %d: %s", e.StatusCode, e.Message)
}

// MalformedResponseError - маркетплейс вернул тело, которое не удалось разобрать,
// либо в успешном ответе не хватает обязательных данных.
type MalformedResponseError struct {
	StatusCode int
	Reason     string
	Err        error
}

func NewMalformedResponseError(statusCode int, reason string, err error) *MalformedResponseError {
	return &MalformedResponseError{StatusCode: statusCode, Reason: reason, Err: err}
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed upstream response (status %d): %s: %v", e.StatusCode, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed upstream response (status %d): %s", e.StatusCode, e.Reason)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// Is позволяет проверять ошибку через errors.Is(err, ErrMalformedResponse).
func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformedResponse
}
