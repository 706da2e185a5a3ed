package usecase

import (
	"errors"
	"fmt"
)

// HTTPError はusecaseが返す失敗。handler側でstatusに写す。
// 400 入力不正・業務上の競合 / 401 認証 / 404 不存在 / 500 ストレージ障害
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}
