package usecase

import (
	"errors"
	"fmt"
)

var (
	// カタログにない商品
	ErrProductNotOffered = errors.New("product not offered")
	// 数量が 0 以下
	ErrInvalidQuantity = errors.New("invalid quantity")
	// 商品にないカスタマイズ
	ErrInvalidPreference = errors.New("invalid preference")
)

// ValidationError は最初に見つかった違反。Message はそのまま利用者に返す
type ValidationError struct {
	Kind    error
	Index   int
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
func (e *ValidationError) Unwrap() error { return e.Kind }

type HTTPError struct {
	Status  int
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d: %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *HTTPError) Unwrap() error { return e.Err }

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

// 原因付き
func WrapHTTPError(status int, message string, err error) error {
	return &HTTPError{
		Status:  status,
		Message: message,
		Err:     err,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}
