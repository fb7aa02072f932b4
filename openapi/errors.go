package openapi

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// APIError 非 2xx 的返回，ErrorCode 与 Description 取自返回的错误信息
type APIError struct {
	StatusCode  int
	ErrorCode   int64
	Description string
	Body        string
}

func newAPIError(statusCode int, body []byte) *APIError {
	e := &APIError{StatusCode: statusCode, Body: string(body)}
	if gjson.ValidBytes(body) {
		e.ErrorCode = gjson.GetBytes(body, "error_code").Int()
		e.Description = gjson.GetBytes(body, "description").String()
	}
	return e
}

func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("openapi: status %d, error_code %d, %s", e.StatusCode, e.ErrorCode, e.Description)
	}
	return fmt.Sprintf("openapi: unexpected status %d: %s", e.StatusCode, e.Body)
}

// IsAPIError 判断 err 是否为指定状态码的 APIError，statusCode 为 0 时只判断类型
func IsAPIError(err error, statusCode int) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return statusCode == 0 || apiErr.StatusCode == statusCode
}
