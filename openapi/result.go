package openapi

import (
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// Result 一次调用的结果。成功时 Value 为解码后的 JSON，原样保留接口返回的
// {"ok":..., "result":...} 结构；失败时 Err 非空，Value 为空 map
type Result struct {
	Value any
	Raw   []byte
	Err   error
}

func failedResult(err error) *Result {
	return &Result{Value: map[string]any{}, Err: err}
}

func decodeResult(body []byte) (*Result, error) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, errors.Wrap(err, "decode response")
	}
	return &Result{Value: v, Raw: body}, nil
}

// OK 请求是否成功
func (r *Result) OK() bool {
	return r != nil && r.Err == nil
}

// Map 返回对象形式的结果，失败或者返回的不是对象时为空 map
func (r *Result) Map() map[string]any {
	if !r.OK() {
		return map[string]any{}
	}
	if m, ok := r.Value.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// Get 按 gjson path 读取原始返回，比如 "result.message_id"
func (r *Result) Get(path string) gjson.Result {
	if r == nil {
		return gjson.Result{}
	}
	return gjson.GetBytes(r.Raw, path)
}

// Decode 把返回中的 result 字段解析到 v
func (r *Result) Decode(v any) error {
	if r == nil {
		return errors.New("openapi: nil result")
	}
	if r.Err != nil {
		return r.Err
	}
	field := r.Get("result")
	if !field.Exists() {
		return errors.New("openapi: response has no result field")
	}
	return json.Unmarshal([]byte(field.Raw), v)
}
