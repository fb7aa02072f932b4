package openapi

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// 构造请求时的错误，属于调用方的编程错误
var (
	ErrUnknownAction   = errors.New("openapi: unknown action")
	ErrMissingParam    = errors.New("openapi: missing required param")
	ErrUnexpectedParam = errors.New("openapi: unexpected param")
)

const replyMarkupKey = "reply_markup"

// Params 请求参数，值为 nil 的 key 视为不存在
type Params map[string]any

// setOptional 可选参数为零值时不写入
func (p Params) setOptional(key string, v any) {
	if isZero(v) {
		return
	}
	p[key] = v
}

// Request 一次调用的请求描述，只在调用期间存在
type Request struct {
	Method   string
	Path     string
	Location Location
	Params   Params
}

// buildRequest 根据 action 目录生成请求描述，参数会被复制，不会修改调用方的 map
func buildRequest(name string, params Params) (*Request, error) {
	action, ok := catalog[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAction, "%q", name)
	}

	out := make(Params, len(params))
	for key, v := range params {
		if v == nil {
			continue
		}
		if !action.allows(key) {
			return nil, errors.Wrapf(ErrUnexpectedParam, "%s for %s", key, name)
		}
		if key == replyMarkupKey {
			markup, present, err := normalizeReplyMarkup(v)
			if err != nil {
				return nil, err
			}
			if !present {
				continue
			}
			v = markup
		}
		out[key] = v
	}
	for _, key := range action.Required {
		if _, ok := out[key]; !ok {
			return nil, errors.Wrapf(ErrMissingParam, "%s for %s", key, name)
		}
	}

	return &Request{
		Method:   action.Method,
		Path:     action.Name,
		Location: action.Location,
		Params:   out,
	}, nil
}

// Query query string 形式的参数
func (r *Request) Query() map[string]string {
	query := make(map[string]string, len(r.Params))
	for key, v := range r.Params {
		query[key] = formatValue(v)
	}
	return query
}

// normalizeReplyMarkup reply_markup 在接口中是 JSON 字符串。
// string 和 []byte 视为已经编码好的内容原样透传，其他类型编码为 JSON，重复调用结果不变
func normalizeReplyMarkup(v any) (string, bool, error) {
	switch m := v.(type) {
	case nil:
		return "", false, nil
	case string:
		return m, m != "", nil
	case []byte:
		return string(m), len(m) > 0, nil
	}
	// json.RawMessage 等具名 []byte 同样视为已编码文本
	if b, ok := byteSlice(v); ok {
		return string(b), len(b) > 0, nil
	}
	if isZero(v) {
		return "", false, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", false, errors.Wrap(err, "openapi: encode reply_markup")
	}
	return string(b), true, nil
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func byteSlice(v any) ([]byte, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || rv.Type().Elem().Kind() != reflect.Uint8 {
		return nil, false
	}
	return rv.Bytes(), true
}

func isZero(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).IsZero()
}
