package openapi

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/tencent-connect/botgo/log"

	"github.com/clutchfact0r/telebot/failurelog"
)

const (
	// DefaultBaseURL 接口地址模板，token 直接拼接在后面
	DefaultBaseURL = "https://api.telegram.org/bot"
	// DefaultTimeout 默认请求超时时间
	DefaultTimeout = 5 * time.Second
)

// MaxIdleConns 默认指定空闲连接池大小
const MaxIdleConns = 3000

type openAPI struct {
	endpointRoot string
	timeout      time.Duration

	debug    bool // debug 模式，调试sdk时候使用
	recorder failurelog.Recorder

	restyClient *resty.Client // resty client 复用
}

type options struct {
	baseURL   string
	timeout   time.Duration
	debug     bool
	recorder  failurelog.Recorder
	transport http.RoundTripper
}

// Option 创建 client 时的可选配置，创建后配置不可再修改
type Option func(*options)

// WithBaseURL 替换接口地址模板，比如自建的 Bot API server
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithTimeout 设置请求接口超时时间，非正数会被忽略
func WithTimeout(duration time.Duration) Option {
	return func(o *options) {
		if duration > 0 {
			o.timeout = duration
		}
	}
}

// WithRecorder 设置失败记录器
func WithRecorder(recorder failurelog.Recorder) Option {
	return func(o *options) {
		o.recorder = recorder
	}
}

// WithHTTPTransport 替换底层 transport
func WithHTTPTransport(transport http.RoundTripper) Option {
	return func(o *options) {
		o.transport = transport
	}
}

// WithDebug 打开 resty 的 debug 输出
func WithDebug(debug bool) Option {
	return func(o *options) {
		o.debug = debug
	}
}

// New 生成一个实例，token 不做格式校验，不会发起任何网络请求
func New(token string, opts ...Option) OpenAPI {
	o := &options{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.recorder == nil {
		o.recorder = failurelog.NewLoggerRecorder(log.DefaultLogger)
	}
	if o.transport == nil {
		o.transport = createTransport(nil, MaxIdleConns)
	}

	api := &openAPI{
		endpointRoot: o.baseURL + token + "/",
		timeout:      o.timeout,
		debug:        o.debug,
		recorder:     o.recorder,
	}
	api.setupClient(o.transport) // 初始化可复用的 client
	return api
}

// Endpoint 接口的完整地址
func (o *openAPI) Endpoint(action string) string {
	return o.endpointRoot + action
}

// Transport 透传请求，按 action 目录构造请求
func (o *openAPI) Transport(ctx context.Context, action string, params Params) (*Result, error) {
	return o.do(ctx, action, params)
}

// 初始化 client
func (o *openAPI) setupClient(transport http.RoundTripper) {
	o.restyClient = resty.New().
		SetTransport(transport). // 自定义 transport
		SetLogger(log.DefaultLogger).
		SetDebug(o.debug).
		SetTimeout(o.timeout).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal).
		SetHeader("User-Agent", "telebot/v1").
		// 设置请求之后的钩子，打印日志
		OnAfterResponse(
			func(client *resty.Client, resp *resty.Response) error {
				if o.debug {
					log.Debugf("%v", respInfo(resp))
				}
				return nil
			},
		)
}

// request 每个请求，都需要创建一个 request
func (o *openAPI) request(ctx context.Context) *resty.Request {
	return o.restyClient.R().SetContext(ctx)
}

// respInfo 用于输出日志的时候格式化数据
func respInfo(resp *resty.Response) string {
	bodyJSON, _ := json.Marshal(resp.Request.Body)
	return fmt.Sprintf(
		"[OPENAPI]%v %v, status:%v, elapsed:%v req: %v, resp: %v",
		resp.Request.Method,
		resp.Request.URL,
		resp.Status(),
		resp.Time(),
		string(bodyJSON),
		string(resp.Body()),
	)
}

func createTransport(localAddr net.Addr, idleConns int) *http.Transport {
	dialer := &net.Dialer{
		Timeout:   60 * time.Second,
		KeepAlive: 60 * time.Second,
	}
	if localAddr != nil {
		dialer.LocalAddr = localAddr
	}
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          idleConns,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConnsPerHost:   idleConns,
		MaxConnsPerHost:       idleConns,
	}
}
