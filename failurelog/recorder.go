// Package failurelog 记录 openapi 请求失败的信息。
//
// 请求失败不会影响调用方的流程，失败的描述会交给 Recorder 追加保存，
// 运维侧再通过日志、文件或者 sqlite 表查看。所有实现都需要支持并发调用。
package failurelog

import (
	"context"

	"github.com/tencent-connect/botgo/log"
)

// Recorder 失败记录器
type Recorder interface {
	// RecordFailure 追加一条失败记录，action 为接口名
	RecordFailure(ctx context.Context, action string, err error)
}

// RecorderFunc 函数适配 Recorder
type RecorderFunc func(ctx context.Context, action string, err error)

// RecordFailure 实现 Recorder
func (f RecorderFunc) RecordFailure(ctx context.Context, action string, err error) {
	f(ctx, action, err)
}

// Nop 丢弃所有记录
var Nop Recorder = RecorderFunc(func(context.Context, string, error) {})

// Logger LoggerRecorder 需要的日志能力，botgo 的 log.Logger 满足该接口
type Logger interface {
	Errorf(format string, v ...interface{})
}

// LoggerRecorder 把失败打印到 logger
type LoggerRecorder struct {
	logger Logger
}

// NewLoggerRecorder logger 为空时使用 botgo 的默认 logger
func NewLoggerRecorder(logger Logger) *LoggerRecorder {
	if logger == nil {
		logger = log.DefaultLogger
	}
	return &LoggerRecorder{logger: logger}
}

// RecordFailure 实现 Recorder
func (r *LoggerRecorder) RecordFailure(_ context.Context, action string, err error) {
	r.logger.Errorf("[OPENAPI]%s failed, %v", action, err)
}

type multiRecorder []Recorder

// Multi 把一条记录分发给多个 Recorder，nil 会被忽略
func Multi(recorders ...Recorder) Recorder {
	var m multiRecorder
	for _, r := range recorders {
		if r != nil {
			m = append(m, r)
		}
	}
	if len(m) == 1 {
		return m[0]
	}
	return m
}

func (m multiRecorder) RecordFailure(ctx context.Context, action string, err error) {
	for _, r := range m {
		r.RecordFailure(ctx, action, err)
	}
}
