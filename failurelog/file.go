package failurelog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/tencent-connect/botgo/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileConfig 文件记录器配置，大小单位为 MB，0 表示使用 lumberjack 的默认值
type FileConfig struct {
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// FileRecorder 追加写入文本文件，每条失败一行，按大小滚动
type FileRecorder struct {
	out *lumberjack.Logger
}

// NewFileRecorder 创建文件记录器，会自动创建目录
func NewFileRecorder(cfg FileConfig) (*FileRecorder, error) {
	name := strings.TrimSpace(cfg.Filename)
	if name == "" {
		return nil, errors.New("failurelog: filename is required")
	}
	if cfg.MaxSizeMB < 0 || cfg.MaxBackups < 0 || cfg.MaxAgeDays < 0 {
		return nil, fmt.Errorf("failurelog: invalid rotation size=%d backups=%d age_days=%d",
			cfg.MaxSizeMB, cfg.MaxBackups, cfg.MaxAgeDays)
	}
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return nil, errors.Wrap(err, "failurelog: create log dir")
	}
	return &FileRecorder{
		out: &lumberjack.Logger{
			Filename:   name,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		},
	}, nil
}

// RecordFailure 实现 Recorder，单次 Write 保证一条记录不被并发写入打断
func (r *FileRecorder) RecordFailure(_ context.Context, action string, err error) {
	line := fmt.Sprintf("%s %s %s\n", time.Now().Format(time.RFC3339), action, oneLine(err))
	if _, werr := r.out.Write([]byte(line)); werr != nil {
		log.Errorf("failurelog: write %s failed, %v", r.out.Filename, werr)
	}
}

// Close 关闭文件
func (r *FileRecorder) Close() error {
	return r.out.Close()
}

func oneLine(err error) string {
	if err == nil {
		return "<nil>"
	}
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(err.Error())
}
