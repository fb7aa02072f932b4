// Package config 加载命令行使用的 yaml 配置
package config

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/clutchfact0r/telebot/failurelog"
)

// Config config.yaml 的结构
type Config struct {
	Token   string `yaml:"token"`
	BaseURL string `yaml:"base_url"`
	// 超时时间，单位秒，0 使用默认值
	TimeoutSec int        `yaml:"timeout"`
	Debug      bool       `yaml:"debug"`
	FailureLog FailureLog `yaml:"failure_log"`
}

// FailureLog 失败记录的落地方式，都为空时只打印日志
type FailureLog struct {
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
	SQLite     string `yaml:"sqlite"`
}

// TokenEnv 覆盖配置中 token 的环境变量
const TokenEnv = "TELEBOT_TOKEN"

// Load 读取配置文件，环境变量中的 token 优先，最后做校验
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: read %s", path)
	}
	cfg, err := Parse(content)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse 解析 yaml 内容，不做校验
func Parse(content []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, errors.Wrap(err, "config: parse yaml")
	}
	cfg.Token = strings.TrimSpace(cfg.Token)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	return cfg, nil
}

// ApplyEnv 使用环境变量覆盖 token
func (c *Config) ApplyEnv() {
	if token := strings.TrimSpace(os.Getenv(TokenEnv)); token != "" {
		c.Token = token
	}
}

// Validate 校验必填项
func (c *Config) Validate() error {
	if c.Token == "" {
		return errors.New("config: token is required")
	}
	if c.TimeoutSec < 0 {
		return errors.Errorf("config: timeout must be >= 0, got %d", c.TimeoutSec)
	}
	return nil
}

// Timeout 请求超时时间，未配置时返回 0
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// FileConfig 文件记录器配置，未配置文件时返回 false
func (f FailureLog) FileConfig() (failurelog.FileConfig, bool) {
	if strings.TrimSpace(f.File) == "" {
		return failurelog.FileConfig{}, false
	}
	return failurelog.FileConfig{
		Filename:   f.File,
		MaxSizeMB:  f.MaxSizeMB,
		MaxBackups: f.MaxBackups,
		MaxAgeDays: f.MaxAgeDays,
		Compress:   f.Compress,
	}, true
}
