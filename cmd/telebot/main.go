package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/tencent-connect/botgo/log"

	"github.com/clutchfact0r/telebot/config"
	"github.com/clutchfact0r/telebot/failurelog"
	"github.com/clutchfact0r/telebot/openapi"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	flags := pflag.NewFlagSet("telebot", pflag.ContinueOnError)
	configPath := flags.StringP("config", "c", "config.yaml", "path of config.yaml")
	envFile := flags.String("env-file", ".env", "dotenv file, missing file is ignored")
	list := flags.Bool("list", false, "list supported actions and exit")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: telebot [flags] <action> [key=value ...]")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *list {
		return printActions(stdout)
	}
	if flags.NArg() < 1 {
		flags.Usage()
		return fmt.Errorf("action is required")
	}

	// .env 中的 TELEBOT_TOKEN 会覆盖配置文件
	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load %s: %w", *envFile, err)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	recorder, closeRecorder, err := newRecorder(cfg.FailureLog)
	if err != nil {
		return err
	}
	defer closeRecorder()

	opts := []openapi.Option{
		openapi.WithTimeout(cfg.Timeout()),
		openapi.WithRecorder(recorder),
		openapi.WithDebug(cfg.Debug),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openapi.WithBaseURL(cfg.BaseURL))
	}
	api := openapi.New(cfg.Token, opts...)

	action := flags.Arg(0)
	params, err := parseParams(flags.Args()[1:])
	if err != nil {
		return err
	}
	res, err := api.Transport(context.Background(), action, params)
	if err != nil {
		return err
	}
	return printJSON(stdout, res.Value)
}

// newRecorder 日志之外，按配置追加文件和 sqlite 记录
func newRecorder(cfg config.FailureLog) (failurelog.Recorder, func(), error) {
	recorders := []failurelog.Recorder{failurelog.NewLoggerRecorder(log.DefaultLogger)}
	var closers []io.Closer
	closeAll := func() {
		for _, c := range closers {
			if err := c.Close(); err != nil {
				log.Errorf("close failure log: %v", err)
			}
		}
	}

	if fileCfg, ok := cfg.FileConfig(); ok {
		fileRecorder, err := failurelog.NewFileRecorder(fileCfg)
		if err != nil {
			return nil, nil, err
		}
		recorders = append(recorders, fileRecorder)
		closers = append(closers, fileRecorder)
	}
	if path := strings.TrimSpace(cfg.SQLite); path != "" {
		sqliteRecorder, err := failurelog.OpenSQLite(path)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		recorders = append(recorders, sqliteRecorder)
		closers = append(closers, sqliteRecorder)
	}
	return failurelog.Multi(recorders...), closeAll, nil
}

// 这些参数即使是数字也按字符串发送
var stringParams = map[string]bool{
	"chat_id":      true,
	"text":         true,
	"parse_mode":   true,
	"caption":      true,
	"photo":        true,
	"audio":        true,
	"document":     true,
	"video":        true,
	"voice":        true,
	"title":        true,
	"performer":    true,
	"phone_number": true,
	"first_name":   true,
	"last_name":    true,
	"vcard":        true,
	"file_id":      true,
	"url":          true,
	"reply_markup": true,
}

func parseParams(args []string) (openapi.Params, error) {
	params := openapi.Params{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid param %q, want key=value", arg)
		}
		params[key] = parseValue(key, value)
	}
	return params, nil
}

func parseValue(key, value string) any {
	if stringParams[key] {
		return value
	}
	if i, err := strconv.ParseInt(value, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return value
}

func printActions(w io.Writer) error {
	for _, action := range openapi.Actions() {
		_, err := fmt.Fprintf(w, "%-22s %-4s %-5s required=%s optional=%s\n",
			action.Name, action.Method, action.Location,
			strings.Join(action.Required, ","), strings.Join(action.Optional, ","))
		if err != nil {
			return err
		}
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
