package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/clutchfact0r/telebot/config"
	"github.com/clutchfact0r/telebot/failurelog"
)

func writeConfig(t *testing.T, dir, baseURL string) string {
	t.Helper()
	content := fmt.Sprintf(`
token: "42:abc"
base_url: %q
timeout: 2
failure_log:
  file: %q
  sqlite: %q
`, baseURL, filepath.Join(dir, "logs", "failures.log"), filepath.Join(dir, "failures.db"))
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestRunSendMessage(t *testing.T) {
	t.Setenv(config.TokenEnv, "")
	var gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotPath, gotBody = r.URL.Path, string(body)
		_, _ = io.WriteString(w, `{"ok":true,"result":{"message_id":9}}`)
	}))
	defer srv.Close()

	dir := t.TempDir()
	path := writeConfig(t, dir, srv.URL+"/bot")
	var out bytes.Buffer
	err := run([]string{"-c", path, "--env-file", filepath.Join(dir, "none.env"),
		"sendMessage", "chat_id=123", "text=hello"}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if gotPath != "/bot42:abc/sendMessage" {
		t.Fatalf("path = %q", gotPath)
	}
	if !strings.Contains(gotBody, `"chat_id":"123"`) || !strings.Contains(gotBody, `"text":"hello"`) {
		t.Fatalf("body = %q", gotBody)
	}
	if !strings.Contains(out.String(), `"message_id": 9`) {
		t.Fatalf("output = %q", out.String())
	}
}

func TestRunRecordsFailures(t *testing.T) {
	t.Setenv(config.TokenEnv, "")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "not json")
	}))
	defer srv.Close()

	dir := t.TempDir()
	path := writeConfig(t, dir, srv.URL+"/bot")
	err := run([]string{"-c", path, "--env-file", filepath.Join(dir, "none.env"), "getMe"}, io.Discard)
	if err == nil {
		t.Fatalf("expected decode failure")
	}

	data, err := os.ReadFile(filepath.Join(dir, "logs", "failures.log"))
	if err != nil {
		t.Fatalf("read failure log: %v", err)
	}
	if strings.Count(string(data), "\n") != 1 || !strings.Contains(string(data), " getMe ") {
		t.Fatalf("failure log = %q", data)
	}

	db, err := failurelog.OpenSQLite(filepath.Join(dir, "failures.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer db.Close()
	list, err := db.Failures(context.Background())
	if err != nil {
		t.Fatalf("Failures: %v", err)
	}
	if len(list) != 1 || list[0].Action != "getMe" {
		t.Fatalf("sqlite failures = %+v", list)
	}
}

func TestRunList(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"--list"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := strings.Count(out.String(), "\n"); got != 18 {
		t.Fatalf("expected 18 actions, got %d:\n%s", got, out.String())
	}
	if !strings.Contains(out.String(), "deleteMessage") {
		t.Fatalf("missing deleteMessage:\n%s", out.String())
	}
}

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"chat_id=123", "message_id=5", "latitude=51.5", "disable_notification=true", "title=x=y"})
	if err != nil {
		t.Fatalf("parseParams: %v", err)
	}
	if params["chat_id"] != "123" || params["message_id"] != int64(5) || params["latitude"] != 51.5 ||
		params["disable_notification"] != true || params["title"] != "x=y" {
		t.Fatalf("unexpected params: %#v", params)
	}
	if _, err := parseParams([]string{"oops"}); err == nil {
		t.Fatalf("expected error for missing '='")
	}
}

func TestParseParamsKeepsTextFieldsAsStrings(t *testing.T) {
	params, err := parseParams([]string{"title=1984", "performer=2", "vcard=3", "parse_mode=4", "photo=5", "audio=6", "duration=120"})
	if err != nil {
		t.Fatalf("parseParams: %v", err)
	}
	for _, key := range []string{"title", "performer", "vcard", "parse_mode", "photo", "audio"} {
		if _, ok := params[key].(string); !ok {
			t.Errorf("%s = %#v, want string", key, params[key])
		}
	}
	if params["duration"] != int64(120) {
		t.Errorf("duration = %#v, want int64", params["duration"])
	}
}
