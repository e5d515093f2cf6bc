package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigEmptyPath(t *testing.T) {
	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if config.Generation.FixedSeed != 20 || config.Generation.RandomMode != "random" {
		t.Errorf("unexpected generation defaults: %+v", config.Generation)
	}
	if config.Corpus.SQLiteTable != "corpus" || config.Corpus.RowSeparator != "\n" {
		t.Errorf("unexpected corpus defaults: %+v", config.Corpus)
	}
}

func TestLoadConfigCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if config.Log.Level != "info" {
		t.Errorf("expected default log level, got %q", config.Log.Level)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected the default config file to be written: %v", err)
	}
	var written Config
	if err = json.Unmarshal(data, &written); err != nil {
		t.Fatalf("written config is not valid JSON: %v", err)
	}
	if written.Generation == nil || written.Generation.FixedSeed != 20 {
		t.Errorf("unexpected written config: %s", data)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"log_config": {"log_level": "debug"}, "corpus_config": null}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if config.Log.Level != "debug" || config.Log.Format != "text" {
		t.Errorf("expected overridden level and default format, got %+v", config.Log)
	}
	if config.Corpus == nil || config.Corpus.SQLiteColumn != "text" {
		t.Errorf("expected corpus defaults to be restored, got %+v", config.Corpus)
	}
	if config.Generation.FixedSeed != 20 {
		t.Errorf("expected default seed, got %d", config.Generation.FixedSeed)
	}
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected an error for invalid JSON")
	}
}

func TestParseLogLevel(t *testing.T) {
	testCases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for input, expected := range testCases {
		if got := parseLogLevel(input); got != expected {
			t.Errorf("parseLogLevel(%q) = %v, want %v", input, got, expected)
		}
	}
}

func TestNewLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, &LogConfig{Level: "info", Format: "json"})
	logger.Info("hello", "key", "value")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON log output, got %q", buf.String())
	}
	if record["msg"] != "hello" || record["key"] != "value" {
		t.Errorf("unexpected log record: %v", record)
	}

	buf.Reset()
	logger = newLogger(&buf, &LogConfig{Level: "warn", Format: "text"})
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "msg=shown") {
		t.Errorf("unexpected text log output: %q", buf.String())
	}
}
