package loader

import (
	"testing"

	"github.com/dshills/peek/internal/config/layer"
)

func TestEnvLoader_Load(t *testing.T) {
	t.Setenv("PEEK_TAB_SIZE", "2")
	t.Setenv("PEEK_LOG_LEVEL", "debug")
	t.Setenv("PEEK_LOG_FILE", "/tmp/peek.log")
	t.Setenv("PEEK_FOLLOW", "yes")

	config, err := NewEnvLoader("PEEK_").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tests := []struct {
		path string
		want any
	}{
		{"editor.tabSize", int64(2)},
		{"logging.level", "debug"},
		{"logging.file", "/tmp/peek.log"},
		{"files.follow", true},
	}
	for _, tt := range tests {
		got, ok := layer.GetByPath(config, tt.path)
		if !ok || got != tt.want {
			t.Errorf("%s = %v (%T), want %v", tt.path, got, got, tt.want)
		}
	}
}

func TestEnvLoader_LoadUnmapped(t *testing.T) {
	t.Setenv("PEEK_CUSTOM_SETTING", "value")

	config, err := NewEnvLoader("PEEK_").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if val, ok := layer.GetByPath(config, "custom.setting"); !ok || val != "value" {
		t.Errorf("custom.setting = %v, want 'value'", val)
	}
}

func TestEnvLoader_envToPath(t *testing.T) {
	loader := NewEnvLoader("PEEK_")

	tests := []struct {
		env      string
		expected string
	}{
		{"PEEK_EDITOR_TAB_SIZE", "editor.tabSize"},
		{"PEEK_FILES_FOLLOW", "files.follow"},
		{"PEEK_SIMPLE", "simple"},
		{"PEEK_DEEP_NESTED_PATH", "deep.nestedPath"},
		{"PEEK_", ""},
	}

	for _, tt := range tests {
		got := loader.envToPath(tt.env)
		if got != tt.expected {
			t.Errorf("envToPath(%q) = %q, want %q", tt.env, got, tt.expected)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{"", ""},
		{"true", true},
		{"ON", true},
		{"no", false},
		{"1", int64(1)},
		{"0", int64(0)},
		{"-3", int64(-3)},
		{"1.5", 1.5},
		{"v1.2.3", "v1.2.3"},
		{"hello", "hello"},
	}

	for _, tt := range tests {
		if got := parseValue(tt.input); got != tt.expected {
			t.Errorf("parseValue(%q) = %v (%T), want %v (%T)", tt.input, got, got, tt.expected, tt.expected)
		}
	}
}
