package layer

import (
	"testing"
)

func TestNewLayer(t *testing.T) {
	tests := []struct {
		source       Source
		wantName     string
		wantPriority int
	}{
		{SourceBuiltin, "defaults", PriorityBuiltin},
		{SourceUser, "user", PriorityUser},
		{SourceEnv, "environment", PriorityEnv},
	}

	for _, tt := range tests {
		l := NewLayer(tt.source, nil)
		if l.Name != tt.wantName {
			t.Errorf("NewLayer(%v).Name = %q, want %q", tt.source, l.Name, tt.wantName)
		}
		if l.Priority != tt.wantPriority {
			t.Errorf("NewLayer(%v).Priority = %d, want %d", tt.source, l.Priority, tt.wantPriority)
		}
		if l.Source != tt.source {
			t.Errorf("NewLayer(%v).Source = %v", tt.source, l.Source)
		}
		if l.Data == nil {
			t.Error("Data should be initialized")
		}
	}
}

func TestSourceString(t *testing.T) {
	tests := []struct {
		source Source
		want   string
	}{
		{SourceBuiltin, "builtin"},
		{SourceUser, "user"},
		{SourceEnv, "environment"},
		{Source(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.source.String(); got != tt.want {
			t.Errorf("Source(%d).String() = %q, want %q", tt.source, got, tt.want)
		}
	}
}

func TestDefaultPriority(t *testing.T) {
	if DefaultPriority(SourceBuiltin) >= DefaultPriority(SourceUser) {
		t.Error("builtin should rank below user")
	}
	if DefaultPriority(SourceUser) >= DefaultPriority(SourceEnv) {
		t.Error("user should rank below environment")
	}
	if DefaultPriority(Source(99)) != PriorityBuiltin {
		t.Errorf("DefaultPriority(unknown) = %d", DefaultPriority(Source(99)))
	}
	if StandardLayerName(Source(99)) != "unknown" {
		t.Errorf("StandardLayerName(unknown) = %q", StandardLayerName(Source(99)))
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"editor":  map[string]any{"tabSize": 4, "other": true},
		"logging": map[string]any{"level": "info"},
	}
	src := map[string]any{
		"editor":  map[string]any{"tabSize": 8},
		"logging": "flat",
		"files":   map[string]any{"follow": true},
	}

	result := DeepMerge(dst, src)

	editor := result["editor"].(map[string]any)
	if editor["tabSize"] != 8 {
		t.Errorf("tabSize = %v, want 8", editor["tabSize"])
	}
	if editor["other"] != true {
		t.Error("unrelated keys should survive a merge")
	}
	if result["logging"] != "flat" {
		t.Errorf("logging = %v, want replaced value", result["logging"])
	}
	if _, ok := result["files"].(map[string]any); !ok {
		t.Error("new sections should be added")
	}

	// Values taken from src are copies
	src["files"].(map[string]any)["follow"] = false
	if result["files"].(map[string]any)["follow"] != true {
		t.Error("merged result should not alias src")
	}

	if got := DeepMerge(nil, nil); got == nil || len(got) != 0 {
		t.Errorf("DeepMerge(nil, nil) = %v", got)
	}
}

func TestGetSetByPath(t *testing.T) {
	data := map[string]any{}
	SetByPath(data, "editor.tabSize", 2)
	SetByPath(data, "files.follow", true)
	SetByPath(data, "", "ignored")

	tests := []struct {
		path  string
		want  any
		found bool
	}{
		{"editor.tabSize", 2, true},
		{"files.follow", true, true},
		{"editor.missing", nil, false},
		{"editor.tabSize.deeper", nil, false},
		{"", nil, false},
	}

	for _, tt := range tests {
		got, ok := GetByPath(data, tt.path)
		if ok != tt.found || got != tt.want {
			t.Errorf("GetByPath(%q) = (%v, %v), want (%v, %v)", tt.path, got, ok, tt.want, tt.found)
		}
	}

	if _, ok := GetByPath(nil, "a"); ok {
		t.Error("GetByPath on nil map should not find anything")
	}
}
