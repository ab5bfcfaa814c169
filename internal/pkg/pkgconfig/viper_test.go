package pkgconfig

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestViperConfigValues(t *testing.T) {
	path := writeConfigFile(t, "int: 42\nbool: true\nstring: hi\nduration: 3s\narray: a, b ,,c\n")

	cfg, err := NewViper(path)
	if err != nil {
		t.Fatalf("NewViper: %v", err)
	}
	defer func() {
		if err := cfg.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}()

	if got := cfg.GetInt("int"); got != 42 {
		t.Fatalf("GetInt: expected 42, got %d", got)
	}
	if got := cfg.GetBool("bool"); got != true {
		t.Fatalf("GetBool: expected true, got %v", got)
	}
	if got := cfg.GetString("string"); got != "hi" {
		t.Fatalf("GetString: expected hi, got %q", got)
	}
	if got := cfg.GetDuration("duration"); got != 3*time.Second {
		t.Fatalf("GetDuration: expected 3s, got %v", got)
	}
	if got := cfg.GetArray("array"); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("GetArray: unexpected value: %#v", got)
	}
}

func TestViperMissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("UPSTREAM_HIANIME_URL", "http://localhost:9000")

	cfg, err := NewViper(filepath.Join(t.TempDir(), "missing", "config.yaml"))
	if err != nil {
		t.Fatalf("NewViper: %v", err)
	}

	want := []string{"https://a.example", "https://b.example"}
	if got := cfg.GetArray("allowed_origins"); !reflect.DeepEqual(got, want) {
		t.Fatalf("GetArray: unexpected value: %#v", got)
	}
	if got := cfg.GetString("upstream.hianime_url"); got != "http://localhost:9000" {
		t.Fatalf("GetString: unexpected value: %q", got)
	}
}

func TestViperEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "port: 8080\n")
	t.Setenv("PORT", "9090")

	cfg, err := NewViper(path)
	if err != nil {
		t.Fatalf("NewViper: %v", err)
	}

	if got := cfg.GetInt("port"); got != 9090 {
		t.Fatalf("expected env port 9090, got %d", got)
	}
}

func TestViperGetArrayUnset(t *testing.T) {
	cfg, err := NewViper("")
	if err != nil {
		t.Fatalf("NewViper: %v", err)
	}

	if got := cfg.GetArray("nothing_here_at_all"); len(got) != 0 {
		t.Fatalf("expected empty array, got %#v", got)
	}
}
