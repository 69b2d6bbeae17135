package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.FocusMinutes != 25 || cfg.PollIntervalMS != 250 {
		t.Fatalf("unexpected timing defaults: %+v", cfg)
	}
	if !cfg.ConfirmQuit || !cfg.ShowSplash {
		t.Fatalf("unexpected toggle defaults: %+v", cfg)
	}
	if cfg.DBDriver != "sqlite3" || cfg.Theme != "horizon" {
		t.Fatalf("unexpected storage defaults: %+v", cfg)
	}
	if cfg.Keys.Quit != "q" || cfg.Keys.CycleView != "tab" {
		t.Fatalf("unexpected keymap defaults: %+v", cfg.Keys)
	}
}

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", DefaultConfigFileName)

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("load or create: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file to be written: %v", err)
	}
	if cfg.DBPath != filepath.Join(dir, "sub", DefaultDBName) {
		t.Fatalf("expected db path next to config, got %q", cfg.DBPath)
	}

	again, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reflect.DeepEqual(cfg, again) {
		t.Fatalf("reloaded config differs:\n%+v\n%+v", cfg, again)
	}
}

func TestLoadOrCreateMergesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	body := strings.Join([]string{
		`theme = "nebula"`,
		`focus_minutes = 50`,
		`confirm_quit = false`,
		`db_path = "/var/lib/zenith/tasks.db"`,
		``,
		`[keys]`,
		`quit = "x"`,
		`delete = ""`,
	}, "\n")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Theme != "nebula" || cfg.FocusMinutes != 50 || cfg.ConfirmQuit {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.DBPath != "/var/lib/zenith/tasks.db" {
		t.Fatalf("absolute db path should be kept, got %q", cfg.DBPath)
	}
	if cfg.PollIntervalMS != 250 || !cfg.ShowSplash {
		t.Fatalf("missing values should keep defaults: %+v", cfg)
	}
	if cfg.Keys.Quit != "x" || cfg.Keys.Delete != "d,delete" || cfg.Keys.New != "n" {
		t.Fatalf("unexpected keymap: %+v", cfg.Keys)
	}
}

func TestLoadOrCreateRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	if err := os.WriteFile(path, []byte("theme = [unterminated"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadOrCreate(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("ZENITH_DB_PATH", "/tmp/other.db")
	t.Setenv("ZENITH_DB_DRIVER", "sqlite")
	t.Setenv("ZENITH_THEME", "cyberpunk")
	t.Setenv("ZENITH_FOCUS_MINUTES", "30")
	t.Setenv("ZENITH_POLL_INTERVAL_MS", "100")
	t.Setenv("ZENITH_CONFIRM_QUIT", "no")
	t.Setenv("ZENITH_SHOW_SPLASH", "off")
	t.Setenv("ZENITH_LOG_FILE", "/tmp/zenith.log")
	t.Setenv("ZENITH_LOG_LEVEL", "debug")

	cfg := FromEnv(Default())
	if cfg.DBPath != "/tmp/other.db" || cfg.DBDriver != "sqlite" || cfg.Theme != "cyberpunk" {
		t.Fatalf("unexpected string overrides: %+v", cfg)
	}
	if cfg.FocusMinutes != 30 || cfg.PollIntervalMS != 100 {
		t.Fatalf("unexpected int overrides: %+v", cfg)
	}
	if cfg.ConfirmQuit || cfg.ShowSplash {
		t.Fatalf("unexpected bool overrides: %+v", cfg)
	}
	if cfg.LogFile != "/tmp/zenith.log" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected log overrides: %+v", cfg)
	}
}

func TestFromEnvIgnoresInvalidValues(t *testing.T) {
	t.Setenv("ZENITH_FOCUS_MINUTES", "-5")
	t.Setenv("ZENITH_POLL_INTERVAL_MS", "fast")
	t.Setenv("ZENITH_CONFIRM_QUIT", "maybe")

	cfg := FromEnv(Default())
	if cfg.FocusMinutes != 25 || cfg.PollIntervalMS != 250 || !cfg.ConfirmQuit {
		t.Fatalf("invalid env values should be ignored: %+v", cfg)
	}
}

func TestSplitKeys(t *testing.T) {
	if got := SplitKeys("d,delete"); !reflect.DeepEqual(got, []string{"d", "delete"}) {
		t.Fatalf("unexpected split: %q", got)
	}
	if got := SplitKeys(" "); !reflect.DeepEqual(got, []string{" "}) {
		t.Fatalf("expected literal space, got %q", got)
	}
	if got := SplitKeys("space, x"); !reflect.DeepEqual(got, []string{" ", "x"}) {
		t.Fatalf("expected named space, got %q", got)
	}
	if got := SplitKeys(""); len(got) != 0 {
		t.Fatalf("expected no keys, got %q", got)
	}
}
