package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	AppName               = "zenith"
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "zenith.db"
	DefaultTheme          = "horizon"
	DefaultDriver         = "sqlite3"
)

// Keymap binds actions to keys. A value may list several keys separated by
// commas, e.g. "d,delete".
type Keymap struct {
	Quit         string `toml:"quit"`
	New          string `toml:"new"`
	Edit         string `toml:"edit"`
	CycleView    string `toml:"cycle_view"`
	ToggleStatus string `toml:"toggle_status"`
	Delete       string `toml:"delete"`
	Search       string `toml:"search"`
	Inspect      string `toml:"inspect"`
	Help         string `toml:"help"`
	TimerToggle  string `toml:"timer_toggle"`
	TimerReset   string `toml:"timer_reset"`
	Theme        string `toml:"theme"`
}

type Config struct {
	DBPath         string `toml:"db_path"`
	DBDriver       string `toml:"db_driver"`
	Theme          string `toml:"theme"`
	FocusMinutes   int    `toml:"focus_minutes"`
	PollIntervalMS int    `toml:"poll_interval_ms"`
	ConfirmQuit    bool   `toml:"confirm_quit"`
	ShowSplash     bool   `toml:"show_splash"`
	LogFile        string `toml:"log_file"`
	LogLevel       string `toml:"log_level"`
	Keys           Keymap `toml:"keys"`
}

func Default() Config {
	return Config{
		DBPath:         DefaultDBName,
		DBDriver:       DefaultDriver,
		Theme:          DefaultTheme,
		FocusMinutes:   25,
		PollIntervalMS: 250,
		ConfirmQuit:    true,
		ShowSplash:     true,
		LogLevel:       "info",
		Keys:           DefaultKeymap(),
	}
}

func DefaultKeymap() Keymap {
	return Keymap{
		Quit:         "q",
		New:          "n",
		Edit:         "e",
		CycleView:    "tab",
		ToggleStatus: " ",
		Delete:       "d,delete",
		Search:       "/",
		Inspect:      "enter",
		Help:         "?",
		TimerToggle:  "t",
		TimerReset:   "r",
		Theme:        "T",
	}
}

// Dir is the per-user directory holding the config file and database.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// DefaultPath returns the config file location under Dir.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultConfigFileName), nil
}

// LoadOrCreate reads the TOML file at path, writing the defaults there first
// when it does not exist yet. A relative db_path is resolved against the
// config file's directory.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		cfg.DBPath = resolveDBPath(path, cfg.DBPath)
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.normalize()
	cfg.DBPath = resolveDBPath(path, cfg.DBPath)
	return cfg, nil
}

func write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func resolveDBPath(configPath, dbPath string) string {
	if dbPath == "" || filepath.IsAbs(dbPath) || strings.HasPrefix(dbPath, "file:") {
		return dbPath
	}
	return filepath.Join(filepath.Dir(configPath), dbPath)
}

// normalize fills zero values left by a partial file with defaults.
func (c *Config) normalize() {
	def := Default()
	if strings.TrimSpace(c.DBPath) == "" {
		c.DBPath = def.DBPath
	}
	if strings.TrimSpace(c.DBDriver) == "" {
		c.DBDriver = def.DBDriver
	}
	if strings.TrimSpace(c.Theme) == "" {
		c.Theme = def.Theme
	}
	if c.FocusMinutes <= 0 {
		c.FocusMinutes = def.FocusMinutes
	}
	if c.PollIntervalMS <= 0 {
		c.PollIntervalMS = def.PollIntervalMS
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = def.LogLevel
	}
	k := &c.Keys
	for _, pair := range []struct {
		dst *string
		def string
	}{
		{&k.Quit, def.Keys.Quit},
		{&k.New, def.Keys.New},
		{&k.Edit, def.Keys.Edit},
		{&k.CycleView, def.Keys.CycleView},
		{&k.ToggleStatus, def.Keys.ToggleStatus},
		{&k.Delete, def.Keys.Delete},
		{&k.Search, def.Keys.Search},
		{&k.Inspect, def.Keys.Inspect},
		{&k.Help, def.Keys.Help},
		{&k.TimerToggle, def.Keys.TimerToggle},
		{&k.TimerReset, def.Keys.TimerReset},
		{&k.Theme, def.Keys.Theme},
	} {
		if *pair.dst == "" {
			*pair.dst = pair.def
		}
	}
}

// FromEnv applies ZENITH_* overrides on top of base.
func FromEnv(base Config) Config {
	cfg := base
	if v, ok := getEnvString("ZENITH_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvString("ZENITH_DB_DRIVER"); ok {
		cfg.DBDriver = v
	}
	if v, ok := getEnvString("ZENITH_THEME"); ok {
		cfg.Theme = v
	}
	if v, ok := getEnvInt("ZENITH_FOCUS_MINUTES"); ok && v > 0 {
		cfg.FocusMinutes = v
	}
	if v, ok := getEnvInt("ZENITH_POLL_INTERVAL_MS"); ok && v > 0 {
		cfg.PollIntervalMS = v
	}
	if v, ok := getEnvBool("ZENITH_CONFIRM_QUIT"); ok {
		cfg.ConfirmQuit = v
	}
	if v, ok := getEnvBool("ZENITH_SHOW_SPLASH"); ok {
		cfg.ShowSplash = v
	}
	if v, ok := getEnvString("ZENITH_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := getEnvString("ZENITH_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	return cfg
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw, ok := getEnvString(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw, ok := getEnvString(name)
	if !ok {
		return false, false
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}

// SplitKeys turns a Keymap value into the individual key names.
func SplitKeys(raw string) []string {
	if raw == " " {
		return []string{" "}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == " " {
			out = append(out, p)
			continue
		}
		p = strings.TrimSpace(p)
		if p == "space" {
			p = " "
		}
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
