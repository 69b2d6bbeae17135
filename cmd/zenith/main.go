package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	zone "github.com/lrstanley/bubblezone"
	"github.com/sandeepkv93/zenith/internal/config"
	"github.com/sandeepkv93/zenith/internal/logging"
	"github.com/sandeepkv93/zenith/internal/storage"
	"github.com/sandeepkv93/zenith/internal/update"
	"github.com/sandeepkv93/zenith/internal/views"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var Version = "dev"

type flags struct {
	configPath string
	dbPath     string
	driver     string
	theme      string
	logFile    string
	noSplash   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "zenith failed: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "zenith",
		Short:         "Terminal task board with xp, kanban and a focus timer",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), f)
		},
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Config file (default: user config dir)")
	cmd.Flags().StringVar(&f.dbPath, "db", "", "SQLite database path")
	cmd.Flags().StringVar(&f.driver, "driver", "", "SQLite driver: sqlite3 (cgo) or sqlite (pure go)")
	cmd.Flags().StringVar(&f.theme, "theme", "", "Theme: horizon, nebula or cyberpunk")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "Write logs to this file")
	cmd.Flags().BoolVar(&f.noSplash, "no-splash", false, "Skip the splash screen")
	return cmd
}

func loadConfig(f flags) (config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config.Config{}, fmt.Errorf("load .env: %w", err)
	}
	path := f.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
		path = p
	}
	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		return config.Config{}, err
	}
	cfg = config.FromEnv(cfg)
	if f.dbPath != "" {
		cfg.DBPath = f.dbPath
	}
	if f.driver != "" {
		cfg.DBDriver = f.driver
	}
	if f.theme != "" {
		if !views.IsTheme(f.theme) {
			return config.Config{}, fmt.Errorf("unknown theme %q", f.theme)
		}
		cfg.Theme = f.theme
	}
	if f.logFile != "" {
		cfg.LogFile = f.logFile
	}
	if f.noSplash {
		cfg.ShowSplash = false
	}
	return cfg, nil
}

func run(ctx context.Context, f flags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}
	logger, cleanup, err := logging.New(logging.Config{Level: cfg.LogLevel, Path: cfg.LogFile})
	if err != nil {
		return err
	}
	defer cleanup()

	store, err := storage.Open(ctx, cfg.DBDriver, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()
	logger.Info("store opened", zap.String("driver", cfg.DBDriver), zap.String("path", cfg.DBPath))

	// An explicit --theme replaces whatever was saved last session.
	if f.theme != "" {
		if err := store.SetSetting(ctx, storage.SettingTheme, f.theme); err != nil {
			return fmt.Errorf("save theme: %w", err)
		}
	}

	zones := zone.New()
	defer zones.Close()
	m, err := update.NewModel(store, cfg, update.Options{
		Logger:  logger,
		Zones:   zones,
		Context: ctx,
	})
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("session ended")
	return nil
}
