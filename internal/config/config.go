package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/jwebster45206/doom-launchers/pkg/paths"
)

// Prompt styles for campaign selection.
const (
	UIAuto  = "auto"
	UIPlain = "plain"
	UITUI   = "tui"
)

// ErrNoWindowsUser is returned when a doom home is unset and no Windows user
// directory can stand in for it.
var ErrNoWindowsUser = errors.New("no windows user directory found")

// systemUsers are the profile directories under C:\Users that belong to no
// one.
var systemUsers = []string{"Default", "Default User", "All Users", "Public"}

type Config struct {
	WindowsHome   string `env:"WINDOWS_DOOM_HOME"`
	UnixHome      string `env:"UNIX_DOOM_HOME"`
	UsersDir      string `env:"DOOM_USERS_DIR"       envDefault:"/mnt/c/Users"`
	UnixUsersRoot string `env:"DOOM_UNIX_USERS_ROOT" envDefault:"/c/Users"`
	GameDataDir   string `env:"DOOM_GAME_DATA_DIR"   envDefault:"./game-data"`
	UI            string `env:"DOOM_UI"              envDefault:"auto"`
	Environment   string `env:"ENVIRONMENT"          envDefault:"development"`
	LogLevelName  string `env:"LOG_LEVEL"            envDefault:"info"`

	// Derived by Load.
	LogLevel slog.Level
	Home     paths.Home
}

// Load reads the environment and resolves the doom home directories.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = parseLogLevel(cfg.LogLevelName)

	cfg.UI = strings.ToLower(cfg.UI)
	switch cfg.UI {
	case UIAuto, UIPlain, UITUI:
	default:
		return nil, fmt.Errorf("DOOM_UI must be one of %s, %s or %s, got %q", UIAuto, UIPlain, UITUI, cfg.UI)
	}

	home, err := resolveHome(cfg.WindowsHome, cfg.UnixHome, cfg.UsersDir, cfg.UnixUsersRoot)
	if err != nil {
		return nil, err
	}
	cfg.Home = home
	return &cfg, nil
}

// resolveHome fills whichever root is unset from the first real Windows user.
func resolveHome(windows, unix, usersDir, unixUsersRoot string) (paths.Home, error) {
	if windows != "" && unix != "" {
		return paths.Home{Windows: windows, Unix: unix}, nil
	}

	user, err := windowsUser(usersDir)
	if err != nil {
		return paths.Home{}, err
	}
	if windows == "" {
		windows = paths.WinJoin(`C:\Users`, user, "doom")
	}
	if unix == "" {
		unix = filepath.Join(unixUsersRoot, user, "doom")
	}
	return paths.Home{Windows: windows, Unix: unix}, nil
}

func windowsUser(usersDir string) (string, error) {
	entries, err := os.ReadDir(usersDir)
	if err != nil {
		return "", fmt.Errorf("failed to read users directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() && !slices.Contains(systemUsers, entry.Name()) {
			return entry.Name(), nil
		}
	}
	return "", fmt.Errorf("%w in %s", ErrNoWindowsUser, usersDir)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
