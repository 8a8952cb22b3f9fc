package config

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

const (
	defaultWindowWidth   = 800
	defaultWindowHeight  = 600
	defaultWindowTitle   = "Assassin Puzzle"
	defaultArenaSize     = 400.0
	defaultPointMargin   = 50.0
	defaultMinSeparation = 100.0
	defaultShotLength    = 1000.0
	defaultStopRadius    = 6.0
	defaultGuardDebounce = 100 * time.Millisecond
	defaultLogLevel      = "debug"
)

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate rejects settings that would make the arena degenerate or leave no room for the puzzle points.
func (c *Config) validate() error {
	width, height := c.GetArenaWidth(), c.GetArenaHeight()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("arena must have a positive size, got %gx%g", width, height)
	}

	margin := c.GetPointMargin()
	if 2*margin >= width || 2*margin >= height {
		return fmt.Errorf("point margin %g leaves no room inside a %gx%g arena", margin, width, height)
	}

	shotLength := c.GetShotLength()
	if math.IsInf(shotLength, 0) || !(shotLength > 0) {
		return fmt.Errorf("shot length must be positive and finite, got %g", shotLength)
	}

	return nil
}

func (c *Config) GetWindowWidth() int {
	windowWidth := c.config.GetInt("WINDOW_WIDTH")
	if windowWidth == 0 {
		windowWidth = c.config.GetInt("window.width")
	}
	if windowWidth == 0 {
		windowWidth = defaultWindowWidth
	}

	return windowWidth
}

func (c *Config) GetWindowHeight() int {
	windowHeight := c.config.GetInt("WINDOW_HEIGHT")
	if windowHeight == 0 {
		windowHeight = c.config.GetInt("window.height")
	}
	if windowHeight == 0 {
		windowHeight = defaultWindowHeight
	}

	return windowHeight
}

func (c *Config) GetWindowTitle() string {
	windowTitle := c.config.GetString("WINDOW_TITLE")
	if len(windowTitle) == 0 {
		windowTitle = c.config.GetString("window.title")
	}
	if len(windowTitle) == 0 {
		windowTitle = defaultWindowTitle
	}

	return windowTitle
}

func (c *Config) GetArenaWidth() float64 {
	return c.getFloat("ARENA_WIDTH", "arena.width", defaultArenaSize)
}

func (c *Config) GetArenaHeight() float64 {
	return c.getFloat("ARENA_HEIGHT", "arena.height", defaultArenaSize)
}

// GetPointMargin is the minimum distance between a randomly placed point and the arena walls.
func (c *Config) GetPointMargin() float64 {
	return c.getFloat("POINT_MARGIN", "arena.point_margin", defaultPointMargin)
}

// GetMinSeparation is the minimum distance between a random assassin and target.
func (c *Config) GetMinSeparation() float64 {
	return c.getFloat("MIN_SEPARATION", "arena.min_separation", defaultMinSeparation)
}

func (c *Config) GetShotLength() float64 {
	return c.getFloat("SHOT_LENGTH", "shot.length", defaultShotLength)
}

func (c *Config) GetStopRadius() float64 {
	return c.getFloat("STOP_RADIUS", "shot.stop_radius", defaultStopRadius)
}

func (c *Config) GetGuardDebounce() time.Duration {
	debounceMilliseconds := c.config.GetInt("GUARD_DEBOUNCE_MS")
	if debounceMilliseconds == 0 {
		debounceMilliseconds = c.config.GetInt("guards.debounce_ms")
	}
	if debounceMilliseconds <= 0 {
		return defaultGuardDebounce
	}

	return time.Duration(debounceMilliseconds) * time.Millisecond
}

func (c *Config) GetLogLevel() string {
	logLevel := c.config.GetString("LOG_LEVEL")
	if len(logLevel) == 0 {
		logLevel = c.config.GetString("log.level")
	}
	if len(logLevel) == 0 {
		logLevel = defaultLogLevel
	}

	return logLevel
}

func (c *Config) getFloat(envKey, fileKey string, fallback float64) float64 {
	value := c.config.GetFloat64(envKey)
	if value == 0 {
		value = c.config.GetFloat64(fileKey)
	}
	if value == 0 {
		value = fallback
	}

	return value
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
