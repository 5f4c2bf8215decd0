package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/dshills/peek/internal/config/layer"
	"github.com/dshills/peek/internal/config/loader"
)

// EnvPrefix is the prefix of environment variables read as configuration.
const EnvPrefix = "PEEK_"

// Config provides unified access to the Peek configuration system.
type Config struct {
	mu sync.RWMutex

	// Layer manager for merged configuration
	layers *layer.Manager

	// Configuration paths
	configDir string

	// Path of the user file that was loaded, if any
	loadedFile string

	envPrefix string

	// configErrors stores errors encountered during configuration access.
	// This allows detection of type mismatches and other config problems.
	configErrors map[string]error
}

// Option configures a Config instance.
type Option func(*Config)

// WithConfigDir sets the user configuration directory.
func WithConfigDir(dir string) Option {
	return func(c *Config) {
		c.configDir = dir
	}
}

// WithEnvPrefix sets the environment variable prefix.
// An empty prefix disables the environment layer.
func WithEnvPrefix(prefix string) Option {
	return func(c *Config) {
		c.envPrefix = prefix
	}
}

// New creates a new Config instance with the given options.
// Until Load is called only the built-in defaults are visible.
func New(opts ...Option) *Config {
	c := &Config{
		layers:    layer.NewManager(),
		envPrefix: EnvPrefix,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.configDir == "" {
		c.configDir = DefaultConfigDir()
	}

	c.layers.AddLayer(layer.NewLayer(layer.SourceBuiltin, defaultConfig()))

	return c
}

// Load loads configuration from all sources.
// A missing user file is not an error; a malformed one is.
func (c *Config) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.loadUserSettings(); err != nil {
		return err
	}

	return c.loadEnvironment()
}

// ConfigDir returns the directory searched for the user file.
func (c *Config) ConfigDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.configDir
}

// LoadedFile returns the path of the user file that was loaded, or "".
func (c *Config) LoadedFile() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadedFile
}

// Get returns the value at the given path from the merged configuration.
func (c *Config) Get(path string) (any, bool) {
	return c.layers.GetEffectiveValue(path)
}

// WhichLayer returns the name of the layer that provides path.
func (c *Config) WhichLayer(path string) string {
	return c.layers.WhichLayer(path)
}

// GetString returns a string value at the given path.
func (c *Config) GetString(path string) (string, error) {
	v, ok := c.Get(path)
	if !ok {
		return "", ErrSettingNotFound
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

// GetInt returns an integer value at the given path.
func (c *Config) GetInt(path string) (int, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case uint64:
		return int(val), nil
	case float64:
		if val != float64(int(val)) {
			return 0, &TypeError{Path: path, Expected: "int", Actual: "float64"}
		}
		return int(val), nil
	default:
		return 0, &TypeError{Path: path, Expected: "int", Actual: typeName(v)}
	}
}

// GetBool returns a boolean value at the given path.
// The integers 0 and 1 are accepted as false and true.
func (c *Config) GetBool(path string) (bool, error) {
	v, ok := c.Get(path)
	if !ok {
		return false, ErrSettingNotFound
	}
	switch val := v.(type) {
	case bool:
		return val, nil
	case int64:
		if val == 0 || val == 1 {
			return val == 1, nil
		}
	case int:
		if val == 0 || val == 1 {
			return val == 1, nil
		}
	}
	return false, &TypeError{Path: path, Expected: "bool", Actual: typeName(v)}
}

// loadUserSettings loads the user file from the config directory.
// config.toml is preferred over config.yaml and config.yml.
func (c *Config) loadUserSettings() error {
	candidates := []struct {
		name   string
		loader loader.FileLoader
	}{
		{"config.toml", loader.NewTOMLLoader("")},
		{"config.yaml", loader.NewYAMLLoader("")},
		{"config.yml", loader.NewYAMLLoader("")},
	}

	for _, cand := range candidates {
		path := filepath.Join(c.configDir, cand.name)
		data, err := cand.loader.LoadFrom(path)
		if err != nil {
			return err
		}
		if data == nil {
			continue
		}

		l := layer.NewLayer(layer.SourceUser, data)
		l.Path = path
		c.layers.AddLayer(l)
		c.loadedFile = path
		return nil
	}

	return nil
}

// loadEnvironment loads configuration from environment variables.
func (c *Config) loadEnvironment() error {
	if c.envPrefix == "" {
		return nil
	}

	envLoader := loader.NewEnvLoader(c.envPrefix)
	data, err := envLoader.Load()
	if err != nil {
		return err
	}

	if len(data) > 0 {
		c.layers.AddLayer(layer.NewLayer(layer.SourceEnv, data))
	}

	return nil
}

// DefaultConfigDir returns the user configuration directory:
// $PEEK_CONFIG_DIR, else $XDG_CONFIG_HOME/peek, else ~/.config/peek.
func DefaultConfigDir() string {
	if dir := os.Getenv("PEEK_CONFIG_DIR"); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "peek")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "peek")
}

// defaultConfig returns the default configuration values.
func defaultConfig() map[string]any {
	return map[string]any{
		"editor": map[string]any{
			"tabSize": DefaultTabSize,
		},
		"logging": map[string]any{
			"level": DefaultLogLevel,
			"file":  "",
		},
		"files": map[string]any{
			"follow": false,
		},
	}
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case string:
		return "string"
	case int, int64, uint64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case []any:
		return "[]any"
	case map[string]any:
		return "map"
	default:
		return "unknown"
	}
}
