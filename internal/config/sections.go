package config

// Section accessor methods return snapshot structs. Mutating the returned
// struct does not modify the underlying configuration.

// Defaults for the typed sections.
const (
	DefaultTabSize  = 4
	MaxTabSize      = 16
	DefaultLogLevel = "info"
)

// EditorConfig provides type-safe access to editor settings.
type EditorConfig struct {
	// TabSize is the distance between tab stops. Values below 1 fall back
	// to DefaultTabSize and values above MaxTabSize are clamped.
	TabSize int
}

// LoggingConfig provides type-safe access to logging settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string

	// File is where log lines go. Empty disables logging.
	File string
}

// FilesConfig provides type-safe access to file handling settings.
type FilesConfig struct {
	// Follow reloads the viewed file when it changes on disk.
	Follow bool
}

// Editor returns the editor configuration section.
func (c *Config) Editor() EditorConfig {
	tabSize := c.getIntOr("editor.tabSize", DefaultTabSize)
	if tabSize < 1 {
		c.recordConfigError("editor.tabSize", &ValueError{Path: "editor.tabSize", Value: tabSize, Msg: "must be at least 1"})
		tabSize = DefaultTabSize
	}
	if tabSize > MaxTabSize {
		c.recordConfigError("editor.tabSize", &ValueError{Path: "editor.tabSize", Value: tabSize, Msg: "must be at most 16"})
		tabSize = MaxTabSize
	}
	return EditorConfig{TabSize: tabSize}
}

// Logging returns the logging configuration section.
func (c *Config) Logging() LoggingConfig {
	level := c.getStringOr("logging.level", DefaultLogLevel)
	switch level {
	case "debug", "info", "warn", "error":
	default:
		c.recordConfigError("logging.level", &ValueError{Path: "logging.level", Value: level, Msg: "want debug, info, warn or error"})
		level = DefaultLogLevel
	}
	return LoggingConfig{
		Level: level,
		File:  c.getStringOr("logging.file", ""),
	}
}

// Files returns the files configuration section.
func (c *Config) Files() FilesConfig {
	return FilesConfig{
		Follow: c.getBoolOr("files.follow", false),
	}
}

// These methods only return the default for ErrSettingNotFound silently.
// Type errors are recorded and return the default to avoid breaking callers,
// but indicate a configuration problem that should be fixed.

func (c *Config) getStringOr(path string, defaultValue string) string {
	v, err := c.GetString(path)
	if err != nil {
		if err != ErrSettingNotFound {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

func (c *Config) getIntOr(path string, defaultValue int) int {
	v, err := c.GetInt(path)
	if err != nil {
		if err != ErrSettingNotFound {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

func (c *Config) getBoolOr(path string, defaultValue bool) bool {
	v, err := c.GetBool(path)
	if err != nil {
		if err != ErrSettingNotFound {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

// recordConfigError stores configuration errors for later retrieval.
// Only the first error for each path is recorded to preserve the original cause.
func (c *Config) recordConfigError(path string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.configErrors == nil {
		c.configErrors = make(map[string]error)
	}
	if _, exists := c.configErrors[path]; !exists {
		c.configErrors[path] = err
	}
}

// ConfigErrors returns any configuration errors encountered during access.
// This allows callers to check for misconfigurations after loading.
func (c *Config) ConfigErrors() map[string]error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.configErrors == nil {
		return nil
	}
	result := make(map[string]error, len(c.configErrors))
	for k, v := range c.configErrors {
		result[k] = v
	}
	return result
}
