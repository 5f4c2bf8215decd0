// Package config provides the configuration system for Peek.
//
// The config package loads, merges and provides typed access to the viewer
// settings.
//
// # Architecture
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← PEEK_* (highest priority)
//	├─────────────────────────────┤
//	│  2. User Settings           │  ← ~/.config/peek/config.toml or config.yaml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Sub-packages
//
//   - loader: Configuration file loading (TOML, YAML, environment variables)
//   - layer: Layer management and merging
//
// # Basic Usage
//
//	cfg := config.New()
//	if err := cfg.Load(ctx); err != nil {
//	    return err
//	}
//	tabSize := cfg.Editor().TabSize
//
// The command line never sets configuration.
package config
