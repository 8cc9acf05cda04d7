// Package config loads keyscreen settings.
//
// Settings resolve in layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment (KEYSCREEN_)│
//	├─────────────────────────────┤
//	│  2. Config File             │  ← $XDG_CONFIG_HOME/keyscreen/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// A missing config file is not an error. Nothing is reloaded at runtime.
//
// # Usage
//
//	cfg, err := config.Load(config.LoadOptions{
//	    Path:      flagConfig,
//	    Overrides: map[string]any{"display.fps": 30},
//	})
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
