package loader

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Kind is the value type a config path expects from the environment.
type Kind int

const (
	// KindAuto guesses with ParseValue.
	KindAuto Kind = iota
	// KindString keeps the raw text.
	KindString
	// KindInt requires a base-10 integer.
	KindInt
	// KindBool requires a boolean word or 0/1.
	KindBool
)

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "KEYSCREEN_")
	mapping map[string]string // Env var -> config path
	kinds   map[string]Kind   // Config path -> expected kind
	environ func() []string
}

// NewEnvLoader creates an environment loader with the default mapping.
// The prefix should include the trailing underscore (e.g., "KEYSCREEN_").
func NewEnvLoader(prefix string) *EnvLoader {
	return NewEnvLoaderWithMapping(prefix, defaultEnvMapping(prefix))
}

// NewEnvLoaderWithMapping creates a loader with custom mappings.
func NewEnvLoaderWithMapping(prefix string, mapping map[string]string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: mapping,
		kinds:   defaultEnvKinds(),
		environ: os.Environ,
	}
}

// defaultEnvMapping returns the documented variables.
func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "PROFILE":                "profile",
		prefix + "INPUT_SOURCE":           "input.source",
		prefix + "INPUT_DEVICE":           "input.device",
		prefix + "INPUT_REPLAY_FILE":      "input.replay_file",
		prefix + "INPUT_LOOP":             "input.loop",
		prefix + "DISPLAY_FPS":            "display.fps",
		prefix + "DISPLAY_LETTER_SPACING": "display.letter_spacing",
		prefix + "DISPLAY_HEADLESS":       "display.headless",
		prefix + "THEME_TEXT":             "theme.text",
		prefix + "THEME_INACTIVE":         "theme.inactive",
		prefix + "THEME_BACKGROUND":       "theme.background",
		prefix + "LOG_LEVEL":              "log.level",
		prefix + "LOG_FILE":               "log.file",
	}
}

// defaultEnvKinds types every documented path so a string setting that
// looks like a number stays a string.
func defaultEnvKinds() map[string]Kind {
	return map[string]Kind{
		"profile":                KindString,
		"input.source":           KindString,
		"input.device":           KindString,
		"input.replay_file":      KindString,
		"input.loop":             KindBool,
		"display.fps":            KindInt,
		"display.letter_spacing": KindInt,
		"display.headless":       KindBool,
		"theme.text":             KindString,
		"theme.inactive":         KindString,
		"theme.background":       KindString,
		"log.level":              KindString,
		"log.file":               KindString,
	}
}

// Load reads mapped environment variables. Variables with the prefix but
// no mapping are converted with EnvToPath.
// Empty values are kept; they are set, not unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		path, mapped := l.mapping[name]
		if !mapped {
			path = l.EnvToPath(name)
		}
		if path == "" {
			continue
		}
		v, err := ParseValueAs(value, l.kinds[path])
		if err != nil {
			return nil, fmt.Errorf("environment %s: %w", name, err)
		}
		SetByPath(config, path, v)
	}

	return config, nil
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	if l.mapping == nil {
		l.mapping = make(map[string]string)
	}
	l.mapping[envVar] = configPath
}

// SetKind sets the expected kind for a config path.
func (l *EnvLoader) SetKind(configPath string, kind Kind) {
	if l.kinds == nil {
		l.kinds = make(map[string]Kind)
	}
	l.kinds[configPath] = kind
}

// EnvToPath converts KEYSCREEN_DISPLAY_LETTER_SPACING to
// display.letter_spacing: the first word is the section, the rest is the
// snake_case key.
func (l *EnvLoader) EnvToPath(env string) string {
	name := strings.ToLower(strings.TrimPrefix(env, l.prefix))
	if name == "" {
		return ""
	}
	section, rest, ok := strings.Cut(name, "_")
	if !ok {
		return section
	}
	return section + "." + rest
}

// ParseValue converts an environment string into a bool, an int64 or
// leaves it a string. "0" and "1" stay numbers.
func ParseValue(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return s
}

// ParseValueAs converts s to the given kind. KindAuto defers to ParseValue.
func ParseValueAs(s string, kind Kind) (any, error) {
	switch kind {
	case KindString:
		return s, nil
	case KindInt:
		i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", s)
		}
		return i, nil
	case KindBool:
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "yes", "on", "1":
			return true, nil
		case "false", "no", "off", "0":
			return false, nil
		}
		return nil, fmt.Errorf("invalid boolean %q", s)
	default:
		return ParseValue(s), nil
	}
}
