package logger

/*
File-based configuration. A Config mirrors the four Init parameters in plain
string form so it can live in a JSON or YAML file next to the application's
other settings. Parsing goes through koanf with the rawbytes provider; the
format is detected from the file extension (.json, .yaml, .yml).
*/

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Config carries the logger settings in file-friendly form. Zero values fall
// back to the defaults noted on each field.
type Config struct {
	Level     string `koanf:"level" json:"level" yaml:"level"`             // "debug" (default), "info", "warn", "error"
	Directory string `koanf:"directory" json:"directory" yaml:"directory"` // base path for output files, "" = current directory
	Prefix    string `koanf:"prefix" json:"prefix" yaml:"prefix"`          // base name of output files, required
	Rotation  string `koanf:"rotation" json:"rotation" yaml:"rotation"`    // "minutely", "hourly", "daily", "never" (default)
}

// levelByName maps the accepted (lowercase) level names.
var levelByName = map[string]LogLevel{
	"debug": LVL_DEBUG,
	"info":  LVL_INFO,
	"warn":  LVL_WARN,
	"error": LVL_ERROR,
}

// rotationByName maps the accepted (lowercase) rotation kind names.
var rotationByName = map[string]RotationKind{
	"minutely": ROTATE_MINUTELY,
	"hourly":   ROTATE_HOURLY,
	"daily":    ROTATE_DAILY,
	"never":    ROTATE_NEVER,
}

// ParseLevel converts a level name to its LogLevel. Matching is
// case-insensitive; the empty string maps to DEFAULT_LOG_LEVEL.
func ParseLevel(s string) (LogLevel, error) {
	if s == "" {
		return DEFAULT_LOG_LEVEL, nil
	}
	if level, found := levelByName[strings.ToLower(s)]; found {
		return level, nil
	}
	return DEFAULT_LOG_LEVEL, fmt.Errorf("%s: %q", _ERROR_MESSAGE_BAD_LEVEL, s)
}

// ParseRotation converts a rotation kind name to its RotationKind. Matching
// is case-insensitive; the empty string maps to DEFAULT_ROTATION.
func ParseRotation(s string) (RotationKind, error) {
	if s == "" {
		return DEFAULT_ROTATION, nil
	}
	if kind, found := rotationByName[strings.ToLower(s)]; found {
		return kind, nil
	}
	return DEFAULT_ROTATION, fmt.Errorf("%s: %q", _ERROR_MESSAGE_BAD_ROTATION, s)
}

// ParseConfig decodes a Config from raw bytes in the given format ("json",
// "yaml" or "yml").
func ParseConfig(data []byte, format string) (*Config, error) {
	var parser koanf.Parser
	switch strings.ToLower(format) {
	case "json":
		parser = kjson.Parser()
	case "yaml", "yml":
		parser = kyaml.Parser()
	default:
		return nil, fmt.Errorf("%s: %q", _ERROR_MESSAGE_BAD_FORMAT, format)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := new(Config)
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and decodes a Config file, detecting the format from the
// file extension.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New(_ERROR_MESSAGE_EMPTY_PATH)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data, strings.TrimPrefix(filepath.Ext(path), "."))
}

// InitFromConfig is Init driven by a Config: names are parsed, defaults
// applied, and the logger (re)started with the result.
func (l *Logger) InitFromConfig(cfg *Config) error {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	rotation, err := ParseRotation(cfg.Rotation)
	if err != nil {
		return err
	}
	return l.Init(level, cfg.Directory, cfg.Prefix, rotation)
}
