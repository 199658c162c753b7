package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the settings file when --config is not given.
const EnvConfigPath = "DIRSWEEP_CONFIG"

// matches $(VAR_NAME)
var envPattern = regexp.MustCompile(`\$\(([A-Za-z0-9_]+)\)`)

// replaces $(VAR) with os.Getenv(VAR)
func expandEnvVars(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(m string) string {
		return os.Getenv(envPattern.FindStringSubmatch(m)[1])
	})
}

// Load reads a YAML settings file on top of DefaultSettings. An empty path
// falls back to $DIRSWEEP_CONFIG; if that is empty too, defaults are returned.
func Load(path string) (Settings, error) {
	s := DefaultSettings()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		return s, nil
	}

	// read raw YAML file
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("reading config file: %w", err)
	}

	// expand $(ENV_VAR) placeholders
	expanded := expandEnvVars(string(data))

	// unmarshal over the defaults
	if err := yaml.Unmarshal([]byte(expanded), &s); err != nil {
		return s, fmt.Errorf("unmarshalling yaml: %w", err)
	}

	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate normalises and checks enumerated settings.
func (s *Settings) Validate() error {
	s.Logging.Level = strings.ToLower(s.Logging.Level)
	s.Logging.Format = strings.ToLower(s.Logging.Format)
	s.Archive.OnConflict = strings.ToLower(s.Archive.OnConflict)

	switch s.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q must be debug, info, warn or error", ErrInvalidSetting, s.Logging.Level)
	}

	switch s.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q must be text or json", ErrInvalidSetting, s.Logging.Format)
	}

	switch s.Archive.OnConflict {
	case ConflictRename, ConflictOverwrite, ConflictSkip:
	default:
		return fmt.Errorf("%w: onConflict %q must be rename, overwrite or skip", ErrInvalidSetting, s.Archive.OnConflict)
	}

	return nil
}
