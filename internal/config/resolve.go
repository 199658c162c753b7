package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

var (
	ErrMissingArgument  = errors.New("missing target directory")
	ErrInvalidDirectory = errors.New("not an existing directory")
	ErrInvalidInteger   = errors.New("not a non-negative integer")
	ErrInvalidSetting   = errors.New("invalid setting")
)

var digitsPattern = regexp.MustCompile(`^[0-9]+$`)

// Resolve turns the positional arguments <targetDir> [deletionDays] [archiveDays]
// into a Config and applies s on top. Checks run in argument order and the
// first failure is returned; nothing on disk is touched.
func Resolve(args []string, s Settings) (Config, error) {
	cfg, err := ResolveArgs(args)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Apply(s); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ResolveArgs validates the positional arguments only. Empty optional
// arguments take their defaults. The target is stored with symlinks
// resolved so every sweep walks the same real directory.
func ResolveArgs(args []string) (Config, error) {
	target := arg(args, 0)
	if target == "" {
		return Config{}, ErrMissingArgument
	}

	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidDirectory, target)
	}
	resolved, err := filepath.EvalSymlinks(target)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidDirectory, target, err)
	}

	deletion, err := parseDays(arg(args, 1), DefaultDeletionDays)
	if err != nil {
		return Config{}, fmt.Errorf("deletion days %w", err)
	}

	archive, err := parseDays(arg(args, 2), DefaultArchiveDays)
	if err != nil {
		return Config{}, fmt.Errorf("archive days %w", err)
	}

	cfg := Config{
		TargetDir:    resolved,
		DeletionDays: deletion,
		ArchiveDays:  archive,
	}
	d := DefaultSettings()
	cfg.OnConflict = d.Archive.OnConflict
	cfg.Logging = d.Logging
	return cfg, nil
}

// Apply validates s and copies it into c.
func (c *Config) Apply(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.OnConflict = s.Archive.OnConflict
	c.DryRun = s.DryRun
	c.Strict = s.Strict
	c.Logging = s.Logging
	return nil
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// parseDays accepts digits only: no sign, no decimal point.
func parseDays(v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	if !digitsPattern.MatchString(v) {
		return 0, fmt.Errorf("%q: %w", v, ErrInvalidInteger)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		// only overflow gets here
		return 0, fmt.Errorf("%q: %w", v, ErrInvalidInteger)
	}
	return n, nil
}
