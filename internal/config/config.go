// Package config resolves the typed run configuration for dirsweep from
// positional arguments, an optional YAML settings file and command flags.
package config

import "path/filepath"

const (
	DefaultDeletionDays = 60
	DefaultArchiveDays  = 7

	// ArchiveSubdir is the fixed relocation directory inside the target.
	ArchiveSubdir = "archive"
)

// Conflict policies for moving a file onto an existing archive entry.
const (
	ConflictRename    = "rename"
	ConflictOverwrite = "overwrite"
	ConflictSkip      = "skip"
)

// Config is the validated input of a single run.
type Config struct {
	TargetDir    string
	DeletionDays int
	ArchiveDays  int
	OnConflict   string
	DryRun       bool
	Strict       bool
	Logging      LoggingConfig
}

// ArchiveDir returns <TargetDir>/archive.
func (c Config) ArchiveDir() string {
	return filepath.Join(c.TargetDir, ArchiveSubdir)
}

// Settings is the optional YAML settings file. Every field is optional; the
// zero value means "use the default".
type Settings struct {
	Logging LoggingConfig  `yaml:"logging"`
	Archive ArchiveSetting `yaml:"archive"`
	Strict  bool           `yaml:"strict"`
	DryRun  bool           `yaml:"dryRun"`
}

type ArchiveSetting struct {
	OnConflict string `yaml:"onConflict"` // "rename", "overwrite", "skip"
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json", "text"
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() Settings {
	return Settings{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Archive: ArchiveSetting{OnConflict: ConflictRename},
	}
}
