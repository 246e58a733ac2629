package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"cutsort/internal/category"
	"cutsort/internal/cutlist"
	"cutsort/internal/failure"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains the working tree, backup tree and log locations.
type Paths struct {
	WorkspaceDir string `toml:"workspace_dir"`
	BackupDir    string `toml:"backup_dir"`
	LogDir       string `toml:"log_dir"`
}

// CutList describes how numeric fields are located in a cut-list file.
type CutList struct {
	HeightLabel string `toml:"height_label"`
	WidthLabel  string `toml:"width_label"`
	PiecesLabel string `toml:"pieces_label"`
	// HeaderLines is the number of leading lines ignored when comparing
	// files for duplicates.
	HeaderLines int `toml:"header_lines"`
}

// Product selects the folder-to-category table.
type Product struct {
	Model string `toml:"model"`
	// TableFile points at a custom TOML table; it takes precedence over Model.
	TableFile string `toml:"table_file"`
}

// Run contains the workflow policy.
type Run struct {
	RestoreFromBackup bool   `toml:"restore_from_backup"`
	OnError           string `toml:"on_error"`
	Rename            string `toml:"rename"`
	Merge             bool   `toml:"merge"`
}

// Journal controls the SQLite run journal.
type Journal struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"` // Default: <log_dir>/journal.db
}

// Logging contains configuration for log output.
type Logging struct {
	Format        string `toml:"format"`
	Level         string `toml:"level"`
	RetentionDays int    `toml:"retention_days"`
}

// Config encapsulates all configuration values for cutsort.
//
// Configuration sections:
//   - Paths: workspace, backup and log directories
//   - CutList: field labels and the duplicate header length
//   - Product: product model or custom category table
//   - Run: restore, error policy, merge and rename behaviour
//   - Journal: SQLite run history
//   - Logging: log format, level, and retention
type Config struct {
	Paths   Paths   `toml:"paths"`
	CutList CutList `toml:"cutlist"`
	Product Product `toml:"product"`
	Run     Run     `toml:"run"`
	Journal Journal `toml:"journal"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/cutsort/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("%w: parse config %s: %w", failure.ErrConfiguration, resolvedPath, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("cutsort.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the log directory and the workspace skeleton.
// The backup directory is left alone; restoring from a missing backup is an
// error the workflow reports itself.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.LogDir, c.RootDir(), c.DestinationDir(), c.DefaultDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return failure.Wrap(failure.ErrFilesystem, "config", "mkdir", dir, err)
		}
	}
	if c.Journal.Enabled {
		if err := os.MkdirAll(filepath.Dir(c.Journal.Path), 0o755); err != nil {
			return failure.Wrap(failure.ErrFilesystem, "config", "mkdir", "journal directory", err)
		}
	}
	return nil
}

// RootDir is the input tree holding one folder per category table entry.
func (c *Config) RootDir() string { return filepath.Join(c.Paths.WorkspaceDir, "root") }

// DestinationDir is the root of the resolved destination hierarchy.
func (c *Config) DestinationDir() string {
	return filepath.Join(c.Paths.WorkspaceDir, "destination")
}

// DefaultDir receives files no routing rule claims.
func (c *Config) DefaultDir() string { return filepath.Join(c.Paths.WorkspaceDir, "default") }

// LockPath is the run lock file.
func (c *Config) LockPath() string { return filepath.Join(c.Paths.LogDir, defaultLockFile) }

// Labels returns the configured cut-list field labels.
func (c *Config) Labels() cutlist.Labels {
	return cutlist.Labels{
		Height: c.CutList.HeightLabel,
		Width:  c.CutList.WidthLabel,
		Pieces: c.CutList.PiecesLabel,
	}
}

// Override applies command-line selections on top of the loaded file and
// re-validates. Empty values leave the file setting alone. A model override
// replaces any custom table file.
func (c *Config) Override(model, logLevel string) error {
	if model = strings.TrimSpace(model); model != "" {
		c.Product.Model = upper.String(model)
		c.Product.TableFile = ""
	}
	if logLevel = strings.TrimSpace(logLevel); logLevel != "" {
		c.Logging.Level = strings.ToLower(logLevel)
	}
	return c.Validate()
}

// ContinueOnError reports whether per-file failures are recorded and skipped.
func (c *Config) ContinueOnError() bool { return c.Run.OnError == OnErrorContinue }

// ProductModel returns the category table selected by the product section.
func (c *Config) ProductModel() (*category.Model, error) {
	if c.Product.TableFile != "" {
		return category.LoadTable(c.Product.TableFile)
	}
	return category.ByName(c.Product.Model)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
// An existing file is never overwritten.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	if _, err := file.WriteString(sampleConfig); err != nil {
		_ = file.Close()
		return fmt.Errorf("write sample config: %w", err)
	}
	return file.Close()
}
