package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upper = cases.Upper(language.Und)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeCutList()
	if err := c.normalizeProduct(); err != nil {
		return err
	}
	c.normalizeRun()
	if err := c.normalizeJournal(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.WorkspaceDir, err = expandPath(c.Paths.WorkspaceDir); err != nil {
		return fmt.Errorf("paths.workspace_dir: %w", err)
	}
	if c.Paths.BackupDir, err = expandPath(c.Paths.BackupDir); err != nil {
		return fmt.Errorf("paths.backup_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

// Labels keep their trailing " :=" but lose surrounding whitespace so a
// sloppy TOML value still matches the CAM output.
func (c *Config) normalizeCutList() {
	c.CutList.HeightLabel = strings.TrimSpace(c.CutList.HeightLabel)
	c.CutList.WidthLabel = strings.TrimSpace(c.CutList.WidthLabel)
	c.CutList.PiecesLabel = strings.TrimSpace(c.CutList.PiecesLabel)
}

func (c *Config) normalizeProduct() error {
	c.Product.Model = strings.TrimSpace(c.Product.Model)
	if c.Product.Model == "" {
		if value, ok := os.LookupEnv("CUTSORT_MODEL"); ok {
			c.Product.Model = strings.TrimSpace(value)
		}
	}
	if c.Product.Model == "" {
		c.Product.Model = defaultModel
	}
	c.Product.Model = upper.String(c.Product.Model)

	var err error
	if c.Product.TableFile, err = expandPath(strings.TrimSpace(c.Product.TableFile)); err != nil {
		return fmt.Errorf("product.table_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeRun() {
	c.Run.OnError = strings.ToLower(strings.TrimSpace(c.Run.OnError))
	if c.Run.OnError == "" {
		c.Run.OnError = OnErrorAbort
	}
	c.Run.Rename = strings.ToLower(strings.TrimSpace(c.Run.Rename))
	if c.Run.Rename == "" {
		c.Run.Rename = RenameNone
	}
}

func (c *Config) normalizeJournal() error {
	if strings.TrimSpace(c.Journal.Path) == "" {
		c.Journal.Path = filepath.Join(c.Paths.LogDir, defaultJournalFile)
		return nil
	}
	var err error
	if c.Journal.Path, err = expandPath(c.Journal.Path); err != nil {
		return fmt.Errorf("journal.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.RetentionDays < 0 {
		c.Logging.RetentionDays = 0
	}
}
