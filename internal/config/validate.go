package config

import (
	"fmt"
	"path/filepath"

	"cutsort/internal/category"
	"cutsort/internal/failure"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateCutList(); err != nil {
		return err
	}
	if err := c.validateProduct(); err != nil {
		return err
	}
	if err := c.validateRun(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", failure.ErrConfiguration, fmt.Sprintf(format, args...))
}

func (c *Config) validatePaths() error {
	if c.Paths.WorkspaceDir == "" {
		return invalid("paths.workspace_dir must be set")
	}
	if c.Paths.BackupDir == "" {
		return invalid("paths.backup_dir must be set")
	}
	if within(c.Paths.WorkspaceDir, c.Paths.BackupDir) || within(c.Paths.BackupDir, c.Paths.WorkspaceDir) {
		return invalid("paths.backup_dir and paths.workspace_dir must not contain each other")
	}
	// Restore and snapshot replace these trees wholesale; the run lock and
	// journal must survive that.
	for _, tree := range []struct{ key, dir string }{
		{"paths.workspace_dir", c.Paths.WorkspaceDir},
		{"paths.backup_dir", c.Paths.BackupDir},
	} {
		if c.Paths.LogDir != "" && within(tree.dir, c.Paths.LogDir) {
			return invalid("paths.log_dir must not be inside %s", tree.key)
		}
		if c.Journal.Enabled && c.Journal.Path != "" && within(tree.dir, c.Journal.Path) {
			return invalid("journal.path must not be inside %s", tree.key)
		}
	}
	return nil
}

func within(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !startsWithParent(rel))
}

func startsWithParent(rel string) bool {
	return len(rel) >= 3 && rel[:3] == ".."+string(filepath.Separator)
}

func (c *Config) validateCutList() error {
	if c.CutList.HeightLabel == "" || c.CutList.WidthLabel == "" || c.CutList.PiecesLabel == "" {
		return invalid("cutlist labels must not be empty")
	}
	if c.CutList.HeightLabel == c.CutList.WidthLabel {
		return invalid("cutlist.height_label and cutlist.width_label must differ")
	}
	if c.CutList.HeaderLines < 0 {
		return invalid("cutlist.header_lines must be >= 0")
	}
	return nil
}

func (c *Config) validateProduct() error {
	if c.Product.TableFile != "" {
		return nil
	}
	if _, err := category.ByName(c.Product.Model); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateRun() error {
	switch c.Run.OnError {
	case OnErrorAbort, OnErrorContinue:
	default:
		return invalid("run.on_error must be %q or %q, got %q", OnErrorAbort, OnErrorContinue, c.Run.OnError)
	}
	switch c.Run.Rename {
	case RenameNone, RenameIndex, RenameDimension:
	default:
		return invalid("run.rename must be one of %q, %q, %q, got %q", RenameNone, RenameIndex, RenameDimension, c.Run.Rename)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return invalid("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}
