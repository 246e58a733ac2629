package testsupport

import (
	"path/filepath"
	"testing"

	"cutsort/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The workspace skeleton (root, destination, default) is created.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.WorkspaceDir = filepath.Join(base, "active")
	cfgVal.Paths.BackupDir = filepath.Join(base, "backup")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Product.Model = "CM06"
	cfgVal.Journal.Path = filepath.Join(base, "logs", "journal.db")
	cfgVal.Run.RestoreFromBackup = false

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	if err := builder.cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return builder.cfg
}

// WithModel selects a built-in product table.
func WithModel(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Product.Model = name
	}
}

// WithOnError sets the run error policy.
func WithOnError(policy string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Run.OnError = policy
	}
}

// WithRename sets the rename mode.
func WithRename(mode string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Run.Rename = mode
	}
}

// WithRestore enables restoring the workspace from the backup tree.
func WithRestore() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Run.RestoreFromBackup = true
	}
}

// WithoutJournal disables the SQLite journal.
func WithoutJournal() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Journal.Enabled = false
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.WorkspaceDir)
}

// SourceFolder returns <workspace>/root/<folder>.
func SourceFolder(cfg *config.Config, folder string) string {
	return filepath.Join(cfg.RootDir(), folder)
}
