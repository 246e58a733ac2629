package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"cutsort/internal/config"
	"cutsort/internal/logging"
	"cutsort/internal/workflow"
)

type commandContext struct {
	configFlag   *string
	modelFlag    *string
	logLevelFlag *string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
}

func newCommandContext(configFlag, modelFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		modelFlag:    modelFlag,
		logLevelFlag: logLevelFlag,
	}
}

func flagValue(flag *string) string {
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(*flag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(flagValue(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.Override(flagValue(c.modelFlag), flagValue(c.logLevelFlag)); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configExists = exists
	})
	return c.config, c.configErr
}

// withManager builds the logger and workflow manager for one command.
// Log lines go to stderr so tables and summaries on stdout stay clean.
func (c *commandContext) withManager(cmd *cobra.Command, fn func(*config.Config, *workflow.Manager) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, closer, err := logging.New(logging.Options{
		Level:    cfg.Logging.Level,
		Format:   cfg.Logging.Format,
		Writer:   cmd.ErrOrStderr(),
		FilePath: logging.LogFilePath(cfg.Paths.LogDir, time.Now()),
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closer.Close()

	mgr, err := workflow.NewManager(cfg, logger)
	if err != nil {
		return err
	}
	return fn(cfg, mgr)
}

// relPath shortens paths under base for display.
func relPath(base, path string) string {
	if base == "" || path == "" {
		return path
	}
	rel, err := filepath.Rel(base, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
