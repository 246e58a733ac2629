package config

import "cutsort/internal/cutlist"

const (
	defaultWorkspaceDir     = "~/cutsort/active"
	defaultBackupDir        = "~/cutsort/backup"
	defaultLogDir           = "~/.local/share/cutsort/logs"
	defaultModel            = "CM06"
	defaultHeaderLines      = 7
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultLogRetentionDays = 30
	defaultJournalFile      = "journal.db"
	defaultLockFile         = "cutsort.lock"
)

// Error policies for run.on_error.
const (
	OnErrorAbort    = "abort"
	OnErrorContinue = "continue"
)

// Rename modes for run.rename.
const (
	RenameNone      = "none"
	RenameIndex     = "index"
	RenameDimension = "dimension"
)

// Default returns a Config populated with repository defaults. The product
// model is left empty so normalization can apply the environment fallback.
func Default() Config {
	return Config{
		Paths: Paths{
			WorkspaceDir: defaultWorkspaceDir,
			BackupDir:    defaultBackupDir,
			LogDir:       defaultLogDir,
		},
		CutList: CutList{
			HeightLabel: cutlist.DefaultHeightLabel,
			WidthLabel:  cutlist.DefaultWidthLabel,
			PiecesLabel: cutlist.DefaultPiecesLabel,
			HeaderLines: defaultHeaderLines,
		},
		Run: Run{
			RestoreFromBackup: true,
			OnError:           OnErrorAbort,
			Rename:            RenameNone,
			Merge:             true,
		},
		Journal: Journal{
			Enabled: true,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
