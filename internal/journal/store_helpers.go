package journal

import (
	"database/sql"
	"time"
)

func scanRun(scanner interface{ Scan(dest ...any) error }) (*Run, error) {
	var (
		run          Run
		model        sql.NullString
		status       string
		startedRaw   string
		finishedRaw  sql.NullString
		errorKind    sql.NullString
		errorMessage sql.NullString
	)
	if err := scanner.Scan(
		&run.ID,
		&run.Command,
		&model,
		&status,
		&startedRaw,
		&finishedRaw,
		&run.Counts.Moved,
		&run.Counts.Fallback,
		&run.Counts.Failed,
		&run.Counts.MergedGroups,
		&run.Counts.RemovedFiles,
		&run.Counts.Renamed,
		&errorKind,
		&errorMessage,
	); err != nil {
		return nil, err
	}
	run.Model = model.String
	run.Status = Status(status)
	run.StartedAt = parseTime(startedRaw)
	if finishedRaw.Valid {
		run.FinishedAt = parseTime(finishedRaw.String)
	}
	run.ErrorKind = errorKind.String
	run.ErrorMessage = errorMessage.String
	return &run, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

// timeLayout is fixed width so text ordering in SQL matches time ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string { return t.UTC().Format(timeLayout) }

func parseTime(raw string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
