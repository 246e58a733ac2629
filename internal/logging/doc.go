// Package logging assembles structured slog loggers and formatting helpers used
// across cutsort.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and tags records with the run identifier and workflow phase
// carried on the context. A no-op logger is provided for tests and wiring code
// that cannot fail.
package logging
