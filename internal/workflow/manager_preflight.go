package workflow

import (
	"context"

	"cutsort/internal/logging"
	"cutsort/internal/preflight"
)

// runPreflightChecks validates the workspace before files are touched.
// Returns nil when all required checks pass.
func (m *Manager) runPreflightChecks(ctx context.Context) error {
	results := preflight.RunAll(ctx, m.cfg)
	for _, r := range results {
		switch {
		case r.Passed:
			m.logger.DebugContext(ctx, "preflight check passed",
				logging.String("check", r.Name),
				logging.String("detail", r.Detail),
				logging.String(logging.FieldEventType, "preflight_passed"),
			)
		case r.Advisory:
			logging.WarnWithContext(ctx, m.logger, "preflight check reported a problem", "preflight_advisory",
				logging.String("check", r.Name),
				logging.String("detail", r.Detail),
				logging.String(logging.FieldImpact, "affected files will be reported as failures"),
			)
		default:
			logging.ErrorWithContext(ctx, m.logger, "preflight check failed", "preflight_failed",
				logging.String("check", r.Name),
				logging.String("detail", r.Detail),
				logging.String(logging.FieldErrorHint, "fix the reported issue and run again"),
			)
		}
	}
	return preflight.Err(results)
}
