//go:build !easeldebug

package check

import "log/slog"

// Precondition reports a contract violation. Release builds only log it; the
// caller is expected to drop the offending operation.
func Precondition(ok bool, msg string, args ...any) bool {
	if !ok {
		slog.Warn("Precondition violated: "+msg, args...)
	}
	return ok
}
