package blackfriday

import "go.uber.org/zap"

func zapErr(err error) zap.Field {
	return zap.Error(err)
}

// log is the package-level structured logger. It defaults to a no-op
// logger so library consumers who never call SetLogger pay nothing;
// CLI and test code can swap in a real zap logger via SetLogger.
var log = zap.NewNop()

// SetLogger installs l as the package-wide logger. Passing nil restores
// the no-op default. This mirrors the single-package-logger pattern
// used for structured logging elsewhere in the example pack.
func SetLogger(l *zap.Logger) {
	if l == nil {
		log = zap.NewNop()
		return
	}
	log = l
}
