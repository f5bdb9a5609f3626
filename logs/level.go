package logs

import (
	"log/slog"
	"strings"

	"github.com/xyproto/env/v2"
)

// level is shared by every Logger. It starts from ZEN_LOG_LEVEL and is
// overridden by the -log-* flags.
var level = func() *slog.LevelVar {
	ret := new(slog.LevelVar)
	if l, ok := parseLevel(env.Str("ZEN_LOG_LEVEL")); ok {
		ret.Set(l)
	}
	return ret
}()

func parseLevel(str string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return 0, false
}
