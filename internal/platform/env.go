package platform

import (
	"log/slog"
	"os"
	"time"
)

// OrDefault returns the result of looking up an env var; if the value is
// empty, the default is returned.
func OrDefault(log *slog.Logger, env, def string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	log.Debug("env var not set, using default", "env", env, "default", def)
	return def
}

// DurationDefault returns the result of looking up an env var parsed as a
// duration; unset or unparsable values fall back to the default.
func DurationDefault(log *slog.Logger, env, def string) time.Duration {
	orDefault := OrDefault(log, env, def)
	d, err := time.ParseDuration(orDefault)
	if err != nil {
		log.Warn("error parsing duration, using default", "env", env, "value", orDefault, "error", err)
		d, _ = time.ParseDuration(def)
	}
	return d
}
