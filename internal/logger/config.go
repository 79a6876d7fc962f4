package logger

import (
	"io"
	"log/slog"
	"strings"
)

// Config picks the slog handler and the attributes stamped on every record.
type Config struct {
	Level       string // debug, info, warn or error
	Format      string // json or text
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

// LogLevel parses Level the way slog does, plus the "warning" alias.
// Anything unparseable logs at info.
func (c Config) LogLevel() slog.Level {
	name := strings.TrimSpace(c.Level)
	if strings.EqualFold(name, levelWarningAlias) {
		return slog.LevelWarn
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func (c Config) handler(opts *slog.HandlerOptions, w io.Writer) slog.Handler {
	if strings.EqualFold(c.Format, LogFormatJSON) {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func (c Config) baseAttrs() []slog.Attr {
	attrs := make([]slog.Attr, 0, 3)
	for _, a := range [...]slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	} {
		if a.Value.String() != "" {
			attrs = append(attrs, a)
		}
	}
	return attrs
}

// IsDevEnvironment reports whether env names a development deployment.
func IsDevEnvironment(env string) bool {
	switch strings.ToLower(env) {
	case EnvironmentDev, EnvironmentDevelopment:
		return true
	}
	return false
}
