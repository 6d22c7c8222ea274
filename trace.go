package genschema

import "log/slog"

// SlogTrace builds a Trace that logs one Debug record per comparator
// application attempt through logger, for callers who want structured
// output without writing their own collector. The core itself never logs;
// see WithTrace.
func SlogTrace(logger *slog.Logger) Trace {
	if logger == nil {
		logger = slog.Default()
	}
	return func(path, comparator, decision string) {
		logger.Debug("comparator",
			slog.String("path", path),
			slog.String("comparator", comparator),
			slog.String("decision", decision),
		)
	}
}
