package meshgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with meshgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithMesh adds the mesh name field to the logger.
func (l *Logger) WithMesh(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("mesh", name),
	}
}

// WithVertex adds a vertex key field to the logger.
func (l *Logger) WithVertex(key int) *Logger {
	return &Logger{
		Logger: l.Logger.With("vertex", key),
	}
}

// WithFace adds a face key field to the logger.
func (l *Logger) WithFace(key int) *Logger {
	return &Logger{
		Logger: l.Logger.With("face", key),
	}
}

// WithEdge adds edge endpoint fields to the logger.
func (l *Logger) WithEdge(u, v int) *Logger {
	return &Logger{
		Logger: l.Logger.With("u", u, "v", v),
	}
}

// LogInsertVertexOnEdge logs a vertex insertion on an edge.
func (l *Logger) LogInsertVertexOnEdge(u, v, key int, err error) {
	if err != nil {
		l.Error("insert vertex on edge failed",
			"u", u,
			"v", v,
			"error", err,
		)
	} else {
		l.Debug("insert vertex on edge completed",
			"u", u,
			"v", v,
			"vertex", key,
		)
	}
}

// LogSubstituteVertex logs a vertex substitution across faces.
func (l *Logger) LogSubstituteVertex(old, new, faces int, err error) {
	if err != nil {
		l.Error("substitute vertex failed",
			"old", old,
			"new", new,
			"error", err,
		)
	} else {
		l.Debug("substitute vertex completed",
			"old", old,
			"new", new,
			"faces", faces,
		)
	}
}

// LogSplitFace logs a face split.
func (l *Logger) LogSplitFace(face, u, v, left, right int, err error) {
	if err != nil {
		l.Error("split face failed",
			"face", face,
			"u", u,
			"v", v,
			"error", err,
		)
	} else {
		l.Debug("split face completed",
			"face", face,
			"u", u,
			"v", v,
			"left", left,
			"right", right,
		)
	}
}

// LogSplitEdge logs a parametric edge split.
func (l *Logger) LogSplitEdge(u, v int, t float64, key int, err error) {
	if err != nil {
		l.Error("split edge failed",
			"u", u,
			"v", v,
			"t", t,
			"error", err,
		)
	} else {
		l.Debug("split edge completed",
			"u", u,
			"v", v,
			"t", t,
			"vertex", key,
		)
	}
}

// LogSubdivide logs a subdivision pass.
func (l *Logger) LogSubdivide(scheme SubdivisionScheme, vertices, faces int, err error) {
	if err != nil {
		l.Error("subdivide failed",
			"scheme", scheme.String(),
			"error", err,
		)
	} else {
		l.Info("subdivide completed",
			"scheme", scheme.String(),
			"vertices", vertices,
			"faces", faces,
		)
	}
}
