package log

import (
	"context"
	"sort"

	saltLog "github.com/goto/salt/log"
)

// Logger writes leveled messages with alternating key/value pairs.
// Keys should be strings; values can be anything printable.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
	Fatal(ctx context.Context, msg string, args ...interface{})

	// Level returns priority level for which this logger will filter logs
	Level() string
}

// ContextKey names a request-scoped value copied onto every log line
type ContextKey string

const (
	ViewerIDKey  ContextKey = "viewer_id"
	RequestIDKey ContextKey = "request_id"
)

// DefaultContextKeys are the keys the server puts on every request context
var DefaultContextKeys = []string{string(ViewerIDKey), string(RequestIDKey)}

type LoggerOption func(*CtxLogger)
type metadataContextKey struct{}

type CtxLogger struct {
	log       saltLog.Logger
	keys      []string
	extractor func(context.Context) map[string]interface{}
}

// NewCtxLoggerWithSaltLogger returns a logger that appends context values to every message
func NewCtxLoggerWithSaltLogger(log saltLog.Logger, ctxKeys []string, opts ...LoggerOption) *CtxLogger {
	ctxLogger := &CtxLogger{log: log, keys: ctxKeys}
	for _, o := range opts {
		o(ctxLogger)
	}

	return ctxLogger
}

// NewCtxLogger returns a logrus backed logger that appends context values to every message
func NewCtxLogger(logLevel string, ctxKeys []string, opts ...LoggerOption) *CtxLogger {
	saltLogger := saltLog.NewLogrus(saltLog.LogrusWithLevel(logLevel))
	return NewCtxLoggerWithSaltLogger(saltLogger, ctxKeys, opts...)
}

func (l *CtxLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.log.Debug(msg, l.addCtxToArgs(ctx, args)...)
}

func (l *CtxLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.log.Info(msg, l.addCtxToArgs(ctx, args)...)
}

func (l *CtxLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.log.Warn(msg, l.addCtxToArgs(ctx, args)...)
}

func (l *CtxLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.log.Error(msg, l.addCtxToArgs(ctx, args)...)
}

func (l *CtxLogger) Fatal(ctx context.Context, msg string, args ...interface{}) {
	l.log.Fatal(msg, l.addCtxToArgs(ctx, args)...)
}

func (l *CtxLogger) Level() string {
	return l.log.Level()
}

// addCtxToArgs appends the configured context keys, then metadata sorted by key
func (l *CtxLogger) addCtxToArgs(ctx context.Context, args []interface{}) []interface{} {
	if ctx == nil {
		return args
	}

	for _, key := range l.keys {
		if val, ok := ctx.Value(ContextKey(key)).(string); ok {
			args = append(args, key, val)
		}
	}

	md := Metadata(ctx)
	if l.extractor != nil {
		merged := make(map[string]interface{}, len(md))
		for k, v := range md {
			merged[k] = v
		}
		for k, v := range l.extractor(ctx) {
			merged[k] = v
		}
		md = merged
	}

	keys := make([]string, 0, len(md))
	for k := range md {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, k, md[k])
	}

	return args
}

func WithContextValue(ctx context.Context, key ContextKey, value string) context.Context {
	return context.WithValue(ctx, key, value)
}

// WithMetadata returns a context carrying md on top of any metadata already present.
// The parent's metadata is never modified.
func WithMetadata(ctx context.Context, md map[string]interface{}) context.Context {
	existing := Metadata(ctx)
	merged := make(map[string]interface{}, len(existing)+len(md))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range md {
		merged[k] = v
	}
	return context.WithValue(ctx, metadataContextKey{}, merged)
}

func Metadata(ctx context.Context) map[string]interface{} {
	md, _ := ctx.Value(metadataContextKey{}).(map[string]interface{})
	return md
}

// WithMetadataExtractor adds the values fn derives from the context to every message
func WithMetadataExtractor(fn func(context.Context) map[string]interface{}) LoggerOption {
	return func(l *CtxLogger) {
		l.extractor = fn
	}
}
