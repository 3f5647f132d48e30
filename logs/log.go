package logs

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type kvLists struct {
	values   []zap.Field
	previous *kvLists
}

func (list *kvLists) appendTo(t []zap.Field) []zap.Field {
	if list.previous != nil {
		t = list.previous.appendTo(t)
	}
	t = append(t, list.values...)
	return t
}

var logger *zap.Logger

func init() {
	SetLevel(zapcore.WarnLevel)
}

// SetLevel replaces the logger with a console logger on stderr that drops
// entries below l.
func SetLevel(l zapcore.Level) {
	SetOutput(zapcore.AddSync(os.Stderr), l)
}

// SetOutput replaces the logger with a console logger writing to w at level l.
func SetOutput(w zapcore.WriteSyncer, l zapcore.Level) {
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, w, l)
	SetLogger(zap.New(core))
}

// SetLogger installs l as the logger returned by LoggerOf.
func SetLogger(l *zap.Logger) {
	logger = l
}

// Verbosity maps the number of -v flags to a level: none shows warnings,
// one adds info and two or more add debug.
func Verbosity(count int) zapcore.Level {
	switch {
	case count >= 2:
		return zapcore.DebugLevel
	case count >= 1:
		return zapcore.InfoLevel
	default:
		return zapcore.WarnLevel
	}
}

type kvKey struct{}

// CtxAddKvs attaches alternating key/value pairs to ctx. Every logger taken
// from the returned context carries them.
func CtxAddKvs(ctx context.Context, kvs ...interface{}) context.Context {
	if len(kvs) == 0 {
		return ctx
	}

	var fields = make([]zap.Field, 0, len(kvs)/2+1)

	for i := 0; i+1 < len(kvs); i += 2 {
		key := fmt.Sprint(kvs[i])
		val := fmt.Sprint(kvs[i+1])
		fields = append(fields, zap.String(key, val))
	}

	value := ctx.Value(kvKey{})
	previous, _ := value.(*kvLists)
	newList := &kvLists{
		values:   fields,
		previous: previous,
	}

	return context.WithValue(ctx, kvKey{}, newList)
}

// LoggerOf returns the package logger carrying the key/values stored in ctx
// by CtxAddKvs.
func LoggerOf(ctx context.Context) *zap.Logger {
	return logger.With(getKvList(ctx)...)
}

func getKvList(ctx context.Context) []zap.Field {
	list, _ := ctx.Value(kvKey{}).(*kvLists)
	if list == nil {
		return nil
	}

	return list.appendTo(nil)
}
