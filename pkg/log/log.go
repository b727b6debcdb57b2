package log

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewZapLogger builds a JSON logger writing to stdout.
func NewZapLogger(name string, level zapcore.Level) *zap.SugaredLogger {
	return newLogger(name, level, zapcore.Lock(os.Stdout))
}

// NewRotatingZapLogger builds a JSON logger that writes to stdout and to a
// size-rotated file.
func NewRotatingZapLogger(name string, level zapcore.Level, file string) *zap.SugaredLogger {
	rotator := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}
	return newLogger(name, level, zapcore.NewMultiWriteSyncer(
		zapcore.Lock(os.Stdout),
		zapcore.AddSync(rotator),
	))
}

// ParseLevel maps a textual level to a zap level, falling back to info.
func ParseLevel(level string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

func newLogger(name string, level zapcore.Level, sink zapcore.WriteSyncer) *zap.SugaredLogger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.MessageKey = "message"
	encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339Nano)
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeCaller = zapcore.ShortCallerEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), sink, zap.NewAtomicLevelAt(level))
	return zap.New(core, zap.AddCaller()).Named(name).Sugar()
}
