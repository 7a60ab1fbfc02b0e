package logx

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging seam the core is constructed with.
type Logger interface {
	InitLogger(w io.Writer)
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(template string, args ...interface{})
}

// Logx is the zap-backed Logger. Console encoding writes human-readable
// lines to stdout; the default is JSON lines into the writer handed to
// InitLogger (the log file).
type Logx struct {
	level   zapcore.Level
	dev     bool
	console bool
	sugar   *zap.SugaredLogger
}

func NewLogx(level string, dev bool, console bool) *Logx {
	return &Logx{level: levelFromString(level), dev: dev, console: console}
}

func levelFromString(lvl string) zapcore.Level {
	switch lvl {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *Logx) InitLogger(w io.Writer) {
	encoderCfg := zap.NewProductionEncoderConfig()
	if l.dev {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	}
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	encoder := zapcore.NewJSONEncoder(encoderCfg)
	sink := zapcore.AddSync(w)
	if l.console {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
		sink = zapcore.AddSync(os.Stdout)
	}

	core := zapcore.NewCore(encoder, sink, zap.NewAtomicLevelAt(l.level))
	l.sugar = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
}

func (l *Logx) Debug(args ...interface{}) { l.sugar.Debug(args...) }

func (l *Logx) Debugf(template string, args ...interface{}) { l.sugar.Debugf(template, args...) }

func (l *Logx) Info(args ...interface{}) { l.sugar.Info(args...) }

func (l *Logx) Infof(template string, args ...interface{}) { l.sugar.Infof(template, args...) }

func (l *Logx) Warn(args ...interface{}) { l.sugar.Warn(args...) }

func (l *Logx) Warnf(template string, args ...interface{}) { l.sugar.Warnf(template, args...) }

func (l *Logx) Error(args ...interface{}) { l.sugar.Error(args...) }

func (l *Logx) Errorf(template string, args ...interface{}) { l.sugar.Errorf(template, args...) }

func (l *Logx) Fatal(args ...interface{}) { l.sugar.Fatal(args...) }

func (l *Logx) Fatalf(template string, args ...interface{}) { l.sugar.Fatalf(template, args...) }
