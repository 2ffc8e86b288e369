package gwlog

import (
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/natefinch/lumberjack"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// DebugLevel level
	DebugLevel Level = Level(zap.DebugLevel)
	// InfoLevel level
	InfoLevel Level = Level(zap.InfoLevel)
	// WarnLevel level
	WarnLevel Level = Level(zap.WarnLevel)
	// ErrorLevel level
	ErrorLevel Level = Level(zap.ErrorLevel)
	// PanicLevel level
	PanicLevel Level = Level(zap.PanicLevel)
	// FatalLevel level
	FatalLevel Level = Level(zap.FatalLevel)
)

// Level is type of log levels
type Level zapcore.Level

func (lv Level) String() string {
	return zapcore.Level(lv).String()
}

var (
	level  = zap.NewAtomicLevelAt(zap.DebugLevel)
	sugar  atomic.Pointer[zap.SugaredLogger]
	logger atomic.Pointer[zap.Logger]

	buildLock   sync.Mutex
	source      string
	sinks       = []zapcore.WriteSyncer{zapcore.Lock(os.Stderr)}
	fileWriters = map[string]*lumberjack.Logger{}
)

func init() {
	rebuild()
}

func newEncoder() zapcore.Encoder {
	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	})
}

// rebuild must be called with buildLock held (or from init)
func rebuild() {
	core := zapcore.NewCore(newEncoder(), zapcore.NewMultiWriteSyncer(sinks...), level)
	l := zap.New(core)
	if source != "" {
		l = l.With(zap.String("source", source))
	}
	logger.Store(l)
	sugar.Store(l.Sugar())
}

// SetSource sets the component name (master/world/gate/db/login/game) of gwlog module
func SetSource(comp string) {
	buildLock.Lock()
	source = comp
	rebuild()
	buildLock.Unlock()
}

// SetLevel sets the log level
func SetLevel(lv Level) {
	level.SetLevel(zapcore.Level(lv))
}

// GetLevel returns the current log level
func GetLevel() Level {
	return Level(level.Level())
}

// SetOutput sets the outputs of gwlog: "stderr", "stdout" or a file path.
//
// File outputs are rotated by lumberjack.
func SetOutput(outputs []string) {
	buildLock.Lock()
	defer buildLock.Unlock()

	ws := make([]zapcore.WriteSyncer, 0, len(outputs))
	for _, out := range outputs {
		switch out {
		case "stderr":
			ws = append(ws, zapcore.Lock(os.Stderr))
		case "stdout":
			ws = append(ws, zapcore.Lock(os.Stdout))
		default:
			ws = append(ws, zapcore.AddSync(openFileWriter(out)))
		}
	}
	sinks = ws
	rebuild()
}

// SetWriter redirects all log output to w
func SetWriter(w io.Writer) {
	buildLock.Lock()
	sinks = []zapcore.WriteSyncer{zapcore.Lock(zapcore.AddSync(w))}
	rebuild()
	buildLock.Unlock()
}

func openFileWriter(filename string) *lumberjack.Logger {
	if w, ok := fileWriters[filename]; ok {
		return w
	}
	w := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    100, // megabytes
		MaxBackups: 100,
		MaxAge:     30, //days
		Compress:   true,
	}
	fileWriters[filename] = w
	return w
}

// Logger returns the underlying zap logger
func Logger() *zap.Logger {
	return logger.Load()
}

// Sync flushes buffered logs
func Sync() {
	_ = logger.Load().Sync()
}

// Debugf logs formatted debug message
func Debugf(format string, args ...interface{}) {
	sugar.Load().Debugf(format, args...)
}

// Infof logs formatted info message
func Infof(format string, args ...interface{}) {
	sugar.Load().Infof(format, args...)
}

// Warnf logs formatted warn message
func Warnf(format string, args ...interface{}) {
	sugar.Load().Warnf(format, args...)
}

// Errorf logs formatted error message
func Errorf(format string, args ...interface{}) {
	sugar.Load().Errorf(format, args...)
}

func Panicf(format string, args ...interface{}) {
	sugar.Load().Panicf(format, args...)
}

func Fatalf(format string, args ...interface{}) {
	sugar.Load().Fatalf(format, args...)
}

func Panic(args ...interface{}) {
	sugar.Load().Panic(args...)
}

func Fatal(args ...interface{}) {
	sugar.Load().Fatal(args...)
}

// TraceError prints the stack and error
func TraceError(format string, args ...interface{}) {
	sugar.Load().Errorf(format+"\n%s", append(args, debug.Stack())...)
}

// ParseLevel converts string to Levels
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	case "panic":
		return PanicLevel
	case "fatal":
		return FatalLevel
	}
	Errorf("ParseLevel: unknown level: %s", s)
	return DebugLevel
}
