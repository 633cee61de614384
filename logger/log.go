package logger

import (
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger
var log *zap.SugaredLogger
var globalLevel zapcore.Level
var globalEncoding string
var initLock sync.Mutex
var initialised bool
var namedLoggers = map[string]*KernelLogger{}

func init() {
	initialise(zapcore.InfoLevel, "console", false)
}

type Config struct {
	Format string `help:"Format to write log lines in" enum:"console,json" default:"console"`
	Level  string `help:"Lowest log level that will be emitted" enum:"debug,info,warn,error" default:"info"`
}

func (cfg *Config) Configure() error {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(cfg.Level))); err != nil {
		return errors.WithStack(err)
	}
	format := strings.ToLower(strings.TrimSpace(cfg.Format))
	if format != "console" && format != "json" {
		return errors.New("log-format must be one of 'console' or 'json'")
	}
	Initialise(level, format)
	return nil
}

var DebugEnabled = false

func Initialise(level zapcore.Level, encoding string) {
	initialise(level, encoding, true)
}

func initialise(level zapcore.Level, encoding string, override bool) {
	initLock.Lock()
	defer initLock.Unlock()
	if initialised && !override {
		return
	}
	logger = CreateLogger(level, encoding)
	log = logger.Sugar()
	globalLevel = level
	globalEncoding = encoding

	// Never changed after initialisation, so a plain bool is enough
	DebugEnabled = log.Desugar().Core().Enabled(zap.DebugLevel)

	initialised = true
}

func CreateLogger(level zapcore.Level, encoding string) *zap.Logger {
	encoderConf := zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		NameKey:        "N",
		CallerKey:      "C",
		MessageKey:     "M",
		StacktraceKey:  "S",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     timeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	conf := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       false,
		Sampling:          nil,
		Encoding:          encoding,
		EncoderConfig:     encoderConf,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stdout"},
		DisableCaller:     true,
		DisableStacktrace: true,
	}
	l, _ := conf.Build()
	return l
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05.999999"))
}

// KernelLogger is a named logger. Components that want their name in each log line, such as the query runner,
// get one of these rather than using the package level functions.
type KernelLogger struct {
	logger *zap.Logger
	log    *zap.SugaredLogger
}

// GetLogger returns the logger registered under name, creating it at the current global level if needed. Loggers
// created before Configure keep the default level.
func GetLogger(name string) (*KernelLogger, error) {
	initLock.Lock()
	defer initLock.Unlock()
	if name == "" {
		return nil, errors.New("named loggers must have a name")
	}
	return getOrCreate(name, globalLevel), nil
}

// GetLoggerWithLevel is like GetLogger but uses level when the logger does not exist yet. An existing logger
// keeps the level it was created with.
func GetLoggerWithLevel(name string, level zapcore.Level) (*KernelLogger, error) {
	initLock.Lock()
	defer initLock.Unlock()
	if name == "" {
		return nil, errors.New("named loggers must have a name")
	}
	return getOrCreate(name, level), nil
}

func getOrCreate(name string, level zapcore.Level) *KernelLogger {
	if kl, ok := namedLoggers[name]; ok {
		return kl
	}
	l := CreateLogger(level, globalEncoding).Named(name)
	kl := &KernelLogger{logger: l, log: l.Sugar()}
	namedLoggers[name] = kl
	return kl
}

func (k *KernelLogger) Debug(args ...interface{}) {
	k.log.Debug(args...)
}

func (k *KernelLogger) Debugf(format string, args ...interface{}) {
	k.log.Debugf(format, args...)
}

func (k *KernelLogger) Info(args ...interface{}) {
	k.log.Info(args...)
}

func (k *KernelLogger) Infof(format string, args ...interface{}) {
	k.log.Infof(format, args...)
}

func (k *KernelLogger) Warn(args ...interface{}) {
	k.log.Warn(args...)
}

func (k *KernelLogger) Warnf(format string, args ...interface{}) {
	k.log.Warnf(format, args...)
}

func (k *KernelLogger) Error(args ...interface{}) {
	k.log.Error(args...)
}

func (k *KernelLogger) Errorf(format string, args ...interface{}) {
	k.log.Errorf(format, args...)
}

func Info(args ...interface{}) {
	log.Info(args...)
}

func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

func Debug(args ...interface{}) {
	if !DebugEnabled {
		return
	}
	log.Debug(args...)
}

func Debugf(format string, args ...interface{}) {
	if !DebugEnabled {
		return
	}
	log.Debugf(format, args...)
}

func Warn(args ...interface{}) {
	log.Warn(args...)
}

func Warnf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

func Error(args ...interface{}) {
	log.Error(args...)
}

func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

func Fatal(args ...interface{}) {
	log.Fatal(args...)
}

func Fatalf(format string, args ...interface{}) {
	log.Fatalf(format, args...)
}
