package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Settings stores config for Logger
type Settings struct {
	Path       string `mapstructure:"path"`
	Name       string `mapstructure:"name"`
	Ext        string `mapstructure:"ext"`
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max-size"`
	MaxBackups int    `mapstructure:"max-backups"`
}

const (
	defaultMaxSizeMB  = 64
	defaultMaxBackups = 7
)

var sugar = newLogger(zapcore.InfoLevel, nil).Sugar()

func newEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		LevelKey:       "level",
		MessageKey:     "msg",
		TimeKey:        "time",
		NameKey:        "logger",
		CallerKey:      "file",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
}

// newLogger builds a console logger on stdout, teed into fileSink when one is
// given
func newLogger(level zapcore.Level, fileSink zapcore.WriteSyncer) *zap.Logger {
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(newEncoderConfig()), zapcore.AddSync(os.Stdout), level),
	}
	if fileSink != nil {
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(newEncoderConfig()), fileSink, level))
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))
}

// Setup reconfigures the package logger. With a non-empty Path, log entries
// are also written to a size-rotated file under it
func Setup(settings *Settings) {
	level, err := zapcore.ParseLevel(settings.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	var fileSink zapcore.WriteSyncer
	if settings.Path != "" {
		maxSize := settings.MaxSizeMB
		if maxSize <= 0 {
			maxSize = defaultMaxSizeMB
		}
		maxBackups := settings.MaxBackups
		if maxBackups <= 0 {
			maxBackups = defaultMaxBackups
		}
		fileSink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(settings.Path, settings.Name+"."+settings.Ext),
			MaxSize:    maxSize,
			MaxBackups: maxBackups,
		})
	}
	sugar = newLogger(level, fileSink).Sugar()
}

// Debug logs debug message through the package logger
func Debug(v ...interface{}) {
	sugar.Debug(v...)
}

// Debugf logs debug message through the package logger
func Debugf(format string, v ...interface{}) {
	sugar.Debugf(format, v...)
}

// Info logs message through the package logger
func Info(v ...interface{}) {
	sugar.Info(v...)
}

// Infof logs message through the package logger
func Infof(format string, v ...interface{}) {
	sugar.Infof(format, v...)
}

// Warn logs warning message through the package logger
func Warn(v ...interface{}) {
	sugar.Warn(v...)
}

// Warnf logs warning message through the package logger
func Warnf(format string, v ...interface{}) {
	sugar.Warnf(format, v...)
}

// Error logs error message through the package logger
func Error(v ...interface{}) {
	sugar.Error(v...)
}

// Errorf logs error message through the package logger
func Errorf(format string, v ...interface{}) {
	sugar.Errorf(format, v...)
}

// Fatal prints error message then stop the program
func Fatal(v ...interface{}) {
	sugar.Fatal(v...)
}
