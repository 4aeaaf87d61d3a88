// Copyright 2018 The go-aurora Authors
// This file is part of the go-aurora library.
//
// The go-aurora library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-aurora library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-aurora library. If not, see <http://www.gnu.org/licenses/>.

// Package log is the process-wide logger. It wraps a zap core whose level can
// be changed at runtime and whose sink defaults to stderr, leaving stdout to
// program output.
package log

import (
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zapcore.Field

var (
	mu     sync.RWMutex
	logger *zap.Logger
	sugar  *zap.SugaredLogger

	LogLevel = zap.InfoLevel
	atom     = zap.NewAtomicLevel()
)

var levelMap = map[string]zapcore.Level{
	"debug":  zapcore.DebugLevel,
	"info":   zapcore.InfoLevel,
	"warn":   zapcore.WarnLevel,
	"error":  zapcore.ErrorLevel,
	"dpanic": zapcore.DPanicLevel,
	"panic":  zapcore.PanicLevel,
	"fatal":  zapcore.FatalLevel,
}

func getLoggerLevel(lvl string) zapcore.Level {
	if level, ok := levelMap[lvl]; ok {
		return level
	}
	return zapcore.InfoLevel
}

func init() {
	atom.SetLevel(LogLevel)
	SetOutput(os.Stderr)
}

func encoderConfig() zapcore.EncoderConfig {
	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
	}
	config.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncodeCaller = zapcore.ShortCallerEncoder
	return config
}

// SetOutput redirects all subsequent log lines to w.
func SetOutput(w io.Writer) {
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		atom,
	)
	l := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	mu.Lock()
	logger, sugar = l, l.Sugar()
	mu.Unlock()
}

// SetLevel sets the minimum level by name. Unknown names select info.
func SetLevel(level string) {
	LogLevel = getLoggerLevel(level)
	atom.SetLevel(LogLevel)
}

// Enabled reports whether lines at level would be written.
func Enabled(level zapcore.Level) bool {
	return atom.Enabled(level)
}

// Sync flushes any buffered log lines.
func Sync() error {
	mu.RLock()
	defer mu.RUnlock()
	return logger.Sync()
}

func current() (*zap.Logger, *zap.SugaredLogger) {
	mu.RLock()
	defer mu.RUnlock()
	return logger, sugar
}

func Debug(args ...interface{}) {
	_, s := current()
	s.Debug(args...)
}

func Debugf(template string, args ...interface{}) {
	_, s := current()
	s.Debugf(template, args...)
}

func LDebug(msg string, fields ...Field) {
	l, _ := current()
	l.Debug(msg, fields...)
}

func Info(args ...interface{}) {
	_, s := current()
	s.Info(args...)
}

func Infof(template string, args ...interface{}) {
	_, s := current()
	s.Infof(template, args...)
}

func LInfo(msg string, fields ...Field) {
	l, _ := current()
	l.Info(msg, fields...)
}

func Warn(args ...interface{}) {
	_, s := current()
	s.Warn(args...)
}

func Warnf(template string, args ...interface{}) {
	_, s := current()
	s.Warnf(template, args...)
}

func LWarn(msg string, fields ...Field) {
	l, _ := current()
	l.Warn(msg, fields...)
}

func Error(args ...interface{}) {
	_, s := current()
	s.Error(args...)
}

func Errorf(template string, args ...interface{}) {
	_, s := current()
	s.Errorf(template, args...)
}

func Fatalf(template string, args ...interface{}) {
	_, s := current()
	s.Fatalf(template, args...)
}
