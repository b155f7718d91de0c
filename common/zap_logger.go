/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package common

import "go.uber.org/zap"

// ZapLogger adapts a *zap.SugaredLogger to the Logger interface, for
// callers who already run a zap-based logging pipeline and want decoder
// diagnostics folded into it rather than printed to a bare writer.
type ZapLogger struct {
	sugar    *zap.SugaredLogger
	logLevel LogLevel
}

// NewZapLogger wraps logger at the given verbosity threshold.
func NewZapLogger(logger *zap.Logger, logLevel LogLevel) *ZapLogger {
	return &ZapLogger{sugar: logger.Sugar(), logLevel: logLevel}
}

// IsLogLevel returns true if log level is greater or equal than `level`.
func (l *ZapLogger) IsLogLevel(level LogLevel) bool {
	return l.logLevel >= level
}

// Error logs error message.
func (l *ZapLogger) Error(format string, args ...interface{}) {
	if l.logLevel >= LogLevelError {
		l.sugar.Errorf(format, args...)
	}
}

// Warning logs warning message.
func (l *ZapLogger) Warning(format string, args ...interface{}) {
	if l.logLevel >= LogLevelWarning {
		l.sugar.Warnf(format, args...)
	}
}

// Notice logs notice message, at zap's Info level (zap has no Notice).
func (l *ZapLogger) Notice(format string, args ...interface{}) {
	if l.logLevel >= LogLevelNotice {
		l.sugar.Infof(format, args...)
	}
}

// Info logs info message.
func (l *ZapLogger) Info(format string, args ...interface{}) {
	if l.logLevel >= LogLevelInfo {
		l.sugar.Infof(format, args...)
	}
}

// Debug logs debug message.
func (l *ZapLogger) Debug(format string, args ...interface{}) {
	if l.logLevel >= LogLevelDebug {
		l.sugar.Debugf(format, args...)
	}
}

// Trace logs trace message, at zap's Debug level (zap has no Trace).
func (l *ZapLogger) Trace(format string, args ...interface{}) {
	if l.logLevel >= LogLevelTrace {
		l.sugar.Debugf(format, args...)
	}
}
