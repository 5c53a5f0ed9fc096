// Package log is a thin printf-style facade over logrus shared by the
// converter packages.
package log

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// SolidsLogger collects per-solid diagnostics (warning solids, exported
// geometry descriptions) separately from the general converter log.
var SolidsLogger = logrus.WithField("logger", "solids")

// Debug ...
func Debug(format string, args ...interface{}) {
	logrus.Debug(fmt.Sprintf(format, args...))
}

// Info ...
func Info(format string, args ...interface{}) {
	logrus.Info(fmt.Sprintf(format, args...))
}

// Warning ...
func Warning(format string, args ...interface{}) {
	logrus.Warning(fmt.Sprintf(format, args...))
}

// Error ...
func Error(format string, args ...interface{}) {
	logrus.Error(fmt.Sprintf(format, args...))
}
