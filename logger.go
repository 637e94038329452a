package kqoauth

import (
	"github.com/sirupsen/logrus"
)

// std receives configuration and validation warnings for every Config that
// does not carry its own logger.
var std logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the package logger. Passing nil restores the logrus
// standard logger.
func SetLogger(logger logrus.FieldLogger) {
	if logger == nil {
		std = logrus.StandardLogger()
		return
	}
	std = logger
}
