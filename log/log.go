// Package log wraps github.com/sirupsen/logrus behind a small
// Printf-style call surface (Info, Println, Printf, Fatal) so call
// sites stay terse.
package log

import "github.com/sirupsen/logrus"

var std = logrus.New()

// SetLevel adjusts the minimum logged level, e.g. for -verbose CLI flags.
func SetLevel(level logrus.Level) {
	std.SetLevel(level)
}

func Println(args ...interface{}) {
	std.Infoln(args...)
}

func Printf(format string, args ...interface{}) {
	std.Infof(format, args...)
}

func Info(args ...interface{}) {
	std.Info(args...)
}

func Infof(format string, args ...interface{}) {
	std.Infof(format, args...)
}

func Errorf(format string, args ...interface{}) {
	std.Errorf(format, args...)
}

func Fatal(args ...interface{}) {
	std.Fatal(args...)
}

func Fatalf(format string, args ...interface{}) {
	std.Fatalf(format, args...)
}
