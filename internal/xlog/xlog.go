// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package xlog provides a Logger interface and supporting functions to control
debug and diagnostic output.

The Logger interface is supported by the log.Logger type. The Print, Printf
and Println functions do nothing if the Logger is nil, so a package may keep
a nil debug logger and switch it on in tests.

The level functions Warn, Info, Debug and Fatal write to the standard
logger of the log package, which the commands configure with their own
prefix. Output is written only if the level set by SetLevel permits it.
*/
package xlog

import (
	"fmt"
	"log"
	"os"
	"sync/atomic"
)

// Logger is the interface required by the functions of the package. The
// log.Logger type supports this interface.
type Logger interface {
	Output(calldepth int, s string) error
}

// Print outputs the arguments using the logger. If the logger is nil nothing
// will be printed.
func Print(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprint(v...))
	}
}

// Printf prints the arguments using the format string. If the logger argument
// is nil nothing will be printed.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Println prints the arguments and adds a newline. If the logger argument is
// nil nothing will be printed.
func Println(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintln(v...))
	}
}

// Level controls which messages are written by the level functions.
type Level int32

// Supported levels. A level includes all levels with lower values.
const (
	Quiet Level = iota
	WarnLevel
	InfoLevel
	DebugLevel
)

var (
	level int32 = int32(WarnLevel)
	std   Logger
	// exit is replaced by tests
	exit = os.Exit
)

// SetLevel sets the level for the level functions.
func SetLevel(l Level) { atomic.StoreInt32(&level, int32(l)) }

// GetLevel returns the current level.
func GetLevel() Level { return Level(atomic.LoadInt32(&level)) }

// SetOutput sets the logger used by the level functions. A nil logger
// selects the standard logger of the log package.
func SetOutput(l Logger) { std = l }

func output(l Level, s string) {
	if GetLevel() < l {
		return
	}
	out := std
	if out == nil {
		out = log.Default()
	}
	out.Output(3, s)
}

// Warn writes a warning.
func Warn(v ...interface{}) { output(WarnLevel, fmt.Sprint(v...)) }

// Warnf writes a formatted warning.
func Warnf(format string, v ...interface{}) {
	output(WarnLevel, fmt.Sprintf(format, v...))
}

// Info writes a message in verbose mode.
func Info(v ...interface{}) { output(InfoLevel, fmt.Sprint(v...)) }

// Infof writes a formatted message in verbose mode.
func Infof(format string, v ...interface{}) {
	output(InfoLevel, fmt.Sprintf(format, v...))
}

// Debugf writes a formatted debug message.
func Debugf(format string, v ...interface{}) {
	output(DebugLevel, fmt.Sprintf(format, v...))
}

// Fatal writes the message independent of the level and exits the program
// with status 1.
func Fatal(v ...interface{}) {
	output(Quiet, fmt.Sprint(v...))
	exit(1)
}

// Fatalf writes the formatted message independent of the level and exits
// the program with status 1.
func Fatalf(format string, v ...interface{}) {
	output(Quiet, fmt.Sprintf(format, v...))
	exit(1)
}
