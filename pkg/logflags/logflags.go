// Package logflags enables and configures the loggers used by the
// location parsing packages.
package logflags

import (
	"errors"
	"io/ioutil"
	"log"
	"strings"

	"github.com/sirupsen/logrus"
)

var locspec = false
var completion = false

func makeLogger(flag bool, fields logrus.Fields) *logrus.Entry {
	logger := logrus.New().WithFields(fields)
	logger.Logger.Level = logrus.DebugLevel
	if !flag {
		logger.Logger.Level = logrus.PanicLevel
	}
	return logger
}

// LocSpec returns true if the locspec package should log.
func LocSpec() bool {
	return locspec
}

// LocSpecLogger returns a configured logger for the location parser.
func LocSpecLogger() *logrus.Entry {
	return makeLogger(locspec, logrus.Fields{"layer": "locspec"})
}

// Completion returns true if completion mode parsing should be logged.
func Completion() bool {
	return completion
}

// CompletionLogger returns a configured logger for completion mode
// parsing.
func CompletionLogger() *logrus.Entry {
	return makeLogger(completion, logrus.Fields{"layer": "locspec", "kind": "completion"})
}

var errLogstrWithoutLog = errors.New("--log-output specified without --log")

// Setup sets logging flags based on the contents of logstr, a comma
// separated list of component names.
func Setup(logFlag bool, logstr string) error {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	if !logFlag {
		log.SetOutput(ioutil.Discard)
		if logstr != "" {
			return errLogstrWithoutLog
		}
		return nil
	}
	if logstr == "" {
		logstr = "locspec"
	}
	for _, logcmd := range strings.Split(logstr, ",") {
		switch logcmd {
		case "locspec":
			locspec = true
		case "completion":
			completion = true
		}
	}
	return nil
}
