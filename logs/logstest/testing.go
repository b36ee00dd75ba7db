package logstest

import (
	"testing"

	"github.com/bombsimon/logrusr/v4"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	logrusTest "github.com/sirupsen/logrus/hooks/test"

	"github.com/ARM-software/identity-lifecycle/logs/logrimp"
)

// NewTestLogger returns a logger which routes lines through t.Log.
func NewTestLogger(t *testing.T) logr.Logger {
	return testr.New(t)
}

// NewStdTestLogger returns a logger printing straight to standard output, for tests
// run outside a testing.T.
func NewStdTestLogger() logr.Logger {
	return logrimp.NewStdOutLogr()
}

// NewNullTestLogger returns a logger writing to nothing.
func NewNullTestLogger() logr.Logger {
	silenced, _ := logrusTest.NewNullLogger()
	return logrusr.New(silenced)
}
