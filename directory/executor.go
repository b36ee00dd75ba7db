/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package directory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/shirou/gopsutil/v4/process"
	"go.uber.org/atomic"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/logs"
	"github.com/ARM-software/identity-lifecycle/safecast"
	"github.com/ARM-software/identity-lifecycle/scheduling"
)

// flagConfigDirectory passes the CLI's configuration/credentials directory on every
// invocation.
const flagConfigDirectory = "--config"

const reapTimeout = 5 * time.Second

// CommandExecutor runs the administration CLI as a subprocess, one invocation at a
// time. Output is captured for parsing and simultaneously streamed line by line into
// the activity loggers.
type CommandExecutor struct {
	loggers         logs.Loggers
	binary          string
	configDirectory string
	callTimeout     time.Duration
	running         atomic.Bool
}

// NewCommandExecutor creates an executor for the CLI described by cfg. `~` in the
// binary and configuration directory paths is expanded.
func NewCommandExecutor(loggers logs.Loggers, cfg *ClientConfiguration) (executor *CommandExecutor, err error) {
	if loggers == nil {
		err = commonerrors.ErrNoLogger
		return
	}
	if cfg == nil {
		err = commonerrors.UndefinedVariable("directory client configuration")
		return
	}
	err = cfg.Validate()
	if err != nil {
		err = commonerrors.WrapIfNotCommonError(commonerrors.ErrInvalid, err, "invalid directory client configuration")
		return
	}
	binary, err := homedir.Expand(cfg.Binary)
	if err != nil {
		err = commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "could not expand the CLI binary path [%v]", cfg.Binary)
		return
	}
	configDirectory, err := homedir.Expand(cfg.ConfigDirectory)
	if err != nil {
		err = commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "could not expand the CLI configuration directory [%v]", cfg.ConfigDirectory)
		return
	}
	executor = &CommandExecutor{
		loggers:         loggers,
		binary:          binary,
		configDirectory: configDirectory,
		callTimeout:     cfg.CallTimeout,
	}
	return
}

// Invoke runs the CLI once. A non-zero exit is returned as data rather than an error:
// classification of failures belongs to the caller, which has the output to hand.
func (e *CommandExecutor) Invoke(ctx context.Context, operation string, args ...string) (stdout, stderr string, exitStatus int, err error) {
	exitStatus = -1
	err = scheduling.DetermineContextError(ctx)
	if err != nil {
		return
	}
	if strings.TrimSpace(operation) == "" {
		err = commonerrors.UndefinedVariable("operation")
		return
	}
	if !e.running.CompareAndSwap(false, true) {
		err = commonerrors.Newf(commonerrors.ErrConflict, "an invocation of [%v] is already in flight", e.binary)
		return
	}
	defer e.running.Store(false)

	callCtx := ctx
	if e.callTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, e.callTimeout)
		defer cancel()
	}
	callArgs := make([]string, 0, len(args)+3)
	if e.configDirectory != "" {
		callArgs = append(callArgs, flagConfigDirectory, e.configDirectory)
	}
	callArgs = append(callArgs, operation)
	callArgs = append(callArgs, args...)

	e.loggers.Log(fmt.Sprintf("Invoking directory operation [%v] %v", operation, strings.Join(args, " ")))
	var outBuffer, errBuffer strings.Builder
	cmd := exec.CommandContext(callCtx, e.binary, callArgs...)
	cmd.Stdout = io.MultiWriter(&outBuffer, newOutStreamer(e.loggers))
	cmd.Stderr = io.MultiWriter(&errBuffer, newErrStreamer(e.loggers))
	cmd.Cancel = func() error {
		// CommandContext only kills the direct child; the CLI spawns helpers for bulk
		// operations. The rest of the tree goes first so nothing reparents and
		// outlives the invocation.
		e.reapChildProcesses(cmd.Process.Pid)
		return cmd.Process.Kill()
	}

	runErr := commonerrors.ConvertContextError(cmd.Run())
	stdout = outBuffer.String()
	stderr = errBuffer.String()
	if runErr == nil {
		exitStatus = 0
		return
	}
	subErr := scheduling.DetermineContextError(callCtx)
	if subErr != nil {
		err = subErr
		e.loggers.LogError(fmt.Sprintf("Directory operation [%v] was interrupted: %v", operation, err))
		return
	}
	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		exitStatus = exitErr.ExitCode()
		e.loggers.LogError(fmt.Sprintf("Directory operation [%v] exited with status %v", operation, exitStatus))
		return
	}
	err = commonerrors.WrapErrorf(commonerrors.ErrUnexpected, runErr, "could not run the directory CLI [%v]", e.binary)
	e.loggers.LogError(err)
	return
}

func (e *CommandExecutor) reapChildProcesses(pid int) {
	reapCtx, cancel := context.WithTimeout(context.Background(), reapTimeout)
	defer cancel()
	p, err := process.NewProcessWithContext(reapCtx, safecast.ToInt32(pid))
	if err != nil {
		return
	}
	children, err := p.ChildrenWithContext(reapCtx)
	if err != nil {
		return
	}
	for i := range children {
		terminateProcessTree(reapCtx, children[i])
	}
}

func terminateProcessTree(ctx context.Context, p *process.Process) {
	if p == nil {
		return
	}
	children, err := p.ChildrenWithContext(ctx)
	if err == nil {
		for i := range children {
			terminateProcessTree(ctx, children[i])
		}
	}
	_ = p.TerminateWithContext(ctx)
	_ = p.KillWithContext(ctx)
}

type logStreamer struct {
	io.Writer
	isStdErr bool
	loggers  logs.Loggers
}

func (l *logStreamer) Write(p []byte) (n int, err error) {
	lines := strings.Split(string(p), "\n")
	for i := range lines {
		line := lines[i]
		if line != "" {
			if l.isStdErr {
				l.loggers.LogError(line)
			} else {
				l.loggers.Log(line)
			}
		}
	}
	return len(p), nil
}

func newLogStreamer(isStdErr bool, loggers logs.Loggers) *logStreamer {
	return &logStreamer{
		isStdErr: isStdErr,
		loggers:  loggers,
	}
}

func newOutStreamer(loggers logs.Loggers) *logStreamer {
	return newLogStreamer(false, loggers)
}

func newErrStreamer(loggers logs.Loggers) *logStreamer {
	return newLogStreamer(true, loggers)
}
