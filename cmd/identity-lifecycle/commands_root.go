/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/config"
	"github.com/ARM-software/identity-lifecycle/logs"
	"github.com/ARM-software/identity-lifecycle/platform"
	"github.com/ARM-software/identity-lifecycle/saga"
	"github.com/ARM-software/identity-lifecycle/units/size"
)

const (
	envVarPrefix = "LIFECYCLE"
	loggerSource = "identity-lifecycle"
)

var (
	logFile      string
	rollingLogs  bool
	jsonLogs     bool
	viperSession = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "identity-lifecycle",
	Short: "Account lifecycle runs against the corporate directory",
	Long: "identity-lifecycle drives ordered, idempotent and compensable account lifecycle runs " +
		"(offboarding leavers, onboarding joiners) through the directory administration CLI.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "File receiving the activity log in addition to stdout")
	rootCmd.PersistentFlags().BoolVar(&rollingLogs, "rolling-logs", false, "Rotate the activity log file by size")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Stream the stdout activity log as JSON lines")
	cobra.CheckErr(config.BindFlagToEnv(viperSession, envVarPrefix, "LIFECYCLE_LOG_FILE", rootCmd.PersistentFlags().Lookup("log-file")))
	cobra.CheckErr(config.BindFlagToEnv(viperSession, envVarPrefix, "LIFECYCLE_ROLLING_LOGS", rootCmd.PersistentFlags().Lookup("rolling-logs")))
	cobra.CheckErr(config.BindFlagToEnv(viperSession, envVarPrefix, "LIFECYCLE_JSON_LOGS", rootCmd.PersistentFlags().Lookup("json-logs")))

	registerOffboardCommand(rootCmd)
	registerOnboardCommand(rootCmd)
}

func loadToolConfiguration() (cfg *ToolConfiguration, err error) {
	cfg = &ToolConfiguration{}
	err = config.LoadFromViper(viperSession, envVarPrefix, cfg, DefaultToolConfiguration())
	if err != nil {
		err = commonerrors.WrapIfNotCommonError(commonerrors.ErrInvalid, err, "could not load the tool configuration")
		cfg = nil
	}
	return
}

// newLoggers assembles the activity loggers: stdout (plain or JSON lines) plus the
// configured log file (plain or rolling).
func newLoggers(cfg *ToolConfiguration) (loggers logs.Loggers, err error) {
	var list []logs.Loggers
	var console logs.Loggers
	if cfg.JSONLogs {
		console, err = logs.NewJSONLoggerWithWriter(&logs.StdWriter{}, loggerSource, "main")
	} else {
		console, err = logs.NewStdLogger(loggerSource)
	}
	if err != nil {
		return
	}
	list = append(list, console)
	if cfg.LogFile != "" {
		var file logs.Loggers
		if cfg.RollingLogs {
			file, err = logs.NewRollingFilesLogger(cfg.LogFile, loggerSource)
		} else {
			file, err = logs.NewFileOnlyLogger(cfg.LogFile, loggerSource)
		}
		if err != nil {
			return
		}
		list = append(list, file)
	}
	if len(list) == 1 {
		loggers = list[0]
		return
	}
	return logs.NewMultipleLoggers(loggerSource, list...)
}

// logRunEnvironment records which machine performs the mutations, so the activity
// log states where a run happened.
func logRunEnvironment(loggers logs.Loggers) {
	if information, err := platform.SystemInformation(); err == nil {
		loggers.Log(information)
	}
	if ram, err := platform.GetRAM(); err == nil {
		loggers.Log(fmt.Sprintf("Memory: %.1f/%.1f GiB in use (%.1f%%)", float64(ram.GetUsed())/size.GiB, float64(ram.GetTotal())/size.GiB, ram.GetUsedPercent()))
	}
}

// logReport summarises the run on the activity log, one line per step outcome.
func logReport(loggers logs.Loggers, report *saga.Report) {
	if report == nil {
		return
	}
	_ = loggers.SetLogSource(report.RunID)
	for i := range report.Outcomes {
		outcome := report.Outcomes[i]
		switch {
		case outcome.SkippedAlreadyApplied:
			loggers.Log(fmt.Sprintf("%v: skipped, already applied", outcome.Step))
		case outcome.Status == saga.StepFailed:
			loggers.LogError(fmt.Sprintf("%v: failed: %v", outcome.Step, outcome.Err))
		default:
			loggers.Log(fmt.Sprintf("%v: succeeded", outcome.Step))
		}
	}
	loggers.Log(fmt.Sprintf("Run '%v' finished in state %v after %v", report.RunID, report.State, report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond)))
}
