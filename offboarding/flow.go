// Package offboarding assembles the account offboarding run: the ordered sequence of
// directory mutations taking a subject from active to deleted whilst their aliases,
// files and calendar move to their manager and their mail and drive data is archived.
// Every mutation is a step with an idempotency predicate, so a run killed halfway can
// be relaunched safely, and the critical steps up to the bulk export carry
// compensations restoring the subject when the run has to be rolled back.
package offboarding

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/ARM-software/identity-lifecycle/archive"
	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/directory"
	"github.com/ARM-software/identity-lifecycle/identity"
	"github.com/ARM-software/identity-lifecycle/logs"
	"github.com/ARM-software/identity-lifecycle/saga"
)

// Flow assembles offboarding runs over a directory client and an archiver.
type Flow struct {
	loggers  logs.Loggers
	client   directory.IClient
	archiver archive.IArchiver
	cfg      *Configuration
	logger   logr.Logger
}

func New(loggers logs.Loggers, client directory.IClient, archiver archive.IArchiver, cfg *Configuration) (flow *Flow, err error) {
	if loggers == nil {
		err = commonerrors.ErrNoLogger
		return
	}
	if client == nil {
		err = commonerrors.UndefinedVariable("directory client")
		return
	}
	if archiver == nil {
		err = commonerrors.UndefinedVariable("archiver")
		return
	}
	if cfg == nil {
		err = commonerrors.UndefinedVariable("offboarding configuration")
		return
	}
	err = cfg.Validate()
	if err != nil {
		err = commonerrors.WrapIfNotCommonError(commonerrors.ErrInvalid, err, "invalid offboarding configuration")
		return
	}
	flow = &Flow{
		loggers:  loggers,
		client:   client,
		archiver: archiver,
		cfg:      cfg,
		logger:   logs.NewLogrLoggerFromLoggers(loggers),
	}
	return
}

// Run offboards the subject and returns the run report. The error is nil only when the
// run completed; a critical failure carries the step failure joined with any rollback
// failures, and the report states whether the subject was reverted.
func (f *Flow) Run(ctx context.Context, subject *identity.Subject) (report *saga.Report, err error) {
	if subject == nil {
		err = commonerrors.UndefinedVariable("subject")
		return
	}
	err = subject.Validate()
	if err != nil {
		return
	}
	if subject.Manager.IsEmpty() {
		err = commonerrors.Newf(commonerrors.ErrUndefined, "offboarding '%v' requires a manager to hand resources to", subject.Primary)
		return
	}
	orchestrator, err := saga.NewOrchestrator(f.loggers, f.steps(subject)...)
	if err != nil {
		return
	}
	return orchestrator.Run(ctx)
}
