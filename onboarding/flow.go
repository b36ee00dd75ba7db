/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package onboarding brings a subject into the directory: the account record is created
// and the default outgoing signature attached. The run is expressed with the same step
// machinery as offboarding so that re-runs are safe and outcomes are reported uniformly.
package onboarding

import (
	"context"
	"fmt"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/directory"
	"github.com/ARM-software/identity-lifecycle/identity"
	"github.com/ARM-software/identity-lifecycle/logs"
	"github.com/ARM-software/identity-lifecycle/saga"
	"github.com/ARM-software/identity-lifecycle/signature"
)

// Flow assembles onboarding runs over a directory client and a signature renderer.
type Flow struct {
	loggers  logs.Loggers
	client   directory.IClient
	renderer signature.IRenderer
	cfg      *Configuration
}

func New(loggers logs.Loggers, client directory.IClient, renderer signature.IRenderer, cfg *Configuration) (flow *Flow, err error) {
	if loggers == nil {
		err = commonerrors.ErrNoLogger
		return
	}
	if client == nil {
		err = commonerrors.UndefinedVariable("directory client")
		return
	}
	if renderer == nil {
		err = commonerrors.UndefinedVariable("signature renderer")
		return
	}
	if cfg == nil {
		err = commonerrors.UndefinedVariable("onboarding configuration")
		return
	}
	err = cfg.Validate()
	if err != nil {
		err = commonerrors.WrapIfNotCommonError(commonerrors.ErrInvalid, err, "invalid onboarding configuration")
		return
	}
	flow = &Flow{
		loggers:  loggers,
		client:   client,
		renderer: renderer,
		cfg:      cfg,
	}
	return
}

// Run onboards the subject under the given display name and returns the run report.
// An account which already exists is reported as already onboarded, not a failure, and
// a signature upload problem is logged but does not fail the run.
func (f *Flow) Run(ctx context.Context, subject *identity.Subject, displayName string) (report *saga.Report, err error) {
	if subject == nil {
		err = commonerrors.UndefinedVariable("subject")
		return
	}
	err = subject.Validate()
	if err != nil {
		return
	}
	orchestrator, err := saga.NewOrchestrator(f.loggers, f.steps(subject, displayName)...)
	if err != nil {
		return
	}
	return orchestrator.Run(ctx)
}

func (f *Flow) steps(subject *identity.Subject, displayName string) []*saga.Step {
	address := subject.Primary
	return []*saga.Step{
		{
			Name:        "create-user",
			Criticality: saga.Critical,
			Action: func(ctx context.Context) error {
				err := f.client.CreateUser(ctx, address, displayName)
				if commonerrors.Any(err, commonerrors.ErrConflict) {
					f.loggers.Log(fmt.Sprintf("[%v] is already onboarded", address))
					return nil
				}
				return err
			},
			AlreadyApplied: func(ctx context.Context) (bool, error) {
				return f.userExists(ctx, address)
			},
			RetryPolicy:     &f.cfg.Retry,
			RetriableErrors: []error{commonerrors.ErrTooManyRequests, commonerrors.ErrUnavailable},
		},
		{
			Name:        "set-signature",
			Criticality: saga.BestEffort,
			Action: func(ctx context.Context) error {
				path, err := f.renderer.Render(ctx, &signature.Data{Address: address, DisplayName: displayName})
				if err != nil {
					return err
				}
				return f.client.SetSendAsSignature(ctx, address, path)
			},
		},
	}
}

func (f *Flow) userExists(ctx context.Context, address identity.Address) (bool, error) {
	_, err := f.client.GetUser(ctx, address)
	switch {
	case err == nil:
		return true, nil
	case commonerrors.Any(err, commonerrors.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}
