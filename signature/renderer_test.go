/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package signature_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/commonerrors/errortest"
	"github.com/ARM-software/identity-lifecycle/filesystem"
	"github.com/ARM-software/identity-lifecycle/identity"
	"github.com/ARM-software/identity-lifecycle/logs"
	"github.com/ARM-software/identity-lifecycle/signature"
)

func newTestRenderer(t *testing.T, fs filesystem.FS, cfg *signature.Configuration) *signature.Renderer {
	loggers, err := logs.NewNoopLogger("Test")
	require.NoError(t, err)
	renderer, err := signature.NewRenderer(loggers, fs, cfg)
	require.NoError(t, err)
	return renderer
}

func TestNewRendererValidation(t *testing.T) {
	defer goleak.VerifyNone(t)
	fs := filesystem.NewInMemoryFileSystem()
	loggers, err := logs.NewNoopLogger("Test")
	require.NoError(t, err)

	_, err = signature.NewRenderer(nil, fs, signature.DefaultConfiguration())
	errortest.AssertError(t, err, commonerrors.ErrNoLogger)
	_, err = signature.NewRenderer(loggers, nil, signature.DefaultConfiguration())
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
	_, err = signature.NewRenderer(loggers, fs, nil)
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
	_, err = signature.NewRenderer(loggers, fs, &signature.Configuration{})
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
}

func TestRenderDefaultTemplate(t *testing.T) {
	defer goleak.VerifyNone(t)
	fs := filesystem.NewInMemoryFileSystem()
	renderer := newTestRenderer(t, fs, &signature.Configuration{OutputDirectory: "/signatures"})
	name := faker.Name()

	path, err := renderer.Render(context.Background(), &signature.Data{
		Address:     "jane.doe@example.com",
		DisplayName: name,
		JobTitle:    "Principal Engineer",
	})
	require.NoError(t, err)
	assert.Equal(t, "/signatures/jane.doe@example.com.html", path)

	content, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), fmt.Sprintf("<strong>%v</strong>", name))
	assert.Contains(t, string(content), "Principal Engineer")
	assert.Contains(t, string(content), "mailto:jane.doe@example.com")
}

func TestRenderFallsBackToLocalPart(t *testing.T) {
	defer goleak.VerifyNone(t)
	fs := filesystem.NewInMemoryFileSystem()
	renderer := newTestRenderer(t, fs, &signature.Configuration{OutputDirectory: "/signatures"})

	path, err := renderer.Render(context.Background(), &signature.Data{Address: "jane.doe@example.com"})
	require.NoError(t, err)
	content, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<strong>jane.doe</strong>")
}

func TestRenderEscapesAttributes(t *testing.T) {
	defer goleak.VerifyNone(t)
	fs := filesystem.NewInMemoryFileSystem()
	renderer := newTestRenderer(t, fs, &signature.Configuration{OutputDirectory: "/signatures"})

	path, err := renderer.Render(context.Background(), &signature.Data{
		Address:     "jane.doe@example.com",
		DisplayName: `Jane <script>alert("doe")</script>`,
	})
	require.NoError(t, err)
	content, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "<script>")
	assert.Contains(t, string(content), "&lt;script&gt;")
}

func TestRenderTemplateOverride(t *testing.T) {
	defer goleak.VerifyNone(t)
	fs := filesystem.NewInMemoryFileSystem()
	require.NoError(t, fs.WriteFile("/etc/lifecycle/signature.html.tmpl", []byte(`<p>{{.DisplayName}} ({{.Address}})</p>`), 0644))
	renderer := newTestRenderer(t, fs, &signature.Configuration{
		TemplateFile:    "/etc/lifecycle/signature.html.tmpl",
		OutputDirectory: "/signatures",
	})

	path, err := renderer.Render(context.Background(), &signature.Data{
		Address:     "jane.doe@example.com",
		DisplayName: "Jane Doe",
	})
	require.NoError(t, err)
	content, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<p>Jane Doe (jane.doe@example.com)</p>", string(content))
	assert.NotContains(t, string(content), "Kind regards")
}

func TestRenderErrors(t *testing.T) {
	defer goleak.VerifyNone(t)
	fs := filesystem.NewInMemoryFileSystem()

	tests := []struct {
		name          string
		cfg           *signature.Configuration
		data          *signature.Data
		expectedError error
	}{
		{
			name:          "nil data",
			cfg:           &signature.Configuration{OutputDirectory: "/signatures"},
			expectedError: commonerrors.ErrUndefined,
		},
		{
			name:          "blank address",
			cfg:           &signature.Configuration{OutputDirectory: "/signatures"},
			data:          &signature.Data{DisplayName: "Jane Doe"},
			expectedError: commonerrors.ErrInvalid,
		},
		{
			name:          "missing template override",
			cfg:           &signature.Configuration{TemplateFile: "/missing.tmpl", OutputDirectory: "/signatures"},
			data:          &signature.Data{Address: "jane.doe@example.com"},
			expectedError: commonerrors.ErrNotFound,
		},
		{
			name:          "malformed template",
			cfg:           &signature.Configuration{TemplateFile: "/broken.tmpl", OutputDirectory: "/signatures"},
			data:          &signature.Data{Address: "jane.doe@example.com"},
			expectedError: commonerrors.ErrInvalid,
		},
		{
			name:          "template referencing unknown field",
			cfg:           &signature.Configuration{TemplateFile: "/unknown-field.tmpl", OutputDirectory: "/signatures"},
			data:          &signature.Data{Address: "jane.doe@example.com"},
			expectedError: commonerrors.ErrInvalid,
		},
	}
	require.NoError(t, fs.WriteFile("/broken.tmpl", []byte(`{{.DisplayName`), 0644))
	require.NoError(t, fs.WriteFile("/unknown-field.tmpl", []byte(`{{.Nope}}`), 0644))

	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			renderer := newTestRenderer(t, fs, test.cfg)
			_, err := renderer.Render(context.Background(), test.data)
			errortest.AssertError(t, err, test.expectedError)
		})
	}

	t.Run("cancelled context", func(t *testing.T) {
		renderer := newTestRenderer(t, fs, &signature.Configuration{OutputDirectory: "/signatures"})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := renderer.Render(ctx, &signature.Data{Address: identity.Address(faker.Email())})
		errortest.AssertError(t, err, commonerrors.ErrCancelled)
	})
}
