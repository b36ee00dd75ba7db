// Package signature renders the outgoing mail signature of an account as a static HTML
// file ready to be handed to the directory's update-signature operation. The built in
// template can be swapped for an operator supplied one.
package signature

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/mitchellh/go-homedir"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/filesystem"
	"github.com/ARM-software/identity-lifecycle/identity"
	"github.com/ARM-software/identity-lifecycle/logs"
	"github.com/ARM-software/identity-lifecycle/scheduling"
)

const defaultTemplate = `<div style="font-family: Helvetica, Arial, sans-serif; font-size: 10pt; color: #333333;">
  <p>Kind regards,</p>
  <p>
    <strong>{{.DisplayName}}</strong><br/>{{if .JobTitle}}
    {{.JobTitle}}<br/>{{end}}
    <a href="mailto:{{.Address}}">{{.Address}}</a>
  </p>
</div>
`

// Data carries the account attributes a signature is rendered from.
type Data struct {
	// Address is the account the signature belongs to.
	Address identity.Address
	// DisplayName is the name shown in the signature. Defaults to the local part of
	// the address when blank.
	DisplayName string
	// JobTitle is shown under the name when set.
	JobTitle string
}

func (d *Data) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.Address, validation.Required),
	)
}

// Renderer implements IRenderer over a filesystem.
type Renderer struct {
	loggers logs.Loggers
	fs      filesystem.FS
	cfg     *Configuration
	output  string
}

// NewRenderer creates a renderer writing under the configured output directory. `~` in
// the configured paths is expanded.
func NewRenderer(loggers logs.Loggers, fs filesystem.FS, cfg *Configuration) (renderer *Renderer, err error) {
	if loggers == nil {
		err = commonerrors.ErrNoLogger
		return
	}
	if fs == nil {
		err = commonerrors.UndefinedVariable("filesystem")
		return
	}
	if cfg == nil {
		err = commonerrors.UndefinedVariable("signature configuration")
		return
	}
	err = cfg.Validate()
	if err != nil {
		err = commonerrors.WrapIfNotCommonError(commonerrors.ErrInvalid, err, "invalid signature configuration")
		return
	}
	output, err := homedir.Expand(cfg.OutputDirectory)
	if err != nil {
		return
	}
	renderer = &Renderer{
		loggers: loggers,
		fs:      fs,
		cfg:     cfg,
		output:  output,
	}
	return
}

// Render writes the signature described by data and returns the path of the rendered
// file, named after the account address.
func (r *Renderer) Render(ctx context.Context, data *Data) (path string, err error) {
	err = scheduling.DetermineContextError(ctx)
	if err != nil {
		return
	}
	if data == nil {
		err = commonerrors.UndefinedVariable("signature data")
		return
	}
	err = data.Validate()
	if err != nil {
		err = commonerrors.WrapIfNotCommonError(commonerrors.ErrInvalid, err, "invalid signature data")
		return
	}
	source, err := r.templateSource()
	if err != nil {
		return
	}
	tmpl, subErr := template.New("signature").Parse(source)
	if subErr != nil {
		err = commonerrors.WrapError(commonerrors.ErrInvalid, subErr, "invalid signature template")
		return
	}
	view := *data
	if strings.TrimSpace(view.DisplayName) == "" {
		view.DisplayName = view.Address.LocalPart()
	}
	var rendered bytes.Buffer
	subErr = tmpl.Execute(&rendered, &view)
	if subErr != nil {
		err = commonerrors.WrapError(commonerrors.ErrInvalid, subErr, "the signature template could not be executed")
		return
	}
	err = r.fs.MkDir(r.output)
	if err != nil {
		return
	}
	path = filepath.Join(r.output, fmt.Sprintf("%v.html", data.Address))
	err = r.fs.WriteFileWithContext(ctx, path, rendered.Bytes(), 0644)
	if err != nil {
		path = ""
		return
	}
	r.loggers.Log(fmt.Sprintf("Rendered the signature of [%v] to '%v'", data.Address, path))
	return
}

func (r *Renderer) templateSource() (source string, err error) {
	if strings.TrimSpace(r.cfg.TemplateFile) == "" {
		source = defaultTemplate
		return
	}
	file, err := homedir.Expand(r.cfg.TemplateFile)
	if err != nil {
		return
	}
	if !r.fs.Exists(file) {
		err = commonerrors.Newf(commonerrors.ErrNotFound, "the signature template '%v' does not exist", file)
		return
	}
	content, err := r.fs.ReadFile(file)
	if err != nil {
		return
	}
	source = string(content)
	return
}
