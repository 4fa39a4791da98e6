package render

import (
	"bytes"
	"context"
	"html/template"

	"github.com/pkg/errors"
)

var _ Template = (*HTMLTemplate)(nil)

// HTMLTemplate is a Template backed by html/template.
// The plain text body is derived from the rendered HTML.
type HTMLTemplate struct {
	tmpl *template.Template
	data any
}

// NewHTMLTemplate binds data to tmpl.
func NewHTMLTemplate(tmpl *template.Template, data any) *HTMLTemplate {
	return &HTMLTemplate{tmpl: tmpl, data: data}
}

// ParseHTMLTemplate parses text as a template named name and binds data to it.
func ParseHTMLTemplate(name, text string, data any) (*HTMLTemplate, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse template %q", name)
	}
	return NewHTMLTemplate(tmpl, data), nil
}

// ParseHTMLTemplateFiles parses the named files; the first one is executed.
func ParseHTMLTemplateFiles(data any, filenames ...string) (*HTMLTemplate, error) {
	tmpl, err := template.ParseFiles(filenames...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse template files")
	}
	return NewHTMLTemplate(tmpl, data), nil
}

func (t *HTMLTemplate) Render(ctx context.Context, opts Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, t.data); err != nil {
		return "", errors.Wrapf(err, "failed to execute template %q", t.tmpl.Name())
	}

	if opts.PlainText {
		return PlainText(buf.String())
	}
	return buf.String(), nil
}
