// Package render turns templates into email bodies and hands them to a mail.Sender.
package render

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/pure-golang/mailchannels/mail"
)

// Options selects the output of a render.
type Options struct {
	// PlainText renders a text/plain body instead of HTML.
	PlainText bool
}

// Template is an email component that can render itself as HTML or plain text.
type Template interface {
	Render(ctx context.Context, opts Options) (string, error)
}

// Func adapts a function to Template.
type Func func(ctx context.Context, opts Options) (string, error)

func (f Func) Render(ctx context.Context, opts Options) (string, error) {
	return f(ctx, opts)
}

// Sender renders templates and sends the result through the wrapped mail.Sender.
type Sender struct {
	mail.Sender
}

// NewSender wraps s.
func NewSender(s mail.Sender) *Sender {
	return &Sender{Sender: s}
}

// SendTemplate renders tpl as HTML and as plain text, then sends both bodies
// with envelope. If either render fails nothing is sent.
func (s *Sender) SendTemplate(ctx context.Context, tpl Template, envelope mail.Envelope) error {
	email, err := Email(ctx, tpl, envelope)
	if err != nil {
		return err
	}
	return s.Sender.Send(ctx, email)
}

// Email renders both bodies of tpl concurrently and merges them with envelope.
func Email(ctx context.Context, tpl Template, envelope mail.Envelope) (mail.Email, error) {
	var html, text string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		html, err = tpl.Render(gctx, Options{})
		return err
	})
	g.Go(func() error {
		var err error
		text, err = tpl.Render(gctx, Options{PlainText: true})
		return err
	})
	if err := g.Wait(); err != nil {
		return mail.Email{}, err
	}

	return mail.Email{
		Envelope: envelope,
		Text:     text,
		HTML:     html,
	}, nil
}
