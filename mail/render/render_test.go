package render

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pure-golang/mailchannels/mail"
)

// recordingSender keeps every email it is asked to send.
type recordingSender struct {
	mx     sync.Mutex
	emails []mail.Email
}

func (r *recordingSender) Send(_ context.Context, emails ...mail.Email) error {
	r.mx.Lock()
	defer r.mx.Unlock()
	r.emails = append(r.emails, emails...)
	return nil
}

func (r *recordingSender) Close() error { return nil }

func testEnvelope() mail.Envelope {
	return mail.Envelope{
		From:    mail.Address("x@y.com"),
		To:      mail.Address("a@b.com"),
		Subject: "Hi",
	}
}

func TestSender_SendTemplate(t *testing.T) {
	var mx sync.Mutex
	calls := map[bool]int{}
	tpl := Func(func(_ context.Context, opts Options) (string, error) {
		mx.Lock()
		calls[opts.PlainText]++
		mx.Unlock()

		if opts.PlainText {
			return "Hello", nil
		}
		return "<p>Hello</p>", nil
	})

	rec := &recordingSender{}
	sender := NewSender(rec)

	err := sender.SendTemplate(context.Background(), tpl, testEnvelope())
	require.NoError(t, err)

	assert.Equal(t, map[bool]int{false: 1, true: 1}, calls)
	require.Len(t, rec.emails, 1)
	assert.Equal(t, "Hello", rec.emails[0].Text)
	assert.Equal(t, "<p>Hello</p>", rec.emails[0].HTML)
	assert.Equal(t, testEnvelope(), rec.emails[0].Envelope)
}

func TestSender_SendTemplate_RenderError(t *testing.T) {
	renderErr := assert.AnError

	for _, failPlainText := range []bool{false, true} {
		tpl := Func(func(_ context.Context, opts Options) (string, error) {
			if opts.PlainText == failPlainText {
				return "", renderErr
			}
			return "ok", nil
		})

		rec := &recordingSender{}
		err := NewSender(rec).SendTemplate(context.Background(), tpl, testEnvelope())

		assert.Same(t, renderErr, err)
		assert.Empty(t, rec.emails)
	}
}

func TestEmail_RendersConcurrently(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(2)
	tpl := Func(func(_ context.Context, opts Options) (string, error) {
		// each render waits for the other one to start
		wg.Done()
		wg.Wait()
		return "body", nil
	})

	done := make(chan error, 1)
	go func() {
		_, err := Email(context.Background(), tpl, testEnvelope())
		done <- err
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("renders did not run concurrently")
	}
}

func TestSender_PassesThroughSend(t *testing.T) {
	rec := &recordingSender{}
	sender := NewSender(rec)

	email := mail.Email{Envelope: testEnvelope(), Text: "plain"}
	require.NoError(t, sender.Send(context.Background(), email))
	require.NoError(t, sender.Close())

	assert.Equal(t, []mail.Email{email}, rec.emails)
}
