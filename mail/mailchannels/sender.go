package mailchannels

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/pure-golang/mailchannels/logger"
	"github.com/pure-golang/mailchannels/mail"
	"github.com/pure-golang/mailchannels/mail/console"
)

var _ mail.Sender = (*Sender)(nil)

// Sender implements mail.Sender on top of the MailChannels HTTP API.
type Sender struct {
	mx     sync.RWMutex
	cfg    Config
	client *http.Client
	tracer trace.Tracer
	dev    *console.Sender
	closed bool
}

// SenderOptions contains options for creating a Sender.
type SenderOptions struct {
	// HTTPClient performs the API calls. Timeouts belong here.
	HTTPClient *http.Client
	// Logger receives development mode output.
	Logger *slog.Logger
	// TracerProvider defaults to the global one.
	TracerProvider trace.TracerProvider
}

// NewSender creates a new MailChannels Sender.
func NewSender(cfg Config, options *SenderOptions) *Sender {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}

	var opts SenderOptions
	if options != nil {
		opts = *options
	}
	if opts.TracerProvider == nil {
		opts.TracerProvider = otel.GetTracerProvider()
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport, otelhttp.WithTracerProvider(opts.TracerProvider)),
		}
	}

	return &Sender{
		cfg:    cfg,
		client: opts.HTTPClient,
		tracer: opts.TracerProvider.Tracer(instrumentationName),
		dev:    console.NewSender(&console.SenderOptions{Logger: opts.Logger}),
	}
}

// Send sends emails one by one and stops at the first failure.
func (s *Sender) Send(ctx context.Context, emails ...mail.Email) error {
	for _, email := range emails {
		if err := s.send(ctx, email); err != nil {
			return err
		}
	}
	return nil
}

// send sends a single email.
func (s *Sender) send(ctx context.Context, email mail.Email) error {
	s.mx.RLock()
	closed := s.closed
	s.mx.RUnlock()
	if closed {
		return ErrClosed
	}

	if s.cfg.Development {
		return s.dev.Send(ctx, email)
	}

	ctx, span := s.tracer.Start(ctx, "MailChannels.Send", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	started := time.Now()
	status := statusFailed
	defer func() {
		attrs := metric.WithAttributes(attribute.String("status", status))
		sendCount.Add(ctx, 1, attrs)
		sendTimeHist.Record(ctx, time.Since(started).Milliseconds(), attrs)
	}()

	p := buildPayload(email, s.cfg.DefaultDKIM())
	pers := p.Personalizations[0]

	span.SetAttributes(
		attribute.String("mailchannels.from", p.From.Email),
		attribute.String("mailchannels.subject", p.Subject),
		attribute.Int("mailchannels.to_count", len(pers.To)),
		attribute.Int("mailchannels.cc_count", len(pers.Cc)),
		attribute.Int("mailchannels.bcc_count", len(pers.Bcc)),
		attribute.Bool("mailchannels.dkim", pers.DKIMDomain != ""),
		attribute.Bool("mailchannels.html", len(p.Content) > 1),
	)

	body, err := json.Marshal(p)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to marshal payload")
		return errors.Wrap(err, "failed to marshal payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create request")
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		// transport errors reach the caller untouched
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.FromContext(ctx).Debug("failed to close response body", "error", err)
		}
	}()

	span.SetAttributes(attribute.Int("http.response.status", resp.StatusCode))

	if resp.StatusCode != http.StatusAccepted {
		text, err := io.ReadAll(resp.Body)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to read response body")
			return err
		}

		status = statusRejected
		rejection := &DeliveryError{StatusCode: resp.StatusCode, Body: string(text)}
		span.RecordError(rejection)
		span.SetStatus(codes.Error, rejection.Error())
		return rejection
	}

	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)

	status = statusDelivered
	span.SetStatus(codes.Ok, "")
	return nil
}

// Close closes the sender. Further sends fail with ErrClosed.
func (s *Sender) Close() error {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.dev.Close()
}
