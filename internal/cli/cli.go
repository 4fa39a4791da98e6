// Package cli implements the mailsend command.
package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pure-golang/mailchannels/env"
	"github.com/pure-golang/mailchannels/logger"
	"github.com/pure-golang/mailchannels/mail"
	"github.com/pure-golang/mailchannels/mail/mailchannels"
	"github.com/pure-golang/mailchannels/mail/render"
	"github.com/pure-golang/mailchannels/metrics"
	"github.com/pure-golang/mailchannels/tracing"
	"github.com/pure-golang/mailchannels/tracing/otlp"
)

type options struct {
	envFiles []string

	from    string
	to      []string
	cc      []string
	bcc     []string
	replyTo string
	subject string

	text     string
	html     string
	template string
	data     string
}

// NewCommand builds the mailsend root command.
func NewCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "mailsend",
		Short: "Send a transactional email through MailChannels",
		Long: `mailsend sends one email through the MailChannels API.

Settings come from the environment (and .env): MAIL_DEVELOPMENT,
MAILCHANNELS_ENDPOINT, DKIM_DOMAIN, DKIM_SELECTOR, DKIM_PRIVATE_KEY,
LOG_PROVIDER, LOG_LEVEL, TRACING_ENDPOINT, METRICS_PORT.

Example:
  mailsend --from "Shop <shop@example.com>" --to a@b.com --subject Hi --text "Hello"
  mailsend --from shop@example.com --to a@b.com --subject Welcome \
    --template welcome.html --data welcome.json`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&opts.envFiles, "env-file", []string{env.DefaultEnvFile}, "dotenv files to load")
	f.StringVar(&opts.from, "from", "", "sender, `Name <email>` or bare email")
	f.StringArrayVar(&opts.to, "to", nil, "recipient (repeatable)")
	f.StringArrayVar(&opts.cc, "cc", nil, "carbon copy recipient (repeatable)")
	f.StringArrayVar(&opts.bcc, "bcc", nil, "blind carbon copy recipient (repeatable)")
	f.StringVar(&opts.replyTo, "reply-to", "", "reply-to contact")
	f.StringVar(&opts.subject, "subject", "", "subject line")
	f.StringVar(&opts.text, "text", "", "plain text body")
	f.StringVar(&opts.html, "html", "", "HTML body")
	f.StringVar(&opts.template, "template", "", "html/template file rendered into both bodies")
	f.StringVar(&opts.data, "data", "", "JSON file with template data")

	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("subject")
	cmd.MarkFlagsMutuallyExclusive("template", "text")
	cmd.MarkFlagsMutuallyExclusive("template", "html")

	return cmd
}

// Execute runs the command with os.Args.
func Execute(ctx context.Context) error {
	return NewCommand().ExecuteContext(ctx)
}

func run(ctx context.Context, opts *options) error {
	cfg, err := LoadConfig(opts.envFiles...)
	if err != nil {
		return err
	}

	logger.InitDefault(cfg.Logger)

	if cfg.Tracing.Enabled() {
		provider, err := tracing.Init(otlp.NewProviderBuilder(cfg.Tracing))
		if err != nil {
			logger.WithErr(err).Warn("tracing disabled")
		}
		defer closeQuietly("tracing", provider)
	}

	if cfg.Metrics.Enabled() {
		closer, err := metrics.InitDefault(cfg.Metrics)
		if err != nil {
			return err
		}
		defer closeQuietly("metrics", closer)
	}

	sender := mailchannels.NewSender(cfg.Mail, nil)
	defer closeQuietly("sender", sender)

	envelope := mail.Envelope{
		From:    ParseContact(opts.from),
		To:      ParseContactList(opts.to),
		Cc:      ParseContactList(opts.cc),
		Bcc:     ParseContactList(opts.bcc),
		Subject: opts.subject,
	}
	if opts.replyTo != "" {
		envelope.ReplyTo = ParseContact(opts.replyTo)
	}

	if opts.template != "" {
		tpl, err := loadTemplate(opts.template, opts.data)
		if err != nil {
			return err
		}
		err = render.NewSender(sender).SendTemplate(ctx, tpl, envelope)
		return logResult(ctx, envelope, err)
	}

	err = sender.Send(ctx, mail.Email{Envelope: envelope, Text: opts.text, HTML: opts.html})
	return logResult(ctx, envelope, err)
}

func loadTemplate(path, dataPath string) (*render.HTMLTemplate, error) {
	var data any
	if dataPath != "" {
		raw, err := os.ReadFile(dataPath)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read template data")
		}
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, errors.Wrap(err, "failed to decode template data")
		}
	}

	return render.ParseHTMLTemplateFiles(data, path)
}

func logResult(ctx context.Context, envelope mail.Envelope, err error) error {
	to := mail.FormatContactList(mail.NormalizeContactList(envelope.To))
	if err != nil {
		logger.FromContextWithErr(ctx, err).Error("failed to send email", "to", to, "subject", envelope.Subject)
		return err
	}
	logger.FromContext(ctx).Info("email sent", "to", to, "subject", envelope.Subject)
	return nil
}

func closeQuietly(name string, c io.Closer) {
	if err := c.Close(); err != nil {
		logger.WithErr(err).Warn("failed to close " + name)
	}
}
