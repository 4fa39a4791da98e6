package mailchannels

import "github.com/pure-golang/mailchannels/mail"

// DefaultEndpoint is the MailChannels transactional send API.
const DefaultEndpoint = "https://api.mailchannels.net/tx/v1/send"

// Config contains MailChannels sender parameters.
type Config struct {
	Development bool   `envconfig:"MAIL_DEVELOPMENT" default:"false"`                                   // log emails instead of sending
	Endpoint    string `envconfig:"MAILCHANNELS_ENDPOINT" default:"https://api.mailchannels.net/tx/v1/send"` // send API url

	// Default DKIM signing config, applied only when all three are set.
	DKIMDomain     string `envconfig:"DKIM_DOMAIN"`
	DKIMSelector   string `envconfig:"DKIM_SELECTOR"`
	DKIMPrivateKey string `envconfig:"DKIM_PRIVATE_KEY"`
}

// DefaultDKIM returns the configured DKIM defaults, or nil if any part is missing.
func (c Config) DefaultDKIM() *mail.DKIM {
	if c.DKIMDomain == "" || c.DKIMSelector == "" || c.DKIMPrivateKey == "" {
		return nil
	}
	return &mail.DKIM{
		Domain:     c.DKIMDomain,
		Selector:   c.DKIMSelector,
		PrivateKey: c.DKIMPrivateKey,
	}
}
