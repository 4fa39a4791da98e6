package mail

import (
	"context"
	"io"
)

// Sender delivers emails.
type Sender interface {
	Send(ctx context.Context, emails ...Email) error
	io.Closer
}

// Envelope is everything about an email except its body.
type Envelope struct {
	From    Addressable
	To      AddressList
	Cc      AddressList // optional
	Bcc     AddressList // optional
	ReplyTo Addressable // optional
	Subject string

	// DKIM overrides the sender's default signing config (optional).
	DKIM *DKIM
}

// Email represents an email message.
type Email struct {
	Envelope

	Text string // Plain text body
	HTML string // HTML body (optional)
}

// DKIM holds the signing parameters attached to an outgoing message.
type DKIM struct {
	Domain     string
	Selector   string
	PrivateKey string
}
