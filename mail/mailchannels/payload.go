package mailchannels

import "github.com/pure-golang/mailchannels/mail"

const (
	contentTypeText = "text/plain"
	contentTypeHTML = "text/html"
)

// payload is the JSON body of a send request.
// Absent optional values are omitted, never sent as null or empty.
type payload struct {
	From             mail.Contact      `json:"from"`
	Subject          string            `json:"subject"`
	Personalizations []personalization `json:"personalizations"`
	Content          []content         `json:"content"`
}

type personalization struct {
	To             []mail.Contact `json:"to"`
	Cc             []mail.Contact `json:"cc,omitempty"`
	Bcc            []mail.Contact `json:"bcc,omitempty"`
	ReplyTo        *mail.Contact  `json:"reply_to,omitempty"`
	DKIMDomain     string         `json:"dkim_domain,omitempty"`
	DKIMPrivateKey string         `json:"dkim_private_key,omitempty"`
	DKIMSelector   string         `json:"dkim_selector,omitempty"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// buildPayload shapes email for the API. dkim is used when the email carries none.
func buildPayload(email mail.Email, dkim *mail.DKIM) payload {
	p := personalization{
		To:  mail.NormalizeContactList(email.To),
		Cc:  mail.NormalizeContactList(email.Cc),
		Bcc: mail.NormalizeContactList(email.Bcc),
	}
	if replyTo := mail.NormalizeContact(email.ReplyTo); replyTo != (mail.Contact{}) {
		p.ReplyTo = &replyTo
	}

	if email.DKIM != nil {
		dkim = email.DKIM
	}
	if dkim != nil {
		p.DKIMDomain = dkim.Domain
		p.DKIMPrivateKey = dkim.PrivateKey
		p.DKIMSelector = dkim.Selector
	}

	// plain text always comes first
	contents := []content{{Type: contentTypeText, Value: email.Text}}
	if email.HTML != "" {
		contents = append(contents, content{Type: contentTypeHTML, Value: email.HTML})
	}

	return payload{
		From:             mail.NormalizeContact(email.From),
		Subject:          email.Subject,
		Personalizations: []personalization{p},
		Content:          contents,
	}
}
