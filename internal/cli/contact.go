package cli

import (
	"strings"

	"github.com/zostay/go-addr/pkg/addr"

	"github.com/pure-golang/mailchannels/mail"
)

// ParseContact reads `Name <email>` or a bare address. Input the parser
// rejects is passed through as a bare address; the provider validates it.
func ParseContact(s string) mail.Addressable {
	s = strings.TrimSpace(s)

	mb, err := addr.ParseEmailMailbox(s)
	if err != nil {
		return mail.Address(s)
	}
	if name := mb.DisplayName(); name != "" {
		return mail.Contact{Name: name, Email: mb.Address()}
	}
	return mail.Address(mb.Address())
}

// ParseContactList parses every value; nil when values is empty.
func ParseContactList(values []string) mail.AddressList {
	if len(values) == 0 {
		return nil
	}

	l := make(mail.List, len(values))
	for i, v := range values {
		l[i] = ParseContact(v)
	}
	return l
}
