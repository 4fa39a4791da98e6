package mail

import "strings"

var (
	_ Addressable = Address("")
	_ AddressList = Address("")
	_ Addressable = Contact{}
	_ AddressList = Contact{}
	_ AddressList = List(nil)
)

// Contact is an email address with an optional display name.
type Contact struct {
	Name  string `json:"name,omitempty"` // "John Doe"
	Email string `json:"email"`          // "john@example.com"
}

// Addressable is a single contact in any of its accepted shapes.
type Addressable interface {
	Contact() Contact
}

// AddressList is one contact or an ordered sequence of contacts.
type AddressList interface {
	Contacts() []Contact
}

// Address is a bare email address without a display name.
type Address string

func (a Address) Contact() Contact    { return Contact{Email: string(a)} }
func (a Address) Contacts() []Contact { return []Contact{a.Contact()} }

func (c Contact) Contact() Contact    { return c }
func (c Contact) Contacts() []Contact { return []Contact{c} }

// List is an ordered sequence of contacts of mixed shapes.
type List []Addressable

// Contacts normalizes every element, keeping the input order.
func (l List) Contacts() []Contact {
	contacts := make([]Contact, 0, len(l))
	for _, a := range l {
		contacts = append(contacts, NormalizeContact(a))
	}
	return contacts
}

// Addresses builds a List from bare addresses.
func Addresses(addrs ...string) List {
	l := make(List, len(addrs))
	for i, addr := range addrs {
		l[i] = Address(addr)
	}
	return l
}

// NormalizeContact narrows a contact shorthand to a Contact.
// The address is not validated. A nil input yields the zero Contact.
func NormalizeContact(a Addressable) Contact {
	if a == nil {
		return Contact{}
	}
	return a.Contact()
}

// NormalizeContactList narrows a contact list shorthand to a slice of Contacts
// in input order. A nil input yields nil.
func NormalizeContactList(l AddressList) []Contact {
	if l == nil {
		return nil
	}
	return l.Contacts()
}

// FormatContact renders c as "Name <email>", or the bare email when unnamed.
func FormatContact(c Contact) string {
	if c.Name != "" {
		return c.Name + " <" + c.Email + ">"
	}
	return c.Email
}

// FormatContactList formats a list of contacts joined with ", ".
func FormatContactList(contacts []Contact) string {
	formatted := make([]string, len(contacts))
	for i, c := range contacts {
		formatted[i] = FormatContact(c)
	}
	return strings.Join(formatted, ", ")
}
