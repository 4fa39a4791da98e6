package render

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// skipInText matches elements that never show up in the plain text body.
var skipInText = cascadia.MustCompile(`head, title, style, script, img, [data-skip-in-text="true"]`)

// blockBreaks is the number of line breaks around each block element.
var blockBreaks = map[atom.Atom]int{
	atom.P:          2,
	atom.H1:         2,
	atom.H2:         2,
	atom.H3:         2,
	atom.H4:         2,
	atom.H5:         2,
	atom.H6:         2,
	atom.Blockquote: 2,
	atom.Pre:        2,
	atom.Ul:         2,
	atom.Ol:         2,
	atom.Table:      2,
	atom.Hr:         2,
	atom.Div:        1,
	atom.Section:    1,
	atom.Article:    1,
	atom.Header:     1,
	atom.Footer:     1,
	atom.Main:       1,
	atom.Nav:        1,
	atom.Aside:      1,
	atom.Tr:         1,
	atom.Td:         1,
	atom.Th:         1,
	atom.Li:         1,
}

var uppercased = map[atom.Atom]bool{
	atom.H1: true, atom.H2: true, atom.H3: true,
	atom.H4: true, atom.H5: true, atom.H6: true,
}

const hrWidth = 40

// PlainText converts an HTML email body to its text/plain rendition.
// Links keep their target after the text; headings are uppercased.
func PlainText(body string) (string, error) {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "failed to parse html")
	}

	w := &textWriter{}
	w.walk(doc)
	return strings.TrimSpace(w.buf.String()), nil
}

type textWriter struct {
	buf          strings.Builder
	started      bool
	breaks       int // line breaks owed before the next text
	pendingSpace bool
	upper        int
	pre          int
}

func (w *textWriter) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.text(n.Data)
		return
	case html.ElementNode:
		if skipInText.Match(n) {
			return
		}
	case html.DocumentNode:
	default:
		return
	}

	switch n.DataAtom {
	case atom.Br:
		if w.started {
			w.breaks++
		}
		return
	case atom.Hr:
		w.block(blockBreaks[atom.Hr])
		w.text(strings.Repeat("-", hrWidth))
		w.block(blockBreaks[atom.Hr])
		return
	case atom.Li:
		w.block(blockBreaks[atom.Li])
		w.text("- ")
		w.walkChildren(n)
		w.block(blockBreaks[atom.Li])
		return
	case atom.A:
		w.walkChildren(n)
		if href := attr(n, "href"); href != "" && !strings.HasPrefix(href, "#") && href != textContent(n) {
			w.pendingSpace = true
			w.text(href)
		}
		return
	}

	breaks := blockBreaks[n.DataAtom]
	w.block(breaks)
	if uppercased[n.DataAtom] {
		w.upper++
		defer func() { w.upper-- }()
	}
	if n.DataAtom == atom.Pre {
		w.pre++
		defer func() { w.pre-- }()
	}
	w.walkChildren(n)
	w.block(breaks)
}

func (w *textWriter) walkChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
}

// block asks for at least n line breaks before the next text.
func (w *textWriter) block(n int) {
	if w.started && n > w.breaks {
		w.breaks = n
	}
}

func (w *textWriter) text(s string) {
	if w.upper > 0 {
		s = strings.ToUpper(s)
	}

	if w.pre > 0 {
		w.emit(s)
		return
	}

	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s != "" {
			w.pendingSpace = true
		}
		return
	}

	if isSpace(s[0]) {
		w.pendingSpace = true
	}
	w.emit(strings.Join(fields, " "))
	w.pendingSpace = isSpace(s[len(s)-1])
}

func (w *textWriter) emit(s string) {
	if s == "" {
		return
	}

	switch {
	case w.breaks > 0:
		w.buf.WriteString(strings.Repeat("\n", w.breaks))
	case w.pendingSpace && w.started:
		w.buf.WriteByte(' ')
	}

	w.breaks = 0
	w.pendingSpace = false
	w.started = true
	w.buf.WriteString(s)
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
