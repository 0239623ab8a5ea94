package content

import (
	"github.com/microcosm-cc/bluemonday"
)

var htmlPolicy = newHTMLPolicy()

func newHTMLPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").OnElements("p", "span", "div", "ul", "ol", "li", "pre", "code", "blockquote")
	p.AllowAttrs("target").Matching(bluemonday.SpaceSeparatedTokens).OnElements("a")
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// SanitizeHTML strips scripts, event handlers and unsafe URLs from post bodies,
// including markup pasted from word processors.
func SanitizeHTML(html string) string {
	return htmlPolicy.Sanitize(html)
}
