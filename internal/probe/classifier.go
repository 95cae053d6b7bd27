package probe

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/cases"

	"github.com/pastehound/pastehound/internal/model"
)

// Classifier applies the content heuristic to fetched pages.
// The marker lists are configuration, not code: each paste service has
// its own not-found and placeholder pages, so the phrases that identify
// them live in the service profile.
//
// Design decision: markers are matched after Unicode case folding
// rather than ASCII lowercasing because marker lists are user-supplied
// and services localize their boilerplate.
type Classifier struct {
	// notFound are folded phrases that mark an error page served
	// with a 200 status.
	notFound []string

	// placeholder are folded phrases that mark the service's own
	// boilerplate (empty paste, landing page, editor chrome).
	placeholder []string

	// caser performs Unicode case folding for comparisons.
	caser cases.Caser
}

// NewClassifier creates a Classifier from the profile's marker lists.
func NewClassifier(notFoundMarkers, placeholderMarkers []string) *Classifier {
	c := &Classifier{
		caser: cases.Fold(),
	}
	for _, m := range notFoundMarkers {
		c.notFound = append(c.notFound, c.caser.String(m))
	}
	for _, m := range placeholderMarkers {
		c.placeholder = append(c.placeholder, c.caser.String(m))
	}
	return c
}

// Classify returns the verdict for a response.
//
// The rules, in order:
//   - 404 means the slug is unclaimed: available.
//   - Any other non-2xx status is an error (and treated as no content).
//   - A 2xx body containing a not-found marker is an error page in
//     disguise: available.
//   - An empty 2xx body or one matching a placeholder marker is the
//     service's boilerplate: placeholder.
//   - Anything else is real content: a discovery.
func (c *Classifier) Classify(statusCode int, body []byte) model.Classification {
	if statusCode == 404 {
		return model.ClassAvailable
	}
	if statusCode < 200 || statusCode >= 300 {
		return model.ClassError
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return model.ClassPlaceholder
	}

	folded := c.caser.String(string(trimmed))

	for _, m := range c.notFound {
		if strings.Contains(folded, m) {
			return model.ClassAvailable
		}
	}
	for _, m := range c.placeholder {
		if strings.Contains(folded, m) {
			return model.ClassPlaceholder
		}
	}

	return model.ClassContent
}

// ExtractTitle returns the text of the first <title> element in the
// body, or empty string if none is found.
//
// Design decision: golang.org/x/net/html instead of a regex because it
// handles the malformed HTML real services serve, and because a title
// split across text nodes or carrying attributes defeats simple patterns.
func ExtractTitle(body []byte) string {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(findTitle(doc))
}

// findTitle walks the node tree depth-first looking for a title element.
func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		var sb strings.Builder
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				sb.WriteString(c.Data)
			}
		}
		return sb.String()
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if title := findTitle(c); title != "" {
			return title
		}
	}
	return ""
}
