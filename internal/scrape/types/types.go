package types

import (
	"context"

	"github.com/PuerkitoBio/goquery"
)

// ProbeMode selects whether an existence probe follows redirects.
type ProbeMode int

const (
	// NoRedirects reports the first response as-is (used when guessing websites).
	NoRedirects ProbeMode = iota
	// FollowRedirects reports the final response after redirects (used when validating).
	FollowRedirects
)

// Prober issues a lightweight existence request (HEAD) and reports the status code.
type Prober interface {
	Probe(ctx context.Context, url string, mode ProbeMode) (status int, err error)
}

// PageFetcher retrieves a page and parses it into a document.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*goquery.Document, error)
}

// Link is an anchor found on a page, in document order.
type Link struct {
	Href string
	Text string
}

// Links returns every <a href> in doc in document order.
func Links(doc *goquery.Document) []Link {
	if doc == nil {
		return nil
	}
	var out []Link
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		out = append(out, Link{Href: href, Text: a.Text()})
	})
	return out
}
