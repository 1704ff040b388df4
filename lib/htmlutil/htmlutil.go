package htmlutil

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var innerWhitespace = regexp.MustCompile(`\s\s+`)

// MetaProperty returns the content of a <meta property="..."> tag
// (Open Graph style), falling back to <meta name="...">.
func MetaProperty(doc *goquery.Document, key string) string {
	if v, ok := doc.Find(fmt.Sprintf(`meta[property="%s"]`, key)).First().Attr("content"); ok {
		return CollapseWhitespace(v)
	}
	if v, ok := doc.Find(fmt.Sprintf(`meta[name="%s"]`, key)).First().Attr("content"); ok {
		return CollapseWhitespace(v)
	}
	return ""
}

// PageTitle returns the <title> text of the document, or the og:title
// meta content when the title tag is missing or empty.
func PageTitle(doc *goquery.Document) string {
	title := CollapseWhitespace(doc.Find("title").First().Text())
	if title == "" {
		title = MetaProperty(doc, "og:title")
	}
	return title
}

func CollapseWhitespace(s string) string {
	s = strings.TrimSpace(s)
	return innerWhitespace.ReplaceAllString(s, " ")
}
