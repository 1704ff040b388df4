package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, page string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func TestMetaProperty(t *testing.T) {
	doc := parse(t, `<html><head>
<meta property="og:image" content=" https://example.com/a.jpg ">
<meta name="description" content="a  plain
description">
</head></html>`)

	require.Equal(t, "https://example.com/a.jpg", MetaProperty(doc, "og:image"))
	require.Equal(t, "a plain description", MetaProperty(doc, "description"))
	require.Equal(t, "", MetaProperty(doc, "og:title"))
}

func TestPageTitle(t *testing.T) {
	doc := parse(t, `<html><head><title>  Braised   Leeks </title></head></html>`)
	require.Equal(t, "Braised Leeks", PageTitle(doc))

	doc = parse(t, `<html><head><meta property="og:title" content="Fallback Title"></head></html>`)
	require.Equal(t, "Fallback Title", PageTitle(doc))
}

func TestCollapseWhitespace(t *testing.T) {
	require.Equal(t, "a b c", CollapseWhitespace("  a \t b \n\n c "))
	require.Equal(t, "", CollapseWhitespace(" \n "))
}
