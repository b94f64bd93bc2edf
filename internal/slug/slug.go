// Package slug derives filesystem- and URL-safe identifiers from post titles.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonWord    = regexp.MustCompile(`[^\w\s-]`)
	hyphenRuns = regexp.MustCompile(`[-\s]+`)
)

// foldDiacritics decomposes accented characters and strips the combining
// marks, so "Café" slugs the same as "Cafe".
var foldDiacritics = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make converts a title to a slug: unicode folding, lowercase, punctuation
// removed, whitespace and hyphen runs collapsed to a single hyphen, leading
// and trailing hyphens trimmed.
//
//	Make("My Blog Post")   == "my-blog-post"
//	Make("Hello, World!")  == "hello-world"
func Make(title string) string {
	folded, _, err := transform.String(foldDiacritics, title)
	if err != nil {
		folded = title
	}

	s := strings.ToLower(folded)
	s = nonWord.ReplaceAllString(s, "")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
