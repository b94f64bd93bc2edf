package note

import (
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// extractTitle returns the text of the first level-1 heading, or "" when the
// body has none.
func extractTitle(body []byte) string {
	md := goldmark.New()
	root := md.Parser().Parse(gmtext.NewReader(body))

	var title string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		heading, ok := n.(*gmast.Heading)
		if !ok || heading.Level != 1 {
			return gmast.WalkContinue, nil
		}
		title = strings.TrimSpace(nodeText(heading, body))
		return gmast.WalkStop, nil
	})
	return title
}

// standardImageRefs extracts destinations of plain markdown images that
// point at local files. Remote URLs are not the converter's concern.
func standardImageRefs(body []byte) []string {
	md := goldmark.New()
	root := md.Parser().Parse(gmtext.NewReader(body))

	var refs []string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if img, ok := n.(*gmast.Image); ok {
			dest := string(img.Destination)
			if dest != "" && !strings.HasPrefix(dest, "http://") && !strings.HasPrefix(dest, "https://") {
				refs = append(refs, dest)
			}
		}
		return gmast.WalkContinue, nil
	})
	return refs
}

// nodeText flattens all text segments under a node.
func nodeText(n gmast.Node, source []byte) string {
	var sb strings.Builder
	_ = gmast.Walk(n, func(child gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if t, ok := child.(*gmast.Text); ok {
			sb.Write(t.Segment.Value(source))
		}
		return gmast.WalkContinue, nil
	})
	return sb.String()
}
