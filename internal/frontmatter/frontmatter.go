// Package frontmatter strips YAML frontmatter from source notes and emits
// the regenerated Hugo frontmatter block.
package frontmatter

import (
	"bytes"
)

// Split separates a YAML frontmatter block (`---` delimited) from the
// Markdown body.
//
// If the document does not start with a frontmatter delimiter, had is false
// and body is the full input. A start delimiter without a closing delimiter
// is tolerated: the whole input is treated as body. The source block is
// never parsed; the converter always regenerates frontmatter from scratch.
func Split(content []byte) (frontmatter []byte, body []byte, had bool) {
	nl := detectNewline(content)

	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false
	}

	start := len(open)
	closeLine := []byte("---" + nl)
	if bytes.HasPrefix(content[start:], closeLine) {
		return []byte{}, content[start+len(closeLine):], true
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[start:], closeSeq)
	if idx < 0 {
		// Unterminated block, keep the input intact.
		return nil, content, false
	}

	end := start + idx + len(nl)
	bodyStart := start + idx + len(closeSeq)
	return content[start:end], content[bodyStart:], true
}

func detectNewline(content []byte) string {
	for i := 0; i+1 < len(content); i++ {
		if content[i] == '\r' && content[i+1] == '\n' {
			return "\r\n"
		}
		if content[i] == '\n' {
			return "\n"
		}
	}
	return "\n"
}
