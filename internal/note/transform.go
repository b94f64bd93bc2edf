// Package note rewrites Obsidian-flavored markdown into Hugo-safe markdown.
//
// Obsidian wikilink syntax (`[[Target]]`, `[[Target|Display]]`) and embed
// syntax (`![[name.png]]`) is not CommonMark, so rewriting happens with
// regular expressions before any markdown-level analysis; goldmark is used
// afterwards for AST-based inspection (title, standard image references).
package note

import (
	"path/filepath"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/vaultpress/internal/frontmatter"
)

var (
	// ![[name]] embeds are rewritten before wikilinks so the embed's
	// brackets are gone when the wikilink pattern runs.
	embedPattern = regexp.MustCompile(`!\[\[([^\[\]]+)\]\]`)

	// [[Target]] or [[Target|Display]]. Unbalanced brackets never match
	// and are left in the body untouched.
	wikilinkPattern = regexp.MustCompile(`\[\[([^\]|]+)(?:\|([^\]]+))?\]\]`)
)

// Result is the output of transforming one note.
type Result struct {
	Title string
	Body  string

	// Images lists Obsidian-embedded image names in order of first
	// occurrence. Duplicates are kept; the emitter copies each name once.
	Images []string

	// StandardImages lists relative destinations of plain markdown images
	// (`![alt](path)`). These are deliberately not copied; the converter
	// surfaces them at debug level so the gap stays visible.
	StandardImages []string
}

// Transform rewrites raw note content and derives the post title.
//
// Any leading YAML frontmatter block in the source is discarded; the emitter
// regenerates frontmatter from scratch. filename is the note's base name and
// provides the fallback title when the body has no level-1 heading.
func Transform(raw []byte, filename string) Result {
	_, body, _ := frontmatter.Split(raw)

	title := extractTitle(body)
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}

	// Scan for plain markdown images before embeds are rewritten into the
	// same syntax, so the report only covers references the author wrote.
	standard := standardImageRefs(body)

	text := string(body)
	var images []string
	text = embedPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := embedPattern.FindStringSubmatch(match)[1]
		images = append(images, name)
		return "![" + name + "](" + name + ")"
	})

	text = wikilinkPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := wikilinkPattern.FindStringSubmatch(match)
		if groups[2] != "" {
			return groups[2]
		}
		return groups[1]
	})

	return Result{
		Title:          title,
		Body:           text,
		Images:         images,
		StandardImages: standard,
	}
}
