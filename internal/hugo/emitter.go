// Package hugo writes converted notes into a Hugo content tree as page
// bundles: one directory per post holding index.md and its images.
package hugo

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	verrors "git.home.luguber.info/inful/vaultpress/internal/errors"
	"git.home.luguber.info/inful/vaultpress/internal/frontmatter"
)

// Image pairs an embedded image name with its resolved source path.
type Image struct {
	Name       string // destination basename inside the post bundle
	SourcePath string // absolute path in the vault
}

// Post is one output unit: a slug-named folder with index.md plus images.
type Post struct {
	Slug   string
	Title  string
	Date   time.Time
	Draft  bool
	Body   string
	Images []Image
}

var errEmptySlug = errors.New("post slug is empty")

// Emitter writes posts beneath a single content directory.
type Emitter struct {
	contentDir string
}

// NewEmitter creates an emitter writing under <hugoRoot>/content/<section>.
func NewEmitter(hugoRoot, section string) *Emitter {
	return &Emitter{contentDir: filepath.Join(hugoRoot, "content", section)}
}

// ContentDir returns the directory posts are written into.
func (e *Emitter) ContentDir() string { return e.contentDir }

// EnsureContentDir creates the content directory once, before any post is
// written.
func (e *Emitter) EnsureContentDir() error {
	if err := os.MkdirAll(e.contentDir, 0o755); err != nil {
		return verrors.OutputDirError(e.contentDir, err)
	}
	return nil
}

// Emit writes the post bundle. Any prior bundle with the same slug is
// removed first, so a duplicate slug fully replaces earlier output and no
// stale images survive. Each distinct image name is copied at most once.
//
// Returns the number of images copied.
func (e *Emitter) Emit(post Post) (int, error) {
	if post.Slug == "" {
		// An empty slug would make postDir the content directory itself
		// and the RemoveAll below would wipe every previous post.
		return 0, verrors.EmitError(post.Slug, errEmptySlug)
	}
	postDir := filepath.Join(e.contentDir, post.Slug)
	if err := os.RemoveAll(postDir); err != nil {
		return 0, verrors.EmitError(post.Slug, err)
	}
	if err := os.MkdirAll(postDir, 0o755); err != nil {
		return 0, verrors.EmitError(post.Slug, err)
	}

	block := frontmatter.Block{Title: post.Title, Date: post.Date, Draft: post.Draft}
	head, err := block.Marshal()
	if err != nil {
		return 0, verrors.EmitError(post.Slug, err)
	}

	content := append(head, '\n')
	content = append(content, post.Body...)
	if err := os.WriteFile(filepath.Join(postDir, "index.md"), content, 0o644); err != nil {
		return 0, verrors.EmitError(post.Slug, err)
	}

	copied := 0
	seen := make(map[string]struct{}, len(post.Images))
	for _, img := range post.Images {
		if _, dup := seen[img.Name]; dup {
			continue
		}
		seen[img.Name] = struct{}{}
		dest := filepath.Join(postDir, filepath.Base(img.Name))
		if err := copyFile(img.SourcePath, dest); err != nil {
			return copied, verrors.EmitError(post.Slug, err).WithContext("image", img.Name)
		}
		copied++
		slog.Debug("Copied image", slog.String("image", img.Name), slog.String("post", post.Slug))
	}
	return copied, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
