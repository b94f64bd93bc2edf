package hugo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEmitter(t *testing.T) (*Emitter, string) {
	t.Helper()
	hugoRoot := t.TempDir()
	e := NewEmitter(hugoRoot, "posts")
	require.NoError(t, e.EnsureContentDir())
	return e, hugoRoot
}

func TestEmit_WritesIndexWithFrontmatterAndBody(t *testing.T) {
	e, hugoRoot := newTestEmitter(t)

	post := Post{
		Slug:  "my-blog-post",
		Title: "My Blog Post",
		Date:  time.Date(2024, 3, 17, 10, 0, 0, 0, time.UTC),
		Body:  "# My Blog Post\n\nSee Another Note and ![diagram.png](diagram.png)",
	}
	copied, err := e.Emit(post)
	require.NoError(t, err)
	assert.Zero(t, copied)

	data, err := os.ReadFile(filepath.Join(hugoRoot, "content", "posts", "my-blog-post", "index.md"))
	require.NoError(t, err)
	want := "---\n" +
		"title: My Blog Post\n" +
		"date: '2024-03-17'\n" +
		"draft: false\n" +
		"---\n" +
		"\n" +
		"# My Blog Post\n\nSee Another Note and ![diagram.png](diagram.png)"
	assert.Equal(t, want, string(data))
}

func TestEmit_EmptySlug_RefusedBeforeTouchingContentDir(t *testing.T) {
	e, hugoRoot := newTestEmitter(t)

	keep := Post{Slug: "keep", Title: "Keep", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	_, err := e.Emit(keep)
	require.NoError(t, err)

	_, err = e.Emit(Post{Title: "No Slug", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	require.Error(t, err)

	// Existing bundles must be untouched.
	_, statErr := os.Stat(filepath.Join(hugoRoot, "content", "posts", "keep", "index.md"))
	require.NoError(t, statErr)
}

func TestEmit_CopiesResolvedImages(t *testing.T) {
	e, hugoRoot := newTestEmitter(t)

	src := filepath.Join(t.TempDir(), "diagram.png")
	require.NoError(t, os.WriteFile(src, []byte("png-bytes"), 0o644))

	post := Post{
		Slug:   "with-image",
		Title:  "With Image",
		Date:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Body:   "![diagram.png](diagram.png)",
		Images: []Image{{Name: "diagram.png", SourcePath: src}},
	}
	copied, err := e.Emit(post)
	require.NoError(t, err)
	assert.Equal(t, 1, copied)

	data, err := os.ReadFile(filepath.Join(hugoRoot, "content", "posts", "with-image", "diagram.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestEmit_DuplicateImageNames_CopiedOnce(t *testing.T) {
	e, _ := newTestEmitter(t)

	src := filepath.Join(t.TempDir(), "a.png")
	require.NoError(t, os.WriteFile(src, []byte("a"), 0o644))

	post := Post{
		Slug:  "dup",
		Title: "Dup",
		Date:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Images: []Image{
			{Name: "a.png", SourcePath: src},
			{Name: "a.png", SourcePath: src},
		},
	}
	copied, err := e.Emit(post)
	require.NoError(t, err)
	assert.Equal(t, 1, copied)
}

func TestEmit_SameSlug_ReplacesPreviousBundleCompletely(t *testing.T) {
	e, hugoRoot := newTestEmitter(t)

	src := filepath.Join(t.TempDir(), "old.png")
	require.NoError(t, os.WriteFile(src, []byte("old"), 0o644))

	first := Post{
		Slug:   "draft",
		Title:  "Draft",
		Date:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Body:   "first version",
		Images: []Image{{Name: "old.png", SourcePath: src}},
	}
	_, err := e.Emit(first)
	require.NoError(t, err)

	second := Post{
		Slug:  "draft",
		Title: "Draft",
		Date:  time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC),
		Body:  "second version",
	}
	_, err = e.Emit(second)
	require.NoError(t, err)

	bundle := filepath.Join(hugoRoot, "content", "posts", "draft")
	data, err := os.ReadFile(filepath.Join(bundle, "index.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "second version")
	assert.NotContains(t, string(data), "first version")

	// Stale image from the overwritten post must not survive.
	_, err = os.Stat(filepath.Join(bundle, "old.png"))
	assert.True(t, os.IsNotExist(err))
}
