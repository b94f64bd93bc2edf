package convert

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/vaultpress/internal/config"
	verrors "git.home.luguber.info/inful/vaultpress/internal/errors"
)

func testConfig(vault, hugoRoot string) *config.Config {
	cfg := config.Default()
	cfg.Vault = vault
	cfg.Hugo.Root = hugoRoot
	return cfg
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRun_EndToEndScenario(t *testing.T) {
	vault := t.TempDir()
	hugoRoot := t.TempDir()
	writeFile(t, filepath.Join(vault, "post.md"), "# My Blog Post\n\nSee [[Another Note]] and ![[diagram.png]]")
	writeFile(t, filepath.Join(vault, "diagram.png"), "png-bytes")

	report, err := New(testConfig(vault, hugoRoot)).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.NotesConverted)
	assert.Equal(t, 1, report.ImagesCopied)
	assert.Equal(t, OutcomeSuccess, report.Outcome())
	assert.NotEmpty(t, report.RunID)

	bundle := filepath.Join(hugoRoot, "content", "posts", "my-blog-post")
	index := readFile(t, filepath.Join(bundle, "index.md"))

	info, statErr := os.Stat(filepath.Join(vault, "post.md"))
	require.NoError(t, statErr)
	want := "---\n" +
		"title: My Blog Post\n" +
		"date: '" + info.ModTime().Format("2006-01-02") + "'\n" +
		"draft: false\n" +
		"---\n" +
		"\n" +
		"# My Blog Post\n\nSee Another Note and ![diagram.png](diagram.png)"
	assert.Equal(t, want, index)
	assert.Equal(t, "png-bytes", readFile(t, filepath.Join(bundle, "diagram.png")))
}

func TestRun_MissingImage_PostStillWrittenWithDanglingReference(t *testing.T) {
	vault := t.TempDir()
	hugoRoot := t.TempDir()
	writeFile(t, filepath.Join(vault, "post.md"), "# My Blog Post\n\n![[diagram.png]]")

	report, err := New(testConfig(vault, hugoRoot)).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.NotesConverted)
	assert.Equal(t, 0, report.ImagesCopied)
	assert.Equal(t, 1, report.ImagesMissing)
	assert.Equal(t, OutcomeWarning, report.Outcome())

	bundle := filepath.Join(hugoRoot, "content", "posts", "my-blog-post")
	index := readFile(t, filepath.Join(bundle, "index.md"))
	assert.Contains(t, index, "![diagram.png](diagram.png)")

	_, statErr := os.Stat(filepath.Join(bundle, "diagram.png"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_DuplicateSlug_LastProcessedWins(t *testing.T) {
	vault := t.TempDir()
	hugoRoot := t.TempDir()
	// Lexical scan order: a.md before b.md.
	writeFile(t, filepath.Join(vault, "a.md"), "# Draft\n\nfirst note")
	writeFile(t, filepath.Join(vault, "b.md"), "# Draft\n\nsecond note")

	report, err := New(testConfig(vault, hugoRoot)).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.NotesConverted)
	assert.Equal(t, 2, report.PostsBySlug["draft"])

	index := readFile(t, filepath.Join(hugoRoot, "content", "posts", "draft", "index.md"))
	assert.Contains(t, index, "second note")
	assert.NotContains(t, index, "first note")
}

func TestRun_Idempotent_SecondRunProducesIdenticalOutput(t *testing.T) {
	vault := t.TempDir()
	hugoRoot := t.TempDir()
	writeFile(t, filepath.Join(vault, "post.md"), "# My Blog Post\n\nSee [[Another Note]] and ![[diagram.png]]")
	writeFile(t, filepath.Join(vault, "attachments", "diagram.png"), "png-bytes")

	cfg := testConfig(vault, hugoRoot)
	_, err := New(cfg).Run(context.Background())
	require.NoError(t, err)
	bundle := filepath.Join(hugoRoot, "content", "posts", "my-blog-post")
	firstIndex := readFile(t, filepath.Join(bundle, "index.md"))
	firstImage := readFile(t, filepath.Join(bundle, "diagram.png"))

	_, err = New(cfg).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, firstIndex, readFile(t, filepath.Join(bundle, "index.md")))
	assert.Equal(t, firstImage, readFile(t, filepath.Join(bundle, "diagram.png")))
}

func TestRun_PunctuationOnlyTitle_FallsBackToFilenameSlug(t *testing.T) {
	vault := t.TempDir()
	hugoRoot := t.TempDir()
	writeFile(t, filepath.Join(vault, "scratchpad.md"), "# !!!\n\nbody")

	report, err := New(testConfig(vault, hugoRoot)).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.NotesConverted)

	_, statErr := os.Stat(filepath.Join(hugoRoot, "content", "posts", "scratchpad", "index.md"))
	require.NoError(t, statErr)
}

func TestRun_EmptyVault_SucceedsWithZeroPosts(t *testing.T) {
	report, err := New(testConfig(t.TempDir(), t.TempDir())).Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, report.NotesDiscovered)
	assert.Equal(t, OutcomeSuccess, report.Outcome())
}

func TestRun_InvalidVaultRoot_Fatal(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "missing"), t.TempDir())

	_, err := New(cfg).Run(context.Background())
	require.Error(t, err)

	var cerr *verrors.ConverterError
	require.ErrorAs(t, err, &cerr)
	assert.True(t, cerr.IsFatal())
}

func TestRun_CanceledContext_StopsBetweenNotes(t *testing.T) {
	vault := t.TempDir()
	writeFile(t, filepath.Join(vault, "a.md"), "# A")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(testConfig(vault, t.TempDir())).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_VaultNeverModified(t *testing.T) {
	vault := t.TempDir()
	hugoRoot := t.TempDir()
	notePath := filepath.Join(vault, "post.md")
	writeFile(t, notePath, "# Post\n\n![[pic.png]]")
	writeFile(t, filepath.Join(vault, "pic.png"), "img")

	before := readFile(t, notePath)
	_, err := New(testConfig(vault, hugoRoot)).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before, readFile(t, notePath))
}
