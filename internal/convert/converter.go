// Package convert orchestrates the vault-to-Hugo pipeline: scan, transform,
// resolve images, emit.
package convert

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/vaultpress/internal/config"
	verrors "git.home.luguber.info/inful/vaultpress/internal/errors"
	"git.home.luguber.info/inful/vaultpress/internal/hugo"
	"git.home.luguber.info/inful/vaultpress/internal/images"
	"git.home.luguber.info/inful/vaultpress/internal/note"
	"git.home.luguber.info/inful/vaultpress/internal/slug"
	"git.home.luguber.info/inful/vaultpress/internal/vault"
)

// Converter runs the single-pass conversion pipeline. Notes are processed
// sequentially and independently; one note's failure never aborts the rest.
type Converter struct {
	cfg      *config.Config
	resolver *images.Resolver
	emitter  *hugo.Emitter
}

// New wires a converter from validated configuration.
func New(cfg *config.Config) *Converter {
	// The scanner reports absolute note paths; the resolver's ancestor
	// climb must terminate at the same absolute vault root.
	vaultRoot := cfg.Vault
	if abs, err := filepath.Abs(vaultRoot); err == nil {
		vaultRoot = abs
	}
	return &Converter{
		cfg:      cfg,
		resolver: images.NewResolver(vaultRoot, cfg.Attachments.Folders),
		emitter:  hugo.NewEmitter(cfg.Hugo.Root, cfg.Hugo.Section),
	}
}

// Run converts every markdown note in the vault. Only a scanner-level
// failure (bad vault root) or an uncreatable content directory is fatal;
// per-note errors are recorded in the report and processing continues.
func (c *Converter) Run(ctx context.Context) (*Report, error) {
	report := NewReport()
	defer report.Finish()

	files, err := vault.Scan(c.cfg.Vault)
	if err != nil {
		return report, err
	}
	report.NotesDiscovered = len(files)

	if err := c.emitter.EnsureContentDir(); err != nil {
		return report, err
	}

	slog.Info("Starting vault conversion",
		slog.String("run_id", report.RunID),
		slog.String("vault", c.cfg.Vault),
		slog.String("output", c.emitter.ContentDir()),
		slog.Int("notes", len(files)))

	for _, path := range files {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		if err := c.processNote(path, report); err != nil {
			slog.Warn("Skipping note", slog.String("path", path), slog.Any("error", err))
			report.NotesFailed++
			report.AddWarning(err)
			continue
		}
		report.NotesConverted++
	}

	slog.Info("Conversion finished",
		slog.String("run_id", report.RunID),
		slog.Int("converted", report.NotesConverted),
		slog.Int("failed", report.NotesFailed),
		slog.Int("images_copied", report.ImagesCopied),
		slog.Int("images_missing", report.ImagesMissing),
		slog.String("outcome", string(report.Outcome())))
	return report, nil
}

// processNote runs one note through the linear pipeline.
func (c *Converter) processNote(path string, report *Report) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return verrors.NoteReadError(path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return verrors.NoteReadError(path, err)
	}

	result := note.Transform(raw, filepath.Base(path))
	for _, ref := range result.StandardImages {
		slog.Debug("Standard markdown image reference is not copied",
			slog.String("note", path), slog.String("image", ref))
	}

	noteDir := filepath.Dir(path)
	var resolved []hugo.Image
	for _, name := range result.Images {
		src, ok := c.resolver.Resolve(name, noteDir)
		if !ok {
			report.ImagesMissing++
			report.AddWarning(verrors.ImageNotFound(name).WithContext("note", path))
			continue
		}
		resolved = append(resolved, hugo.Image{Name: name, SourcePath: src})
	}

	postSlug := slug.Make(result.Title)
	if postSlug == "" {
		// Title was entirely punctuation; fall back to the filename.
		postSlug = slug.Make(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	}
	if postSlug == "" {
		postSlug = "untitled"
	}

	post := hugo.Post{
		Slug:   postSlug,
		Title:  result.Title,
		Date:   info.ModTime(),
		Draft:  c.cfg.Draft,
		Body:   result.Body,
		Images: resolved,
	}

	copied, err := c.emitter.Emit(post)
	report.ImagesCopied += copied
	if err != nil {
		return err
	}

	report.PostsBySlug[post.Slug]++
	if report.PostsBySlug[post.Slug] > 1 {
		slog.Warn("Duplicate slug, previous post overwritten", slog.String("slug", post.Slug))
	}

	slog.Debug("Converted note",
		slog.String("path", path),
		slog.String("slug", post.Slug),
		slog.String("date", post.Date.Format("2006-01-02")))
	return nil
}
