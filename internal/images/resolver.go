// Package images locates embedded image files in an unstructured vault tree.
package images

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// DefaultFolders are the attachment directory names probed during lookup,
// matching the folder names Obsidian vaults commonly use.
var DefaultFolders = []string{"attachments", "images", "assets", "files"}

// Resolver finds image files by probing a prioritized list of candidate
// directories before falling back to a full vault walk.
type Resolver struct {
	vaultRoot string
	folders   []string
}

// NewResolver creates a resolver rooted at vaultRoot. folders is the ordered
// set of attachment directory names; nil selects DefaultFolders.
func NewResolver(vaultRoot string, folders []string) *Resolver {
	if len(folders) == 0 {
		folders = DefaultFolders
	}
	return &Resolver{
		vaultRoot: filepath.Clean(vaultRoot),
		folders:   folders,
	}
}

// Resolve returns the absolute path of the named image, searching in order:
//
//  1. the note's own directory;
//  2. each attachment folder name, first under the note's directory, then
//     under each ancestor up to the vault root (nearest ancestor wins);
//  3. a recursive walk of the whole vault, first basename match in lexical
//     order.
//
// The walk only runs when every directory candidate misses. A miss across
// all three tiers is a warning outcome, not an error: the caller skips the
// copy and leaves the markdown reference dangling.
func (r *Resolver) Resolve(name, noteDir string) (string, bool) {
	for _, dir := range r.candidateDirs(noteDir) {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}

	if path, ok := r.searchVault(filepath.Base(name)); ok {
		return path, true
	}

	slog.Warn("Image not found in vault", slog.String("image", name), slog.String("note_dir", noteDir))
	return "", false
}

// candidateDirs generates the prioritized directory list for a note.
func (r *Resolver) candidateDirs(noteDir string) []string {
	noteDir = filepath.Clean(noteDir)
	dirs := []string{noteDir}

	dir := noteDir
	for {
		for _, folder := range r.folders {
			dirs = append(dirs, filepath.Join(dir, folder))
		}
		if dir == r.vaultRoot {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Note directory escaped the vault root; stop at the
			// filesystem root rather than loop.
			break
		}
		dir = parent
	}
	return dirs
}

// searchVault is the last-resort recursive scan for a basename.
func (r *Resolver) searchVault(base string) (string, bool) {
	var found string
	_ = filepath.WalkDir(r.vaultRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && d.Name() == base {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	return found, found != ""
}
