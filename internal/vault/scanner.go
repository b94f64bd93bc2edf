// Package vault enumerates markdown notes in an Obsidian vault.
package vault

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	verrors "git.home.luguber.info/inful/vaultpress/internal/errors"
)

// Scan walks the vault root and returns the absolute paths of all `.md`
// files in lexical walk order.
//
// A missing or non-directory root is fatal. Unreadable subtrees are skipped
// with a warning so one bad directory cannot abort the run.
func Scan(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, verrors.VaultNotFound(root)
		}
		return nil, verrors.VaultScanError(root, err)
	}
	if !info.IsDir() {
		return nil, verrors.VaultNotDirectory(root)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, verrors.VaultScanError(root, err)
	}

	var files []string
	walkErr := filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Warn("Skipping unreadable path", slog.String("path", path), slog.Any("error", err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) == ".md" {
			files = append(files, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, verrors.VaultScanError(root, walkErr)
	}
	return files, nil
}
