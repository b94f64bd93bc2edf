package config

import (
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	verrors "git.home.luguber.info/inful/vaultpress/internal/errors"
)

// Validate checks structural constraints on the configuration. Path
// existence is not checked here; the scanner owns vault validation.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.Hugo,
		validation.Field(&c.Hugo.Section, validation.Required, validation.By(cleanRelativePath)),
	); err != nil {
		return verrors.ValidationFailed("hugo.section", err.Error())
	}

	if err := validation.Validate(c.Attachments.Folders,
		validation.Each(validation.Required, validation.By(bareFolderName)),
	); err != nil {
		return verrors.ValidationFailed("attachments.folders", err.Error())
	}

	if err := validation.Validate(c.Logging.Level,
		validation.In("debug", "info", "warn", "error"),
	); err != nil {
		return verrors.ValidationFailed("logging.level", err.Error())
	}

	return nil
}

// cleanRelativePath rejects absolute paths and parent traversal so the
// section can never escape the Hugo content directory.
func cleanRelativePath(value any) error {
	s, _ := value.(string)
	if filepath.IsAbs(s) {
		return validation.NewError("validation_abs_path", "must be a relative path")
	}
	clean := filepath.ToSlash(filepath.Clean(s))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return validation.NewError("validation_path_escape", "must not traverse above the content directory")
	}
	return nil
}

// bareFolderName rejects attachment folder entries containing separators;
// the resolver joins them against candidate directories itself.
func bareFolderName(value any) error {
	s, _ := value.(string)
	if strings.ContainsAny(s, `/\`) {
		return validation.NewError("validation_folder_name", "must be a bare directory name")
	}
	return nil
}
