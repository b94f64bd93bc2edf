package errors

// Convenience functions for common error patterns

// Config errors

func ConfigReadError(path string, cause error) *ConverterError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "failed to read configuration file").
		WithContext("path", path)
}

func ConfigParseError(path string, cause error) *ConverterError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "failed to parse configuration file").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *ConverterError {
	return New(CategoryValidation, SeverityFatal, "configuration validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Vault errors

func VaultNotFound(path string) *ConverterError {
	return New(CategoryVault, SeverityFatal, "vault path does not exist").
		WithContext("path", path)
}

func VaultNotDirectory(path string) *ConverterError {
	return New(CategoryVault, SeverityFatal, "vault path is not a directory").
		WithContext("path", path)
}

func VaultScanError(path string, cause error) *ConverterError {
	return Wrap(cause, CategoryVault, SeverityFatal, "vault scan failed").
		WithContext("path", path)
}

// Per-note errors (skipped with a warning, run continues)

func NoteReadError(path string, cause error) *ConverterError {
	return Wrap(cause, CategoryNote, SeverityError, "failed to read note").
		WithContext("path", path)
}

func ImageNotFound(name string) *ConverterError {
	return New(CategoryImage, SeverityWarning, "embedded image not found in vault").
		WithContext("image", name)
}

// Output errors

func EmitError(slug string, cause error) *ConverterError {
	return Wrap(cause, CategoryEmit, SeverityError, "failed to write post").
		WithContext("slug", slug)
}

func OutputDirError(path string, cause error) *ConverterError {
	return Wrap(cause, CategoryEmit, SeverityFatal, "failed to create content directory").
		WithContext("path", path)
}

func InternalError(message string, cause error) *ConverterError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
