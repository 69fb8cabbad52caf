package errors

// Config errors

func ConfigRequired(field, envVar string) *BookportError {
	return New(CategoryConfig, SeverityFatal, "required configuration missing").
		WithContext("field", field).
		WithContext("env", envVar)
}

func ConfigInvalid(field string, cause error) *BookportError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "invalid configuration").
		WithContext("field", field)
}

// Filesystem errors

func ReadFailed(path string, cause error) *BookportError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "read failed").
		WithContext("path", path)
}

func WriteFailed(path string, cause error) *BookportError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "write failed").
		WithContext("path", path)
}

func DirMissing(path string, cause error) *BookportError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "directory not found").
		WithContext("path", path)
}

// Network errors

func TranslationFailed(page string, cause error) *BookportError {
	return Wrap(cause, CategoryNetwork, SeverityFatal, "translation failed").
		WithContext("page", page)
}
