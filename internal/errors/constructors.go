package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *DocsifyError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *DocsifyError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file is invalid").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *DocsifyError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Filesystem errors

func ReadFailed(path string, cause error) *DocsifyError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "read failed").
		WithContext("path", path)
}

func WriteFailed(path string, cause error) *DocsifyError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "write failed").
		WithContext("path", path)
}

// Model-shape errors

func UnsupportedKind(kind string) *DocsifyError {
	return New(CategoryModel, SeverityFatal, "unsupported API item kind: "+kind).
		WithContext("kind", kind)
}

func ModelInvalid(path string, cause error) *DocsifyError {
	return Wrap(cause, CategoryModel, SeverityFatal, "API model file is invalid").
		WithContext("path", path)
}

// Render and server errors

func RenderFailed(target string, cause error) *DocsifyError {
	return Wrap(cause, CategoryRender, SeverityFatal, "page rendering failed").
		WithContext("target", target)
}

func ServerError(message string, cause error) *DocsifyError {
	return Wrap(cause, CategoryServer, SeverityFatal, message)
}

// Internal errors

func InternalError(message string, cause error) *DocsifyError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
