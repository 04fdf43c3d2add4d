package scaffold

import "fmt"

// ValidationError reports bad input or a pre-existing target path. It is
// always raised before any filesystem mutation.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// FilesystemError reports a failed directory creation or file write.
// Directories and files written before the failure are left in place.
type FilesystemError struct {
	Path string
	Err  error
}

func (e *FilesystemError) Error() string { return fmt.Sprintf("%s: %v", e.Path, e.Err) }

func (e *FilesystemError) Unwrap() error { return e.Err }

// TemplateError reports a template that could not be rendered, typically
// because it references a field not present on ProjectSpec. It indicates
// a packaging defect in the binary rather than user error.
type TemplateError struct {
	Role Role
	Err  error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %q: %v", e.Role, e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }
