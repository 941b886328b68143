package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrSelfDelete         = errors.New("cannot delete own account")
	ErrNoExportRows       = errors.New("no records match the active filters")
	ErrDeleteNotSupported = errors.New("customer deletion is not supported")
	ErrUnsupportedUpload  = errors.New("unsupported file type")
)

// FieldErrors carries per-field validation messages for form submissions.
// A non-empty value blocks the whole submission; nothing is partially saved.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	return "validation failed"
}
