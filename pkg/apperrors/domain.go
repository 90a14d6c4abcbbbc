package apperrors

import "net/http"

// Factories and predefined values for the business errors of this system.
// Business-rule rejections are 400 across the board; only a genuinely
// missing resource is 404.

// ErrNotFound converts a repository sentinel into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrEmailTaken rejects registration when the email is already used by
// either user kind.
var ErrEmailTaken = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusBadRequest,
)

// ErrInvalidCredentials covers both unknown email and bad password so the
// response does not reveal which one failed.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusBadRequest,
)

// ErrInvalidToken rejects malformed, expired or mis-signed bearer tokens.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrFileTooLarge = New(
	CodeValidationFailed,
	"upload",
	"File size exceeds the allowed limit",
	http.StatusBadRequest,
)

// ErrFileNotRequired rejects evidence uploads against a task template whose
// requires_file flag is off.
var ErrFileNotRequired = New(
	CodeInvalidOperation,
	"progress",
	"This task does not accept a file upload",
	http.StatusBadRequest,
)

var ErrEmptyFile = New(
	CodeValidationFailed,
	"upload",
	"Uploaded file is empty",
	http.StatusBadRequest,
)
