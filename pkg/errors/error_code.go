package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeCountOutOfBounds     ErrorCode = 102
	ErrCodeInvalidCountInput    ErrorCode = 103
	ErrCodeInvalidGraphType     ErrorCode = 104

	// Point source errors (200-299)
	ErrCodeSourceUnavailable   ErrorCode = 200
	ErrCodeRequestFailed       ErrorCode = 201
	ErrCodeResponseParseFailed ErrorCode = 202
	ErrCodeUnexpectedStatus    ErrorCode = 203
	ErrCodeSimulatedFailure    ErrorCode = 204

	// Render errors (300-399)
	ErrCodeRenderFailed ErrorCode = 300
	ErrCodeExportFailed ErrorCode = 301

	// Version errors (400-499)
	ErrCodeInvalidVersion  ErrorCode = 400
	ErrCodeVersionMismatch ErrorCode = 401

	// Controller errors (500-599)
	ErrCodeControllerRunning ErrorCode = 500
)
