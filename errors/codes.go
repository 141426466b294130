package errors

// ErrorCode identifies an error condition in API responses and logs.
type ErrorCode string

const (
	ErrorCode_INTERNAL             ErrorCode = "INTERNAL"
	ErrorCode_INVALID_ARGUMENT     ErrorCode = "INVALID_ARGUMENT"
	ErrorCode_NOT_FOUND            ErrorCode = "NOT_FOUND"
	ErrorCode_UPLOAD_INVALID_TYPE  ErrorCode = "UPLOAD_INVALID_TYPE"
	ErrorCode_UPLOAD_TOO_LARGE     ErrorCode = "UPLOAD_TOO_LARGE"
	ErrorCode_UPLOAD_FAILED        ErrorCode = "UPLOAD_FAILED"
	ErrorCode_JOB_NOT_FOUND        ErrorCode = "JOB_NOT_FOUND"
	ErrorCode_JOB_NOT_READY        ErrorCode = "JOB_NOT_READY"
	ErrorCode_CONVERSION_FAILED    ErrorCode = "CONVERSION_FAILED"
	ErrorCode_TRANSCRIPTION_FAILED ErrorCode = "TRANSCRIPTION_FAILED"
	ErrorCode_NO_SPEECH_DETECTED   ErrorCode = "NO_SPEECH_DETECTED"
	ErrorCode_EXPORT_FAILED        ErrorCode = "EXPORT_FAILED"
	ErrorCode_STORAGE_FAILED       ErrorCode = "STORAGE_FAILED"
)

// String returns the code as a plain string.
func (c ErrorCode) String() string {
	return string(c)
}
