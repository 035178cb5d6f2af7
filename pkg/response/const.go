package response

const (
	// MessageSuccess is the message attached to successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal details from API consumers.
	DefaultErrorMessage = "Something went wrong"
)

const (
	InternalServerErrorCode = 500
	NotFoundErrorCode       = 404
	TooManyRequestsCode     = 429
)

const (
	// DateFormat is the wire format for date-only fields.
	DateFormat = "2006-01-02"

	// DateTimeFormat is the wire format for datetime fields.
	DateTimeFormat = "2006-01-02 15:04:05"
)
