package response

const (
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internals from API clients.
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500
)

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
