package response

const (
	MessageSuccess      = "success"
	DefaultErrorMessage = "something went wrong"

	InternalServerErrorCode = 500
	NotFoundErrorCode       = 404
)

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
