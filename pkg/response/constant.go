package response

const (
	StatusSuccess = "success"
	StatusError   = "error"

	DefaultErrorMessage    = "Something went wrong"
	MessageTooManyRequests = "Too many requests, slow down"

	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
