package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	InternalServerErrorCode = 500

	// DateFormat is the wire format for calendar dates (MM/DD/YYYY),
	// matching the purchase date format stored per inventory item.
	DateFormat     = "01/02/2006"
	DateTimeFormat = "01/02/2006 15:04:05"
)
