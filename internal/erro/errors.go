package erro

const PhotoLikeServiceUnavalaible = "PhotoLike-Service is unavailable"
const RequestTimedOut = "Request timed out"
const ClientErrorType = "Client"
const ServerErrorType = "Server"
const NotFoundErrorType = "NotFound"
const ErrorType = "type"
const ErrorMessage = "message"

const (
	PhotoNotFound          = "Photo was not found"
	MissingUserID          = "User identity is required"
	MissingHeart           = "Heart state is required"
	InvalidPhotoID         = "Invalid photo id in request"
	InvalidOrder           = "Invalid photo order"
	MismatchedFileNames    = "The number of files does not match the number of file names"
	EmptyFileNames         = "No files were uploaded"
	ContextCanceled        = "Context canceled or timeout"
	ErrorOverflowTaskQ     = "Task queue is full, task was dropped"
	ErrorReadAll           = "ReadAll error"
	ErrorInvalidReqMethod  = "Invalid request method"
	ErrorAfterReqPhotos    = "Error after request into photos: %v"
	ErrorAfterReqLikes     = "Error after request into likes_detail: %v"
	ErrorStartTransaction  = "Transaction creation error: %v"
	ErrorCommitTransaction = "Transaction commit error: %v"
	ErrorSetPhotos         = "Set photos-cache error: %v"
	ErrorGetPhotos         = "Get photos-cache error: %v"
	ErrorIncrGeneration    = "Incr photos-cache generation error: %v"
	ErrorMarshal           = "Data marshal error: %v"
	ErrorUnmarshal         = "Data unmarshal error: %v"
	ErrorScan              = "Scan error: %v"
)

type CustomError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return e.Type + ": " + e.Message
}

func ServerError(reason string) *CustomError {
	return &CustomError{Message: reason, Type: ServerErrorType}
}
func ClientError(reason string) *CustomError {
	return &CustomError{Message: reason, Type: ClientErrorType}
}
func NotFoundError(reason string) *CustomError {
	return &CustomError{Message: reason, Type: NotFoundErrorType}
}
