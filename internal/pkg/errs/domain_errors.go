package errs

// Sentinel errors shared by the usecase and handler layers
var (
	ErrCancellationInProgress  = New("cancellation already in progress for booking")
	ErrDatabaseOperationFailed = New("database operation failed")
)
