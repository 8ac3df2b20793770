package errors

var (
	ErrInvalidArgument         = New(ERR_INVALID_ARGUMENT, "invalid argument")
	ErrNotFound                = New(ERR_NOT_FOUND, "not found")
	ErrProcessing              = New(ERR_PROCESSING, "error processing")
	ErrConfiguration           = New(ERR_CONFIGURATION, "configuration error")
	ErrConfigurationIntegrity  = New(ERR_CONFIGURATION_INTEGRITY, "configuration integrity error")
	ErrInvalidNetworkSelection = New(ERR_INVALID_NETWORK_SELECTION, "invalid network selection")
)

// errors initialization functions

func NewInvalidArgumentError(message string, params ...interface{}) error {
	return New(ERR_INVALID_ARGUMENT, message, params...)
}
func NewNotFoundError(message string, params ...interface{}) error {
	return New(ERR_NOT_FOUND, message, params...)
}
func NewProcessingError(message string, params ...interface{}) error {
	return New(ERR_PROCESSING, message, params...)
}
func NewConfigurationError(message string, params ...interface{}) error {
	return New(ERR_CONFIGURATION, message, params...)
}
func NewConfigurationIntegrityError(message string, params ...interface{}) *Error {
	return New(ERR_CONFIGURATION_INTEGRITY, message, params...)
}
func NewInvalidNetworkSelectionError(message string, params ...interface{}) *Error {
	return New(ERR_INVALID_NETWORK_SELECTION, message, params...)
}
