// Package errors provides the coded error type used across lavrovd and helpers
// for classifying those errors.
package errors

// IsFatalConfigurationError reports whether err signals that the embedded chain
// parameters or the selection made at startup cannot be trusted. Callers are
// expected to abort the process on these.
func IsFatalConfigurationError(err error) bool {
	if err == nil {
		return false
	}

	var tErr *Error
	if As(err, &tErr) {
		switch tErr.Code() {
		case ERR_CONFIGURATION_INTEGRITY,
			ERR_INVALID_NETWORK_SELECTION:
			return true
		}
	}

	return false
}

// IsConfigurationError reports whether err comes from user supplied
// configuration that can be corrected without rebuilding the binary.
func IsConfigurationError(err error) bool {
	if err == nil {
		return false
	}

	var tErr *Error
	if As(err, &tErr) {
		return tErr.Code() == ERR_CONFIGURATION
	}

	return false
}
