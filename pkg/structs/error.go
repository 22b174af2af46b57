package structs

// ConfigurationError means the benchmark configuration is invalid or
// inconsistent and the stack must not be generated from it
type ConfigurationError string

// Error satisfies the error interface
func (e ConfigurationError) Error() string {
	return string(e)
}

// Configuration defines the behavior of this error
func (e ConfigurationError) Configuration() bool {
	return true
}

// ErrorConfiguration returns true if the error is a configuration error
func ErrorConfiguration(err error) bool {
	if e, ok := err.(interface{ Configuration() bool }); ok && e.Configuration() {
		return true
	}
	return false
}
