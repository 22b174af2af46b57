package helpers

// EnvironmentError means the local environment is missing context the
// generator depends on, such as a git checkout
type EnvironmentError string

// Error satisfies the error interface
func (e EnvironmentError) Error() string {
	return string(e)
}

// Environment defines the behavior of this error
func (e EnvironmentError) Environment() bool {
	return true
}

// ErrorEnvironment returns true if the error is an environment error
func ErrorEnvironment(err error) bool {
	if e, ok := err.(interface{ Environment() bool }); ok && e.Environment() {
		return true
	}
	return false
}
