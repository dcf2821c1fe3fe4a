package sentinel

var _ error = Error("")

// Error is an error whose identity is its message. Values are comparable, so
// errors.Is matches them with the default == check.
type Error string

// Error implements the error interface.
func (e Error) Error() string {
	return string(e)
}
