package option

// AbsentError is the panic payload raised when a value is asserted on an
// empty Option via Expect or Unwrap. It carries the assertion message.
type AbsentError struct {
	msg string
}

// NewAbsentError creates an AbsentError with the given message.
func NewAbsentError(msg string) *AbsentError {
	return &AbsentError{msg: msg}
}

// Error implements the error interface.
func (e *AbsentError) Error() string {
	return e.msg
}
