package command

import "errors"

// Error is a command failure carrying the message shown to users. Err holds the
// underlying cause when there is one.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func fail(message string, cause error) error {
	return &Error{Message: message, Err: cause}
}

// Message returns the user-facing text of err: the command message when err is a
// command Error, otherwise err.Error().
func Message(err error) string {
	var cmdErr *Error
	if errors.As(err, &cmdErr) {
		return cmdErr.Message
	}
	return err.Error()
}
