package goneewer

import "fmt"

// ConnectionError reports a transport failure: the light could not be
// reached, or the link dropped mid-command. The session surfaces it
// instead of retrying; retry policy belongs to the caller.
type ConnectionError struct {
	Device string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection to %s failed: %v", e.Device, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// UnsupportedCapabilityError reports a command the resolved model
// profile cannot perform, e.g. HSI color on a bi-color light. It is
// returned before any frame is built or written.
type UnsupportedCapabilityError struct {
	Capability string
	Model      string
}

func (e *UnsupportedCapabilityError) Error() string {
	return fmt.Sprintf("model %s does not support %s", e.Model, e.Capability)
}
