package goneewer

import (
	"fmt"
	"sync"

	"tinygo.org/x/bluetooth"
)

// BTAdapter is the shared Bluetooth adapter used for scanning and
// connecting. There is exactly one radio per host, so implementations
// share this handle rather than acquiring their own.
var BTAdapter = bluetooth.DefaultAdapter

var (
	enableOnce sync.Once
	enableErr  error
)

// TryEnableAdapter enables the Bluetooth adapter if it has not been
// enabled yet. Enabling twice is an error on some platforms, so the
// call is made at most once per process.
func TryEnableAdapter() error {
	enableOnce.Do(func() {
		enableErr = BTAdapter.Enable()
	})
	if enableErr != nil {
		return fmt.Errorf("failed to enable bluetooth adapter: %w", enableErr)
	}
	return nil
}
