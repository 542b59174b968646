// Package all is a convenience wrapper that registers all known light
// implementations. Importing this package enables the goneewer factory
// to find a driver for any supported device.
package all

// Import each implementation package for its side-effects (the init() function).
import (
	_ "github.com/mlsorensen/goneewer/pkg/lights/mock"
	_ "github.com/mlsorensen/goneewer/pkg/lights/neewer"
)
