package goneewer

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/mlsorensen/goneewer/pkg/models"
)

// LightState is the last commanded state of a light. The Neewer control
// protocol is fire-and-forget with no readback, so this reflects what
// was most recently written, not what the device confirmed.
type LightState struct {
	Power           bool
	Brightness      int // 0-100
	ColorTempKelvin int
	Hue             int // 0-360
	Saturation      int // 0-100
}

// Light is the generic interface for a Bluetooth light.
// Implementations of this interface handle communication with a
// specific family of devices.
type Light interface {
	// Connect establishes a connection to the light. It is idempotent:
	// calling it while already connected is a no-op.
	Connect() error

	// Disconnect releases the connection. Safe to call in any state.
	Disconnect() error

	// IsConnected reports whether the BLE link is currently held.
	IsConnected() bool

	// DeviceName returns the BLE-advertised name.
	DeviceName() string

	// DisplayName returns a human friendly name for the light.
	DisplayName() string

	// Profile returns the capability profile resolved from the
	// advertised name at construction time.
	Profile() models.Profile

	// State returns a snapshot of the last commanded state.
	State() LightState

	// SetPower switches the light on or off.
	SetPower(ctx context.Context, on bool) error

	// SetCCT sets brightness (0-100) and color temperature in Kelvin.
	// Values outside the profile's ranges are clamped, never rejected.
	SetCCT(ctx context.Context, brightness, kelvin int) error

	// SetHSI sets hue (0-360), saturation (0-100) and intensity (0-100)
	// on RGB-capable lights. Returns *UnsupportedCapabilityError for
	// profiles without RGB support.
	SetHSI(ctx context.Context, hue, saturation, intensity int) error

	// TurnOn restores the last commanded (or default) levels.
	TurnOn(ctx context.Context) error

	// TurnOff dims the light to zero. Most Neewer lights have no
	// discrete off command.
	TurnOff(ctx context.Context) error
}

// --- Implementation Registry ---

// Factory is a function that creates a new instance of a Light.
type Factory func(*FoundDevice) Light

var (
	registry = make(map[string]Factory)
	regLock  = sync.RWMutex{}
)

// Register makes a light implementation available by a fragment of its
// advertised device name. This function should be called from the
// init() function of the implementation's package. Matching is
// case-insensitive substring containment, since Neewer devices embed
// the brand or model code anywhere in the name.
func Register(nameFragment string, factory Factory) {
	regLock.Lock()
	defer regLock.Unlock()

	key := strings.ToUpper(nameFragment)
	if _, found := registry[key]; found {
		fmt.Printf("warning: light implementation for fragment '%s' is being overwritten\n", nameFragment)
	}
	registry[key] = factory
}

// NewLightForDevice finds a registered factory for the given device
// name and creates a new Light instance.
// Example: a device named "NEEWER-RGB660" matches a registered
// "NEEWER" fragment.
func NewLightForDevice(device *FoundDevice) (Light, error) {
	regLock.RLock()
	defer regLock.RUnlock()

	upper := strings.ToUpper(device.Name)
	for fragment, factory := range registry {
		if strings.Contains(upper, fragment) {
			return factory(device), nil
		}
	}

	return nil, fmt.Errorf("no implementation found for device '%s'", device.Name)
}
