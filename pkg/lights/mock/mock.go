// Package mock provides a mock implementation of the goneewer.Light
// interface. It is intended for development and testing purposes when a
// physical light is not available.
package mock

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/mlsorensen/goneewer"
	"github.com/mlsorensen/goneewer/pkg/models"
)

// This init function registers the MockLight with the central registry.
// To use it, you must explicitly import this package.
func init() {
	// Register with a distinct name, "MOCK", so it can be requested specifically.
	goneewer.Register("MOCK", New)
}

// This line is the compile-time check. It will fail to compile if
// *MockLight ever stops satisfying the goneewer.Light interface.
var _ goneewer.Light = (*MockLight)(nil)

// MockLight is a simulated Neewer light for development. It behaves as
// an RGB-capable panel and accepts every command while connected.
type MockLight struct {
	name string

	mu        sync.Mutex
	connected bool
	state     goneewer.LightState
}

// New creates a new, disconnected MockLight.
func New(device *goneewer.FoundDevice) goneewer.Light {
	return &MockLight{
		name: device.Name,
		state: goneewer.LightState{
			Brightness:      100,
			ColorTempKelvin: 5600,
			Saturation:      100,
		},
	}
}

func (m *MockLight) DeviceName() string {
	return m.name
}

func (m *MockLight) DisplayName() string {
	return "Mock Light"
}

func (m *MockLight) Profile() models.Profile {
	return models.Profile{
		Name:      "Mock",
		RGB:       true,
		MinKelvin: 2700,
		MaxKelvin: 6500,
		Protocol:  models.ProtocolStandard,
	}
}

func (m *MockLight) State() goneewer.LightState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *MockLight) IsConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected
}

// Connect marks the light connected.
func (m *MockLight) Connect() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.connected {
		return nil
	}
	log.Println("MOCK: Connecting...")
	m.connected = true
	log.Println("MOCK: Connected successfully.")
	return nil
}

// Disconnect marks the light disconnected.
func (m *MockLight) Disconnect() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.connected {
		return nil // Nothing to do
	}
	log.Println("MOCK: Disconnected.")
	m.connected = false
	return nil
}

func (m *MockLight) SetPower(ctx context.Context, on bool) error {
	return m.apply(ctx, fmt.Sprintf("power %v", on), func(s *goneewer.LightState) {
		s.Power = on
	})
}

func (m *MockLight) SetCCT(ctx context.Context, brightness, kelvin int) error {
	return m.apply(ctx, fmt.Sprintf("cct %d%% %dK", brightness, kelvin), func(s *goneewer.LightState) {
		s.Power = brightness > 0
		s.Brightness = brightness
		s.ColorTempKelvin = kelvin
	})
}

func (m *MockLight) SetHSI(ctx context.Context, hue, saturation, intensity int) error {
	return m.apply(ctx, fmt.Sprintf("hsi h=%d s=%d i=%d", hue, saturation, intensity), func(s *goneewer.LightState) {
		s.Power = intensity > 0
		s.Brightness = intensity
		s.Hue = hue
		s.Saturation = saturation
	})
}

func (m *MockLight) TurnOn(ctx context.Context) error {
	m.mu.Lock()
	brightness := m.state.Brightness
	kelvin := m.state.ColorTempKelvin
	m.mu.Unlock()
	if brightness == 0 {
		brightness = 100
	}
	return m.SetCCT(ctx, brightness, kelvin)
}

func (m *MockLight) TurnOff(ctx context.Context) error {
	m.mu.Lock()
	kelvin := m.state.ColorTempKelvin
	m.mu.Unlock()
	return m.SetCCT(ctx, 0, kelvin)
}

// apply simulates a command: auto-connects like the real session, then
// updates the optimistic state.
func (m *MockLight) apply(ctx context.Context, what string, update func(*goneewer.LightState)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.Connect(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	log.Printf("MOCK: %s", what)
	update(&m.state)
	return nil
}
