package goneewer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlsorensen/goneewer/pkg/models"
)

// stubLight is a minimal Light used to exercise the registry.
type stubLight struct {
	name string
}

func (s *stubLight) Connect() error                                  { return nil }
func (s *stubLight) Disconnect() error                               { return nil }
func (s *stubLight) IsConnected() bool                               { return false }
func (s *stubLight) DeviceName() string                              { return s.name }
func (s *stubLight) DisplayName() string                             { return "Stub" }
func (s *stubLight) Profile() models.Profile                         { return models.Default() }
func (s *stubLight) State() LightState                               { return LightState{} }
func (s *stubLight) SetPower(ctx context.Context, on bool) error     { return nil }
func (s *stubLight) SetCCT(ctx context.Context, b, k int) error      { return nil }
func (s *stubLight) SetHSI(ctx context.Context, h, sat, i int) error { return nil }
func (s *stubLight) TurnOn(ctx context.Context) error                { return nil }
func (s *stubLight) TurnOff(ctx context.Context) error               { return nil }

func TestRegistryMatchesNameFragment(t *testing.T) {
	Register("STUBTEST", func(d *FoundDevice) Light {
		return &stubLight{name: d.Name}
	})

	light, err := NewLightForDevice(&FoundDevice{Name: "Some-StubTest-Device"})
	require.NoError(t, err)
	assert.Equal(t, "Some-StubTest-Device", light.DeviceName())
}

func TestRegistryUnknownDevice(t *testing.T) {
	_, err := NewLightForDevice(&FoundDevice{Name: "TOTALLY-UNRELATED"})
	assert.Error(t, err)
}

func TestMatchesAny(t *testing.T) {
	assert.True(t, matchesAny("NEEWER-RGB660", nil))
	assert.True(t, matchesAny("NW-20230080&FFFFFF", nil))
	assert.False(t, matchesAny("LUNAR-A23B", nil))

	// Custom fragments take over completely.
	assert.True(t, matchesAny("LUNAR-A23B", []string{"lunar"}))
	assert.False(t, matchesAny("NEEWER-RGB660", []string{"lunar"}))
}

func TestBrightnessConversions(t *testing.T) {
	assert.Equal(t, 0, BrightnessToPercent(0))
	assert.Equal(t, 100, BrightnessToPercent(255))
	assert.Equal(t, 50, BrightnessToPercent(128))

	assert.Equal(t, uint8(0), BrightnessFromPercent(0))
	assert.Equal(t, uint8(255), BrightnessFromPercent(100))
	assert.Equal(t, uint8(127), BrightnessFromPercent(50))

	// Inputs outside 0-100 are clamped.
	assert.Equal(t, uint8(255), BrightnessFromPercent(300))
	assert.Equal(t, uint8(0), BrightnessFromPercent(-5))

	// Round trips never drift more than one step.
	for pct := 0; pct <= 100; pct++ {
		back := BrightnessToPercent(BrightnessFromPercent(pct))
		assert.InDelta(t, pct, back, 1, "pct %d", pct)
	}
}

func TestMiredConversions(t *testing.T) {
	assert.Equal(t, 6535, MiredToKelvin(153))
	assert.Equal(t, 2702, MiredToKelvin(370))
	assert.Equal(t, 153, KelvinToMired(6500))
	assert.Equal(t, 370, KelvinToMired(2700))

	assert.Equal(t, 0, MiredToKelvin(0))
	assert.Equal(t, 0, KelvinToMired(-10))
}
