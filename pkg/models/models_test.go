package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetCustomRules(t *testing.T) {
	t.Cleanup(func() {
		rulesLock.Lock()
		customRules = nil
		rulesLock.Unlock()
	})
}

func TestResolveKnownModels(t *testing.T) {
	tests := []struct {
		name     string
		model    string
		rgb      bool
		cctOnly  bool
		protocol Protocol
	}{
		{"NEEWER-RGB660", "RGB660", true, false, ProtocolStandard},
		{"NEEWER-RGB660PRO", "RGB660 PRO", true, false, ProtocolStandard},
		{"NEEWER RGB530 PRO", "RGB530 PRO", true, false, ProtocolStandard},
		{"NW-20230080&FFFFFF", "MS60C", true, false, ProtocolInfinity},
		{"NW-20220035", "MS150B", false, false, ProtocolInfinity},
		{"NEEWER-GL1", "GL1", false, false, ProtocolInfinity},
		{"NEEWER-SNL660", "SNL-660", false, true, ProtocolStandard},
		{"NEEWER SL80", "SL-80", false, true, ProtocolStandard},
		{"NEEWER-RGB800", "RGB800", true, false, ProtocolInfinityHybrid},
		{"NEEWER-TL60", "TL60 RGB", true, false, ProtocolStandard},
		{"neewer-rgb176", "RGB176", true, false, ProtocolStandard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Resolve(tt.name)
			assert.Equal(t, tt.model, p.Name)
			assert.Equal(t, tt.rgb, p.RGB)
			assert.Equal(t, tt.cctOnly, p.CCTOnly)
			assert.Equal(t, tt.protocol, p.Protocol)
		})
	}
}

func TestResolveUnknownFallsBackToDefault(t *testing.T) {
	p := Resolve("NEEWER-MYSTERYMODEL")
	assert.Equal(t, Default(), p)
	assert.Equal(t, ProtocolStandard, p.Protocol)
	assert.False(t, p.RGB)
	assert.Equal(t, 3200, p.MinKelvin)
	assert.Equal(t, 5600, p.MaxKelvin)
}

func TestResolveLongestCodeWinsOverPrefix(t *testing.T) {
	// RGB660PRO must not resolve to the plain RGB660 entry.
	assert.Equal(t, "RGB660 PRO", Resolve("NEEWER-RGB660PRO-4E21").Name)
	assert.Equal(t, "RGB660", Resolve("NEEWER-RGB660-4E21").Name)
}

func TestCustomRuleTakesPrecedence(t *testing.T) {
	resetCustomRules(t)

	custom := Profile{Name: "Custom 660", RGB: true, MinKelvin: 2500, MaxKelvin: 9000, Protocol: ProtocolInfinity}
	RegisterProfile("RGB660", custom)

	assert.Equal(t, custom, Resolve("NEEWER-RGB660"))
	// Unrelated names are unaffected.
	assert.Equal(t, "RGB480", Resolve("NEEWER-RGB480").Name)
}

func TestClampKelvin(t *testing.T) {
	p := Default() // 3200-5600

	assert.Equal(t, 3200, p.ClampKelvin(1000))
	assert.Equal(t, 5600, p.ClampKelvin(9000))
	assert.Equal(t, 4500, p.ClampKelvin(4500))

	// Clamp is idempotent.
	assert.Equal(t, p.ClampKelvin(9000), p.ClampKelvin(p.ClampKelvin(9000)))
}

func TestKelvinToScale(t *testing.T) {
	p := Default() // 3200-5600

	assert.Equal(t, uint8(0), p.KelvinToScale(3200))
	assert.Equal(t, uint8(100), p.KelvinToScale(5600))
	assert.Equal(t, uint8(54), p.KelvinToScale(4500))

	// Out-of-range inputs are clamped, never overflow the wire scale.
	assert.Equal(t, uint8(0), p.KelvinToScale(0))
	assert.Equal(t, uint8(100), p.KelvinToScale(100000))

	// Monotonic over the full range.
	prev := uint8(0)
	for k := p.MinKelvin; k <= p.MaxKelvin; k += 100 {
		s := p.KelvinToScale(k)
		assert.GreaterOrEqual(t, s, prev, "kelvin %d", k)
		prev = s
	}
}

func TestScaleToKelvinRoundTrip(t *testing.T) {
	p := Profile{Name: "test", MinKelvin: 2700, MaxKelvin: 6500}

	assert.Equal(t, 2700, p.ScaleToKelvin(0))
	assert.Equal(t, 6500, p.ScaleToKelvin(100))
	assert.Equal(t, 6500, p.ScaleToKelvin(200)) // clamped

	// Round trip stays within one scale step of the original.
	for k := p.MinKelvin; k <= p.MaxKelvin; k += 250 {
		got := p.ScaleToKelvin(p.KelvinToScale(k))
		assert.InDelta(t, k, got, float64(p.MaxKelvin-p.MinKelvin)/100+1, "kelvin %d", k)
	}
}

func TestIsNeewerName(t *testing.T) {
	assert.True(t, IsNeewerName("NEEWER-RGB660"))
	assert.True(t, IsNeewerName("neewer sl80"))
	assert.True(t, IsNeewerName("NW-20230080&FFFFFF"))
	assert.False(t, IsNeewerName("LUNAR-A23B"))
	assert.False(t, IsNeewerName("ANWB")) // "NW" not at the start, no dash
	assert.False(t, IsNeewerName(""))
}

func TestProtocolString(t *testing.T) {
	assert.Equal(t, "standard", ProtocolStandard.String())
	assert.Equal(t, "infinity", ProtocolInfinity.String())
	assert.Equal(t, "infinity-hybrid", ProtocolInfinityHybrid.String())
	assert.Equal(t, "unknown", Protocol(99).String())
}

func TestDefaultProfileIsUsable(t *testing.T) {
	p := Default()
	require.Greater(t, p.MaxKelvin, p.MinKelvin)
	assert.False(t, p.CCTOnly)
}
