// Package models holds the capability catalog for Neewer BLE lights.
// A Profile describes what a given light can do (RGB, color temperature
// range) and which command framing its firmware speaks. Profiles are
// resolved once, from the BLE-advertised device name, and never change
// for the lifetime of a session.
package models

import (
	"strings"
	"sync"
)

// Protocol selects the command framing a light's firmware understands.
type Protocol uint8

const (
	// ProtocolStandard is the original framing used by older panel lights
	// and light wands (prefix 0x78 0x87).
	ProtocolStandard Protocol = iota
	// ProtocolInfinity is the newer framing used by the MS/GL/CB series
	// (prefix 0x78 0x8A).
	ProtocolInfinity
	// ProtocolInfinityHybrid is used by lights that advertise like the
	// newer series but take CCT frames in the standard framing with a
	// trailing green/magenta byte (RGB512, RGB800).
	ProtocolInfinityHybrid
)

func (p Protocol) String() string {
	switch p {
	case ProtocolStandard:
		return "standard"
	case ProtocolInfinity:
		return "infinity"
	case ProtocolInfinityHybrid:
		return "infinity-hybrid"
	default:
		return "unknown"
	}
}

// Profile is the static capability descriptor for one light model.
type Profile struct {
	// Name is the human-readable model name, e.g. "RGB660 PRO".
	Name string
	// RGB reports whether the light accepts HSI color commands.
	RGB bool
	// MinKelvin and MaxKelvin bound the color temperature range.
	MinKelvin int
	MaxKelvin int
	// CCTOnly marks older bi-color lights that take brightness and color
	// temperature as two separate frames instead of one combined frame.
	CCTOnly bool
	// Protocol is the command framing the model's firmware speaks.
	Protocol Protocol
}

// ClampKelvin bounds a color temperature to the profile's range.
func (p Profile) ClampKelvin(kelvin int) int {
	if kelvin < p.MinKelvin {
		return p.MinKelvin
	}
	if kelvin > p.MaxKelvin {
		return p.MaxKelvin
	}
	return kelvin
}

// KelvinToScale converts a Kelvin value to the light's internal 0-100
// color temperature scale (0 = warmest, 100 = coolest). The input is
// clamped to the profile's range first, so the result is always valid
// on the wire.
func (p Profile) KelvinToScale(kelvin int) uint8 {
	kelvin = p.ClampKelvin(kelvin)
	span := p.MaxKelvin - p.MinKelvin
	if span <= 0 {
		return 0
	}
	return uint8((kelvin - p.MinKelvin) * 100 / span)
}

// ScaleToKelvin converts the internal 0-100 scale back to Kelvin.
func (p Profile) ScaleToKelvin(scale uint8) int {
	if scale > 100 {
		scale = 100
	}
	return p.MinKelvin + int(scale)*(p.MaxKelvin-p.MinKelvin)/100
}

// Default is the fallback profile for lights whose advertised name
// matches no known model: a bi-color, CCT-only light on the standard
// framing. Misdetecting a protocol corrupts commands silently, so the
// conservative choice is the oldest, most widely spoken one.
func Default() Profile {
	return Profile{
		Name:      "Unknown",
		RGB:       false,
		MinKelvin: 3200,
		MaxKelvin: 5600,
		CCTOnly:   false,
		Protocol:  ProtocolStandard,
	}
}

// rule binds a name fragment to a profile. Matching is case-insensitive
// substring containment against the advertised device name.
type rule struct {
	match   string
	profile Profile
}

// builtinRules is the catalog of known models. Order matters: rules are
// evaluated top to bottom and the first match wins, so longer model
// codes must come before their prefixes (RGB660PRO before RGB660).
var builtinRules = []rule{
	// MS series (COB lights), infinity framing. These advertise a numeric
	// model code rather than the marketing name.
	{"20220035", Profile{Name: "MS150B", MinKelvin: 2700, MaxKelvin: 6500, Protocol: ProtocolInfinity}},
	{"MS150B", Profile{Name: "MS150B", MinKelvin: 2700, MaxKelvin: 6500, Protocol: ProtocolInfinity}},
	{"20230080", Profile{Name: "MS60C", RGB: true, MinKelvin: 2700, MaxKelvin: 6500, Protocol: ProtocolInfinity}},
	{"MS60C", Profile{Name: "MS60C", RGB: true, MinKelvin: 2700, MaxKelvin: 6500, Protocol: ProtocolInfinity}},

	// GL series (key lights), infinity framing.
	{"20220001", Profile{Name: "GL1", MinKelvin: 2900, MaxKelvin: 7000, Protocol: ProtocolInfinity}},
	{"GL1", Profile{Name: "GL1", MinKelvin: 2900, MaxKelvin: 7000, Protocol: ProtocolInfinity}},

	// CB series, infinity framing.
	{"20220051", Profile{Name: "CB100C", RGB: true, MinKelvin: 2700, MaxKelvin: 6500, Protocol: ProtocolInfinity}},
	{"CB100C", Profile{Name: "CB100C", RGB: true, MinKelvin: 2700, MaxKelvin: 6500, Protocol: ProtocolInfinity}},
	{"20220055", Profile{Name: "CB300B", MinKelvin: 2700, MaxKelvin: 6500, Protocol: ProtocolInfinity}},
	{"CB300B", Profile{Name: "CB300B", MinKelvin: 2700, MaxKelvin: 6500, Protocol: ProtocolInfinity}},

	// RGB512/RGB800 take hybrid CCT frames with a green/magenta byte.
	{"RGB512", Profile{Name: "RGB512", RGB: true, MinKelvin: 2500, MaxKelvin: 10000, Protocol: ProtocolInfinityHybrid}},
	{"RGB800", Profile{Name: "RGB800", RGB: true, MinKelvin: 2500, MaxKelvin: 10000, Protocol: ProtocolInfinityHybrid}},

	// RGB panel lights, standard framing. PRO variants first.
	{"RGB660PRO", Profile{Name: "RGB660 PRO", RGB: true, MinKelvin: 3200, MaxKelvin: 5600, Protocol: ProtocolStandard}},
	{"RGB660 PRO", Profile{Name: "RGB660 PRO", RGB: true, MinKelvin: 3200, MaxKelvin: 5600, Protocol: ProtocolStandard}},
	{"RGB660", Profile{Name: "RGB660", RGB: true, MinKelvin: 3200, MaxKelvin: 5600, Protocol: ProtocolStandard}},
	{"RGB530PRO", Profile{Name: "RGB530 PRO", RGB: true, MinKelvin: 3200, MaxKelvin: 5600, Protocol: ProtocolStandard}},
	{"RGB530 PRO", Profile{Name: "RGB530 PRO", RGB: true, MinKelvin: 3200, MaxKelvin: 5600, Protocol: ProtocolStandard}},
	{"RGB530", Profile{Name: "RGB530", RGB: true, MinKelvin: 3200, MaxKelvin: 5600, Protocol: ProtocolStandard}},
	{"RGB480", Profile{Name: "RGB480", RGB: true, MinKelvin: 3200, MaxKelvin: 5600, Protocol: ProtocolStandard}},
	{"RGB176", Profile{Name: "RGB176", RGB: true, MinKelvin: 3200, MaxKelvin: 5600, Protocol: ProtocolStandard}},
	{"RGB960", Profile{Name: "RGB960", RGB: true, MinKelvin: 3200, MaxKelvin: 5600, Protocol: ProtocolStandard}},

	// SL/SNL bi-color panels take split brightness/temperature frames.
	{"SL80", Profile{Name: "SL-80", MinKelvin: 3200, MaxKelvin: 8500, CCTOnly: true, Protocol: ProtocolStandard}},
	{"SL-80", Profile{Name: "SL-80", MinKelvin: 3200, MaxKelvin: 8500, CCTOnly: true, Protocol: ProtocolStandard}},
	{"SNL660", Profile{Name: "SNL-660", MinKelvin: 3200, MaxKelvin: 5600, CCTOnly: true, Protocol: ProtocolStandard}},
	{"SNL530", Profile{Name: "SNL-530", MinKelvin: 3200, MaxKelvin: 5600, CCTOnly: true, Protocol: ProtocolStandard}},
	{"SNL480", Profile{Name: "SNL-480", MinKelvin: 3200, MaxKelvin: 5600, CCTOnly: true, Protocol: ProtocolStandard}},

	// Light wands, standard framing. TL60 before the very short RGB1 code.
	{"TL60", Profile{Name: "TL60 RGB", RGB: true, MinKelvin: 2700, MaxKelvin: 6500, Protocol: ProtocolStandard}},
	{"RGB1", Profile{Name: "RGB1", RGB: true, MinKelvin: 3200, MaxKelvin: 5600, Protocol: ProtocolStandard}},
}

var (
	customRules []rule
	rulesLock   sync.RWMutex
)

// RegisterProfile adds a custom rule ahead of the builtin catalog.
// Custom rules are consulted in registration order before any builtin
// rule, so callers can override a builtin entry by reusing its code.
// Intended to be called during startup, before any resolution.
func RegisterProfile(match string, profile Profile) {
	rulesLock.Lock()
	defer rulesLock.Unlock()
	customRules = append(customRules, rule{match: strings.ToUpper(match), profile: profile})
}

// Resolve finds the profile for an advertised device name. Rules are
// evaluated in order and the first match wins; a name matching nothing
// resolves to Default().
func Resolve(name string) Profile {
	upper := strings.ToUpper(name)

	rulesLock.RLock()
	for _, r := range customRules {
		if strings.Contains(upper, r.match) {
			rulesLock.RUnlock()
			return r.profile
		}
	}
	rulesLock.RUnlock()

	for _, r := range builtinRules {
		if strings.Contains(upper, strings.ToUpper(r.match)) {
			return r.profile
		}
	}
	return Default()
}

// IsNeewerName reports whether an advertised BLE name looks like a
// Neewer light. Neewer devices advertise either with the brand name
// embedded or with an "NW-" prefix.
func IsNeewerName(name string) bool {
	if name == "" {
		return false
	}
	upper := strings.ToUpper(name)
	return strings.Contains(upper, "NEEWER") || strings.HasPrefix(upper, "NW-")
}
