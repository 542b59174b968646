package goneewer

// Conversions between host-platform scales and the device's native
// ranges. Home-automation platforms usually express brightness as
// 0-255 and sometimes color temperature in mireds; Neewer lights take
// 0-100 and Kelvin.

// BrightnessToPercent converts a 0-255 host brightness to 0-100.
func BrightnessToPercent(v uint8) int {
	return int(v) * 100 / 255
}

// BrightnessFromPercent converts a 0-100 brightness to the host's
// 0-255 scale. Inputs outside 0-100 are clamped.
func BrightnessFromPercent(pct int) uint8 {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return uint8(pct * 255 / 100)
}

// MiredToKelvin converts a mired color temperature to Kelvin.
// A non-positive input returns 0.
func MiredToKelvin(mired int) int {
	if mired <= 0 {
		return 0
	}
	return 1000000 / mired
}

// KelvinToMired converts a Kelvin color temperature to mireds.
// A non-positive input returns 0.
func KelvinToMired(kelvin int) int {
	if kelvin <= 0 {
		return 0
	}
	return 1000000 / kelvin
}
