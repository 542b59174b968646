package comms

import "github.com/mlsorensen/goneewer/pkg/models"

// Prefix returns the two header bytes for a protocol variant. The
// hybrid variant keeps the standard header for its frames; only the
// CCT command type and payload differ.
func Prefix(p models.Protocol) []byte {
	if p == models.ProtocolInfinity {
		return []byte{HeaderByte, TagInfinity}
	}
	return []byte{HeaderByte, TagStandard}
}

// Encode assembles a complete frame: header, command type, payload and
// the trailing checksum. All inputs are expected to be pre-clamped by
// the caller; Encode cannot fail.
func Encode(p models.Protocol, cmdType byte, payload []byte) []byte {
	frame := append(Prefix(p), cmdType)
	frame = append(frame, payload...)
	return appendChecksum(frame)
}

// appendChecksum closes a frame with the additive checksum byte: the
// sum of every preceding byte, mod 256. The light silently drops frames
// with a bad checksum, so there is no error path to handle.
func appendChecksum(frame []byte) []byte {
	var sum byte
	for _, b := range frame {
		sum += b
	}
	return append(frame, sum)
}

// BuildPowerCommand creates a power on/off frame.
func BuildPowerCommand(p models.Protocol, on bool) []byte {
	cmd := CmdPowerOff
	if on {
		cmd = CmdPowerOn
	}
	return Encode(p, cmd, nil)
}

// BuildCCTCommand creates a combined brightness + color temperature
// frame. Brightness is 0-100, temp is the light's internal 0-100 scale
// (0 = warmest), gm is the 0-100 green/magenta balance used only by the
// hybrid variant.
func BuildCCTCommand(p models.Protocol, brightness, temp, gm uint8) []byte {
	switch p {
	case models.ProtocolInfinity:
		// Infinity CCT frames carry a trailing mode byte.
		return Encode(p, CmdSetCCT, []byte{brightness, temp, 0x02})
	case models.ProtocolInfinityHybrid:
		return Encode(p, CmdSetCCTGM, []byte{brightness, temp, gm})
	default:
		return Encode(p, CmdSetCCT, []byte{brightness, temp})
	}
}

// BuildHSICommand creates a hue/saturation/intensity frame for RGB
// lights. Hue is 0-360 and split across two bytes, low byte first;
// saturation and intensity are 0-100.
func BuildHSICommand(p models.Protocol, hue uint16, saturation, intensity uint8) []byte {
	hueLow := byte(hue & 0xFF)
	hueHigh := byte(hue >> 8)
	return Encode(p, CmdSetHSI, []byte{intensity, hueLow, hueHigh, saturation})
}

// BuildBrightnessCommand creates the standalone brightness frame for
// CCT-only lights (SL/SNL series). Brightness is 0-100.
func BuildBrightnessCommand(brightness uint8) []byte {
	return appendChecksum([]byte{HeaderByte, TagBrightness, CmdSetValue, brightness})
}

// BuildColorTempCommand creates the standalone color temperature frame
// for CCT-only lights. The value is Kelvin divided by 100, e.g. 56 for
// 5600 K.
func BuildColorTempCommand(kelvinDiv100 uint8) []byte {
	return appendChecksum([]byte{HeaderByte, TagColorTemp, CmdSetValue, kelvinDiv100})
}
