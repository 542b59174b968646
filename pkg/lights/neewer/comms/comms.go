// Package comms provides the byte-level command framing for Neewer BLE
// lights. Frames are written to the command characteristic without
// response; the light never acknowledges, so every builder here is a
// pure function whose only job is producing the exact bytes the
// firmware expects. The layouts were reverse-engineered from the vendor
// apps and must not be altered.
package comms

import "tinygo.org/x/bluetooth"

var (
	// ServiceUUID is the custom GATT service all Neewer lights expose.
	ServiceUUID, _ = bluetooth.ParseUUID("69400001-b5a3-f393-e0a9-e50e24dcca99")
	// CommandCharUUID is the write-without-response target for command frames.
	CommandCharUUID, _ = bluetooth.ParseUUID("69400002-b5a3-f393-e0a9-e50e24dcca99")
	// NotifyCharUUID carries status notifications. The control protocol is
	// fire-and-forget; this is exported for callers that want to subscribe
	// to status responses themselves.
	NotifyCharUUID, _ = bluetooth.ParseUUID("69400003-b5a3-f393-e0a9-e50e24dcca99")
)

// Frame header bytes.
const (
	// HeaderByte opens every frame.
	HeaderByte byte = 0x78

	// TagStandard is the second header byte for the standard framing.
	TagStandard byte = 0x87
	// TagInfinity is the second header byte for the infinity framing.
	TagInfinity byte = 0x8A

	// TagBrightness and TagColorTemp are the split-frame headers used by
	// older CCT-only lights (SL/SNL series), which cannot take a combined
	// brightness+temperature frame.
	TagBrightness byte = 0x82
	TagColorTemp  byte = 0x83

	// TagChannelQuery and TagPowerQuery request a status notification.
	TagChannelQuery byte = 0x84
	TagPowerQuery   byte = 0x85
)

// Command type bytes, sent immediately after the two header bytes.
const (
	CmdPowerOn  byte = 0x01
	CmdPowerOff byte = 0x02
	CmdSetCCT   byte = 0x02
	CmdSetCCTGM byte = 0x03 // CCT with trailing green/magenta byte
	CmdSetHSI   byte = 0x04
	CmdSetValue byte = 0x01 // single-value payload on 0x82/0x83 frames
)

// DefaultGM is the neutral green/magenta balance on the 0-100 scale.
const DefaultGM uint8 = 50

// Prebuilt status query frames. The power query response carries 1 for
// on and 2 for standby in its fourth byte.
var (
	PowerStatusQuery   = appendChecksum([]byte{HeaderByte, TagPowerQuery, 0x00})
	ChannelStatusQuery = appendChecksum([]byte{HeaderByte, TagChannelQuery, 0x00})
)
