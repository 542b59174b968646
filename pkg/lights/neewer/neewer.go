// Package neewer implements goneewer.Light for Neewer BLE lights.
// A session owns one BLE connection, serializes command writes, and
// tracks the last commanded state optimistically; the protocol is
// write-only, so there is no device-confirmed readback.
package neewer

import (
	"context"
	"log"
	"sync"

	"github.com/mlsorensen/goneewer"
	"github.com/mlsorensen/goneewer/pkg/lights/neewer/comms"
	"github.com/mlsorensen/goneewer/pkg/models"
)

func init() {
	goneewer.Register("NEEWER", New)
	goneewer.Register("NW-", New)
}

// This line is the compile-time check. It will fail to compile if
// *NeewerLight ever stops satisfying the goneewer.Light interface.
var _ goneewer.Light = (*NeewerLight)(nil)

// NeewerLight is a session against one physical light.
type NeewerLight struct {
	name    string
	profile models.Profile
	tr      Transport

	// sem serializes commands: the BLE link does not tolerate
	// overlapping writes.
	sem chan struct{}

	mu        sync.Mutex
	connected bool
	state     goneewer.LightState

	defaultBrightness int
	logger            *log.Logger
}

// Option adjusts session construction.
type Option func(*options)

type options struct {
	transport         Transport
	logger            *log.Logger
	defaultBrightness int
	defaultColorTemp  int
}

// WithTransport substitutes the BLE transport. Used for development
// and testing against a fake link.
func WithTransport(tr Transport) Option {
	return func(o *options) { o.transport = tr }
}

// WithLogger enables session logging. The session is silent without it.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithDefaultBrightness sets the brightness (0-100) used by TurnOn when
// no brightness has been commanded yet.
func WithDefaultBrightness(pct int) Option {
	return func(o *options) { o.defaultBrightness = clampPercent(pct) }
}

// WithDefaultColorTemp sets the initial color temperature in Kelvin.
func WithDefaultColorTemp(kelvin int) Option {
	return func(o *options) { o.defaultColorTemp = kelvin }
}

func defaultOptions() options {
	return options{
		defaultBrightness: 100,
		defaultColorTemp:  3200,
	}
}

// New creates a session for a discovered device, resolving its model
// profile from the advertised name. It satisfies goneewer.Factory.
func New(device *goneewer.FoundDevice) goneewer.Light {
	return NewWithOptions(device)
}

// NewWithOptions is New with session options applied.
func NewWithOptions(device *goneewer.FoundDevice, opts ...Option) *NeewerLight {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	profile := models.Resolve(device.Name)

	tr := o.transport
	if tr == nil {
		tr = &bleTransport{address: device.Address}
	}

	return &NeewerLight{
		name:    device.Name,
		profile: profile,
		tr:      tr,
		sem:     make(chan struct{}, 1),
		state: goneewer.LightState{
			Brightness:      o.defaultBrightness,
			ColorTempKelvin: profile.ClampKelvin(o.defaultColorTemp),
			Saturation:      100,
		},
		defaultBrightness: o.defaultBrightness,
		logger:            o.logger,
	}
}

// DeviceName returns the BLE-advertised name.
func (l *NeewerLight) DeviceName() string {
	return l.name
}

// DisplayName returns the resolved model name.
func (l *NeewerLight) DisplayName() string {
	return "Neewer " + l.profile.Name
}

// Profile returns the capability profile resolved at construction.
func (l *NeewerLight) Profile() models.Profile {
	return l.profile
}

// State returns a snapshot of the last commanded state.
func (l *NeewerLight) State() goneewer.LightState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// IsConnected reports whether the BLE link is currently held.
func (l *NeewerLight) IsConnected() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.connected
}

// Connect acquires the BLE link. Calling while connected is a no-op.
func (l *NeewerLight) Connect() error {
	return l.ensureConnected()
}

// Disconnect releases the BLE link. Safe to call in any state.
func (l *NeewerLight) Disconnect() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.connected = false
	return l.tr.Close()
}

// SetPower switches the light on or off.
func (l *NeewerLight) SetPower(ctx context.Context, on bool) error {
	frame := comms.BuildPowerCommand(l.profile.Protocol, on)
	return l.send(ctx, [][]byte{frame}, func(s *goneewer.LightState) {
		s.Power = on
	})
}

// SetCCT sets brightness (0-100) and color temperature in Kelvin.
// Out-of-range values are clamped to the profile's ranges before
// encoding; they never reach the wire. CCT-only models take brightness
// and temperature as two separate frames.
func (l *NeewerLight) SetCCT(ctx context.Context, brightness, kelvin int) error {
	brightness = clampPercent(brightness)
	kelvin = l.profile.ClampKelvin(kelvin)

	var frames [][]byte
	if l.profile.CCTOnly {
		frames = [][]byte{
			comms.BuildBrightnessCommand(uint8(brightness)),
			comms.BuildColorTempCommand(uint8(kelvin / 100)),
		}
	} else {
		frames = [][]byte{
			comms.BuildCCTCommand(l.profile.Protocol, uint8(brightness), l.profile.KelvinToScale(kelvin), comms.DefaultGM),
		}
	}

	return l.send(ctx, frames, func(s *goneewer.LightState) {
		s.Power = brightness > 0
		s.Brightness = brightness
		s.ColorTempKelvin = kelvin
	})
}

// SetHSI sets hue (0-360), saturation and intensity (0-100) on
// RGB-capable lights. Non-RGB profiles get an
// *UnsupportedCapabilityError and nothing is written.
func (l *NeewerLight) SetHSI(ctx context.Context, hue, saturation, intensity int) error {
	if !l.profile.RGB {
		return &goneewer.UnsupportedCapabilityError{Capability: "RGB color", Model: l.profile.Name}
	}

	hue = clampHue(hue)
	saturation = clampPercent(saturation)
	intensity = clampPercent(intensity)

	frame := comms.BuildHSICommand(l.profile.Protocol, uint16(hue), uint8(saturation), uint8(intensity))
	return l.send(ctx, [][]byte{frame}, func(s *goneewer.LightState) {
		s.Power = intensity > 0
		s.Brightness = intensity
		s.Hue = hue
		s.Saturation = saturation
	})
}

// TurnOn restores the last commanded levels, falling back to the
// session default brightness if the light was last commanded dark.
func (l *NeewerLight) TurnOn(ctx context.Context) error {
	l.mu.Lock()
	brightness := l.state.Brightness
	kelvin := l.state.ColorTempKelvin
	l.mu.Unlock()

	if brightness == 0 {
		brightness = l.defaultBrightness
	}
	return l.SetCCT(ctx, brightness, kelvin)
}

// TurnOff dims the light to zero brightness. Most Neewer lights have no
// discrete off command; zero brightness is how the vendor apps switch
// them off.
func (l *NeewerLight) TurnOff(ctx context.Context) error {
	l.mu.Lock()
	kelvin := l.state.ColorTempKelvin
	l.mu.Unlock()
	return l.SetCCT(ctx, 0, kelvin)
}

// QueryStatus writes the power and channel status query frames. The
// responses arrive on the notify characteristic, which this library
// does not consume; callers that subscribe themselves can use this to
// prompt the light to report.
func (l *NeewerLight) QueryStatus(ctx context.Context) error {
	return l.send(ctx, [][]byte{comms.PowerStatusQuery, comms.ChannelStatusQuery}, nil)
}

// send serializes a command: acquire the write slot, make sure the link
// is up (connecting on demand), write every frame, then apply the
// optimistic state update. A transport failure drops the link and
// surfaces as *ConnectionError without touching state.
func (l *NeewerLight) send(ctx context.Context, frames [][]byte, apply func(*goneewer.LightState)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case l.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-l.sem }()

	if err := l.ensureConnected(); err != nil {
		return err
	}

	for _, frame := range frames {
		l.logf("writing frame: % X", frame)
		if err := l.tr.Write(frame); err != nil {
			l.logf("write failed, dropping connection: %v", err)
			l.dropConnection()
			return &goneewer.ConnectionError{Device: l.name, Err: err}
		}
	}

	if apply != nil {
		l.mu.Lock()
		apply(&l.state)
		l.mu.Unlock()
	}
	return nil
}

// ensureConnected brings the link up if it is down.
func (l *NeewerLight) ensureConnected() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.connected {
		return nil
	}

	l.logf("connecting to %s", l.name)
	if err := l.tr.Connect(); err != nil {
		return &goneewer.ConnectionError{Device: l.name, Err: err}
	}
	l.connected = true
	return nil
}

func (l *NeewerLight) dropConnection() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.connected = false
	if err := l.tr.Close(); err != nil {
		l.logf("error releasing transport: %v", err)
	}
}

func (l *NeewerLight) logf(format string, v ...interface{}) {
	if l.logger != nil {
		l.logger.Printf("[neewer] "+format, v...)
	}
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clampHue(v int) int {
	if v < 0 {
		return 0
	}
	if v > 360 {
		return 360
	}
	return v
}
