package neewer

import (
	"errors"
	"fmt"

	"tinygo.org/x/bluetooth"

	"github.com/mlsorensen/goneewer"
	"github.com/mlsorensen/goneewer/pkg/lights/neewer/comms"
)

// Transport is the minimal surface the session needs from the BLE
// stack: acquire the link, write a frame, release the link. Frames are
// always fully built before Write is called, so a transport never sees
// a partial command.
type Transport interface {
	Connect() error
	Write(frame []byte) error
	Close() error
}

// bleTransport drives a real light through tinygo bluetooth. It owns
// the device handle and the command characteristic once connected.
type bleTransport struct {
	address bluetooth.Address

	device    bluetooth.Device
	writeChar bluetooth.DeviceCharacteristic
	held      bool
}

var _ Transport = (*bleTransport)(nil)

func (t *bleTransport) Connect() error {
	if err := goneewer.TryEnableAdapter(); err != nil {
		return err
	}

	device, err := goneewer.BTAdapter.Connect(t.address, bluetooth.ConnectionParams{})
	if err != nil {
		return err
	}
	t.device = device
	t.held = true

	if err := t.setupCharacteristics(); err != nil {
		_ = t.Close()
		return err
	}
	return nil
}

func (t *bleTransport) setupCharacteristics() error {
	services, err := t.device.DiscoverServices([]bluetooth.UUID{comms.ServiceUUID})
	if err != nil {
		return fmt.Errorf("could not discover services: %w", err)
	}
	if len(services) == 0 {
		return errors.New("could not find the Neewer light service")
	}

	chars, err := services[0].DiscoverCharacteristics([]bluetooth.UUID{comms.CommandCharUUID})
	if err != nil || len(chars) == 0 {
		return fmt.Errorf("could not discover command characteristic: %w", err)
	}
	t.writeChar = chars[0]
	return nil
}

func (t *bleTransport) Write(frame []byte) error {
	if !t.held {
		return errors.New("transport is not connected")
	}
	_, err := t.writeChar.WriteWithoutResponse(frame)
	return err
}

func (t *bleTransport) Close() error {
	if !t.held {
		return nil
	}
	t.held = false
	return t.device.Disconnect()
}
