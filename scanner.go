package goneewer

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"tinygo.org/x/bluetooth"

	"github.com/mlsorensen/goneewer/pkg/models"
)

// FoundDevice describes a light seen during a BLE scan.
type FoundDevice struct {
	Name    string
	Address bluetooth.Address
	RSSI    int
}

// ScanStream returns a channel that streams FoundDevice as they are
// discovered and stops scanning when the context is canceled. Without
// custom fragments, any device whose advertised name looks like a
// Neewer light or matches a registered implementation is reported.
func ScanStream(ctx context.Context, customFragments ...string) (<-chan FoundDevice, error) {
	if err := TryEnableAdapter(); err != nil {
		return nil, err
	}

	deviceChan := make(chan FoundDevice)

	go func() {
		defer close(deviceChan)

		mu := sync.Mutex{}
		seen := make(map[string]bool)

		handler := func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
			name := result.LocalName()
			if name == "" {
				return // Ignore packets without a name.
			}
			if !matchesAny(name, customFragments) {
				return
			}

			mu.Lock()
			defer mu.Unlock()

			id := result.Address.String()
			if seen[id] {
				return
			}
			seen[id] = true

			select {
			case deviceChan <- FoundDevice{
				Name:    name,
				Address: result.Address,
				RSSI:    int(result.RSSI),
			}:
			case <-ctx.Done():
			}
		}

		if err := BTAdapter.Scan(handler); err != nil {
			log.Printf("Error starting scan: %v", err)
			return
		}

		<-ctx.Done()

		if err := BTAdapter.StopScan(); err != nil {
			log.Printf("Error stopping scan: %v", err)
		}
	}()

	return deviceChan, nil
}

// Scan finds lights advertising a matching name, blocking for the given
// duration. Custom fragments restrict matching to names containing any
// of them.
func Scan(duration time.Duration, customFragments ...string) ([]FoundDevice, error) {
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	log.Println("Enabling Bluetooth adapter...")
	if err := TryEnableAdapter(); err != nil {
		return nil, err
	}

	mu := sync.Mutex{}
	foundDevices := make(map[string]FoundDevice)

	log.Printf("Scanning for Neewer lights for %s...", duration)

	handler := func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
		name := result.LocalName()
		if name == "" {
			return // Ignore packets without a name.
		}

		if matchesAny(name, customFragments) {
			log.Printf("    --> Found a match! Device: %s", name)
			mu.Lock()
			id := result.Address.String()
			foundDevices[id] = FoundDevice{
				Name:    name,
				Address: result.Address,
				RSSI:    int(result.RSSI),
			}
			mu.Unlock()
		}
	}

	var wg sync.WaitGroup
	wg.Add(1)
	scanErrChan := make(chan error, 1)

	go func() {
		defer wg.Done()
		log.Println("Starting blocking scan...")
		if err := BTAdapter.Scan(handler); err != nil {
			scanErrChan <- err
		}
	}()

	<-ctx.Done()

	log.Println("Timeout reached. Stopping scan...")
	if err := BTAdapter.StopScan(); err != nil {
		log.Printf("Warning: failed to stop scan cleanly: %v", err)
	}

	wg.Wait()
	close(scanErrChan)

	if scanErr := <-scanErrChan; scanErr != nil {
		return nil, scanErr
	}

	results := make([]FoundDevice, 0, len(foundDevices))
	for _, device := range foundDevices {
		results = append(results, device)
	}

	log.Printf("Scan processing finished. Found %d unique matching device(s).", len(results))
	return results, nil
}

// ScanForOne scans until the first matching light is found or the
// timeout elapses.
func ScanForOne(timeout time.Duration, customFragments ...string) (*FoundDevice, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stream, err := ScanStream(ctx, customFragments...)
	if err != nil {
		return nil, err
	}

	for device := range stream {
		found := device
		cancel()
		return &found, nil
	}
	return nil, errors.New("no matching device found before timeout")
}

// matchesAny decides whether a scanned name is interesting. Custom
// fragments take precedence; otherwise a device matches when its name
// looks like a Neewer light or contains any registered implementation
// fragment.
func matchesAny(name string, customFragments []string) bool {
	upper := strings.ToUpper(name)

	if len(customFragments) > 0 {
		for _, fragment := range customFragments {
			if strings.Contains(upper, strings.ToUpper(fragment)) {
				return true
			}
		}
		return false
	}

	if models.IsNeewerName(name) {
		return true
	}

	regLock.RLock()
	defer regLock.RUnlock()
	for fragment := range registry {
		if strings.Contains(upper, fragment) {
			return true
		}
	}
	return false
}
