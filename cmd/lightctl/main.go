// Command lightctl controls a Neewer BLE light from the command line.
//
// Examples:
//
//	lightctl -name RGB660 -power on
//	lightctl -name RGB660 -brightness 80 -temp 4500
//	lightctl -name RGB660 -hue 270 -sat 100 -brightness 60
package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/mlsorensen/goneewer"
	_ "github.com/mlsorensen/goneewer/pkg/lights/all"
	"github.com/mlsorensen/goneewer/pkg/models"
)

func main() {
	var (
		name       = flag.String("name", "", "name fragment of the light to control (default: any Neewer light)")
		scanFor    = flag.Duration("scan", 15*time.Second, "how long to scan for the light")
		power      = flag.String("power", "", "switch the light 'on' or 'off'")
		brightness = flag.Int("brightness", -1, "brightness 0-100")
		temp       = flag.Int("temp", 0, "color temperature in Kelvin")
		hue        = flag.Int("hue", -1, "hue 0-360 (RGB lights only)")
		sat        = flag.Int("sat", 100, "saturation 0-100 (used with -hue)")
		profiles   = flag.String("profiles", "", "optional YAML file with custom model profiles")
	)
	flag.Parse()

	if *profiles != "" {
		if err := models.LoadFile(*profiles); err != nil {
			log.Fatalf("Fatal: %v", err)
		}
	}

	var fragments []string
	if *name != "" {
		fragments = append(fragments, *name)
	}

	log.Printf("Scanning for light (up to %s)...", *scanFor)
	device, err := goneewer.ScanForOne(*scanFor, fragments...)
	if err != nil {
		log.Fatalf("Fatal: %v", err)
	}
	log.Printf("Found %s (%s)", device.Name, device.Address.String())

	light, err := goneewer.NewLightForDevice(device)
	if err != nil {
		log.Fatalf("Fatal: Could not create light instance: %v", err)
	}
	defer func() { _ = light.Disconnect() }()

	profile := light.Profile()
	log.Printf("Model: %s, RGB: %v, CCT range: %d-%dK, protocol: %s",
		profile.Name, profile.RGB, profile.MinKelvin, profile.MaxKelvin, profile.Protocol)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch {
	case *hue >= 0:
		intensity := *brightness
		if intensity < 0 {
			intensity = 100
		}
		err = light.SetHSI(ctx, *hue, *sat, intensity)

	case *brightness >= 0 || *temp > 0:
		state := light.State()
		b := state.Brightness
		if *brightness >= 0 {
			b = *brightness
		}
		k := state.ColorTempKelvin
		if *temp > 0 {
			k = *temp
		}
		err = light.SetCCT(ctx, b, k)

	case *power != "":
		err = light.SetPower(ctx, strings.EqualFold(*power, "on"))

	default:
		flag.Usage()
		return
	}

	if err != nil {
		log.Fatalf("Fatal: command failed: %v", err)
	}

	state := light.State()
	log.Printf("Done. Light state: power=%v brightness=%d%% temp=%dK",
		state.Power, state.Brightness, state.ColorTempKelvin)
}
