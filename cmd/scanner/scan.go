package main

import (
	"fmt"
	"log"
	"time"

	"github.com/mlsorensen/goneewer"
	_ "github.com/mlsorensen/goneewer/pkg/lights/all"
)

func main() {
	log.Println("--- GoNeewer Scanner Test ---")

	scanDuration := 15 * time.Second
	log.Printf("Starting BLE scan for %s...", scanDuration)
	log.Println("Turn on your Neewer light now.")

	// Use the simple Scan helper function. It will block for the specified
	// duration and report any device that advertises like a Neewer light
	// ("NEEWER" in the name or an "NW-" prefix).
	devices, err := goneewer.Scan(scanDuration)
	if err != nil {
		log.Fatalf("Fatal: Scan failed: %v", err)
	}

	// --- Print the results ---
	if len(devices) == 0 {
		log.Println("\nScan complete. No supported devices found.")
		log.Println("Tip: Make sure your light is on and within range.")
	} else {
		fmt.Println("\n--- Found Supported Devices ---")
		for i, device := range devices {
			fmt.Printf("%d: Name: %s\n", i+1, device.Name)
			fmt.Printf("   Addr: %s\n", device.Address.String())
			fmt.Printf("   RSSI: %d\n\n", device.RSSI)
		}
		fmt.Println("-----------------------------")
	}
}
