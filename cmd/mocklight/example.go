package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mlsorensen/goneewer"

	// This tells the Go compiler to include the package, which runs its init()
	// function. The init() function, in turn, calls goneewer.Register(). You can
	// specify specific lights individually or just "all"
	_ "github.com/mlsorensen/goneewer/pkg/lights/all"
)

func main() {
	log.Println("GoNeewer CLI Application Starting...")

	// To use the mock, we need to request a device name that matches the
	// fragment it was registered with ("MOCK"). In a real program, we would
	// scan for lights and then use a found device to create a new Light.
	device := &goneewer.FoundDevice{Name: "MOCK-Development-Light"}
	log.Printf("Attempting to create light instance for device: %v", device)

	// Use the factory to find and create the correct light implementation.
	myLight, err := goneewer.NewLightForDevice(device)
	if err != nil {
		log.Fatalf("Fatal: Could not create light instance: %v", err)
	}
	log.Println("Successfully created mock light instance.")

	// --- Set up graceful shutdown ---
	// This goroutine listens for OS signals (like Ctrl+C).
	go func() {
		sigchan := make(chan os.Signal, 1)
		signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)
		<-sigchan // Block until a signal is received
		log.Println("Shutdown signal received. Disconnecting...")
		_ = myLight.Disconnect()
		os.Exit(0)
	}()

	if err := myLight.Connect(); err != nil {
		log.Fatalf("Fatal: Could not connect to light: %v", err)
	}
	log.Println("Connection successful. Cycling through some states...")

	ctx := context.Background()

	for {
		log.Println("--> Turning on at 80%, 5600K...")
		if err := myLight.SetCCT(ctx, 80, 5600); err != nil {
			log.Printf("Error setting CCT: %v", err)
		}
		time.Sleep(3 * time.Second)

		log.Println("--> Switching to a deep blue...")
		if err := myLight.SetHSI(ctx, 240, 100, 60); err != nil {
			log.Printf("Error setting HSI: %v", err)
		}
		time.Sleep(3 * time.Second)

		log.Println("--> Turning off...")
		if err := myLight.TurnOff(ctx); err != nil {
			log.Printf("Error turning off: %v", err)
		}
		log.Printf("Light state: %+v", myLight.State())
		time.Sleep(3 * time.Second)
	}
}
