package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"autosplit/capture"
	"autosplit/hotkeys"
	"autosplit/ui"
	"autosplit/update"
)

func main() {
	// Check for command-line arguments
	if len(os.Args) > 1 {
		handleCommandLineArgs()
		return
	}

	// Normal GUI mode
	log.Println("Starting AutoSplit...")
	app := ui.NewMainWindow(capture.NewSystemEnumerator(), hotkeys.SystemBinder())
	app.ShowAndRun()
}

// handleCommandLineArgs processes command-line arguments
func handleCommandLineArgs() {
	args := os.Args[1:]

	switch args[0] {
	case "-version", "--version":
		fmt.Printf("AutoSplit %s\n", update.Version)
	case "-check-update", "--check-update":
		checkForUpdate()
	case "-list-devices", "--list-devices":
		listDevices()
	case "-help", "--help", "-h", "--h":
		showUsage()
	default:
		fmt.Printf("Unknown option: %s\n", args[0])
		showUsage()
	}
}

// checkForUpdate runs a user-initiated update check on the console
func checkForUpdate() {
	checker := update.NewChecker()

	results, err := checker.Check(false)
	if err != nil {
		fmt.Printf("Error checking for updates: %v\n", err)
		return
	}

	for result := range results {
		if result.Err != nil {
			fmt.Printf("Error checking for updates: %v\n", result.Err)
			continue
		}
		if update.IsNewer(result.LatestVersion, update.Version) {
			fmt.Printf("Update available: %s (running %s)\n", result.LatestVersion, update.Version)
			fmt.Printf("Download: %s\n", checker.ReleasesURL())
		} else {
			fmt.Printf("You are on the latest version (%s).\n", update.Version)
		}
	}
}

// listDevices prints the enumerated video capture devices
func listDevices() {
	enumerator := capture.NewSystemEnumerator()
	devices, err := enumerator.ListVideoCaptureDevices(context.Background())
	if err != nil {
		fmt.Printf("Error enumerating devices: %v\n", err)
		return
	}

	if len(devices) == 0 {
		fmt.Println("No video capture devices found.")
		return
	}

	fmt.Println("Video capture devices:")
	fmt.Println("======================")
	for _, device := range devices {
		fmt.Printf("%d. %s\n", device.DeviceID, device.Label())
	}
}

// showUsage displays command-line usage information
func showUsage() {
	fmt.Println("AutoSplit - Command Line Usage")
	fmt.Println("==============================")
	fmt.Println()
	fmt.Println("GUI Mode (default):")
	fmt.Println("  autosplit")
	fmt.Println()
	fmt.Println("Command Line Options:")
	fmt.Println("  -version           Print the running version")
	fmt.Println("  -check-update      Check for a newer release")
	fmt.Println("  -list-devices      List video capture devices")
	fmt.Println("  -help              Show this help message")
}
