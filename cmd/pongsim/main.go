package main

import (
	"fmt"
	"os"

	"github.com/diegok/pongsim/internal/app"
	"github.com/diegok/pongsim/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pongsim [options]                     Play in the terminal")
	fmt.Fprintln(os.Stderr, "  pongsim --frontend window [options]   Play in a desktop window")
	fmt.Fprintln(os.Stderr, "  pongsim --frontend headless [options] Simulate without input or display")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --width <w>, --height <h>  Field size (default: 1280x720)")
	fmt.Fprintln(os.Stderr, "  --paddle-speed <v>         Paddle speed in units/s (default: 256)")
	fmt.Fprintln(os.Stderr, "  --serve-speed <v>          Ball speed per axis in units/s (default: 256)")
	fmt.Fprintln(os.Stderr, "  --frames <n>               Headless frames (default: 600)")
	fmt.Fprintln(os.Stderr, "  --dt <seconds>             Headless seconds per frame (default: 0.016)")
	fmt.Fprintln(os.Stderr, "  --hold <duration>          Terminal key hold window (default: 150ms)")
	fmt.Fprintln(os.Stderr, "  --trace <file>             Write a msgpack frame trace")
	fmt.Fprintln(os.Stderr, "  --log <file>               Write logs to a file")
	fmt.Fprintln(os.Stderr, "  --mute                     Disable sound")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  Left paddle: W/S   Right paddle: Up/Down   r: reset   q/Esc: quit")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  pongsim")
	fmt.Fprintln(os.Stderr, "  pongsim --frontend window --paddle-speed 128")
	fmt.Fprintln(os.Stderr, "  pongsim --frontend headless --frames 1200 --trace run.trace")
}
