package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/PhoneMk/treasure-hunt/sim"
)

var (
	listen = flag.String("listen", ":7333", "TCP address the simulated link listens on")
	mute   = flag.Bool("mute", false, "Run without buzzer audio")
)

func main() {
	flag.Parse()

	pad, err := sim.New(sim.Options{
		ListenAddr: *listen,
		Mute:       *mute,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to start simulator: %v\n", err)
		os.Exit(1)
	}

	if err := pad.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
