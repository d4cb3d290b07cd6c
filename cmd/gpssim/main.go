// GPS simulator: writes fabricated NMEA fixes around a center coordinate to
// a serial device. Use it with a socat virtual pair for local testing when
// you don't have a real receiver.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"AquaRover/internal/device"
	"AquaRover/internal/model"
	"AquaRover/internal/util"
)

func main() {
	dev := flag.String("dev", "/tmp/ttySIM0", "serial device to write fixes into")
	baud := flag.Int("baud", 9600, "baud rate")
	lat := flag.Float64("lat", 41.735, "center latitude")
	lon := flag.Float64("lon", -71.319, "center longitude")
	interval := flag.Int("interval", 2000, "ms between sentences")
	virtual := flag.Bool("virtual", false, "create a socat pty pair <dev> <dev>.rover first")
	flag.Parse()

	var socat *util.SocatManager
	if *virtual {
		socat = util.NewSocatManager()
		if err := socat.CreatePair(*dev, *dev+".rover"); err != nil {
			log.Fatalf("virtual serial: %v", err)
		}
		defer socat.Cleanup()
		// give socat a moment to create the links
		time.Sleep(500 * time.Millisecond)
	}

	gps := device.NewGPSDevice(*dev, *baud)
	stop := make(chan struct{})

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		close(stop)
	}()

	center := model.Position{Lat: *lat, Lon: *lon}
	if err := gps.Simulate(stop, center, time.Duration(*interval)*time.Millisecond); err != nil {
		log.Fatalf("simulate: %v", err)
	}
}
