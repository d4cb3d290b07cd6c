// Rover control daemon: brings up the thruster board, GPS and IMU (best
// effort, degrading to debug mode when hardware is missing), runs the
// control loop, feeds it manual commands from the RC serial link and serves
// live status over HTTP/websocket.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"AquaRover/internal/app"
	"AquaRover/internal/core"
	"AquaRover/internal/device"
	"AquaRover/internal/parser"
)

func main() {
	cfgPath := flag.String("config", "configs/rover.yml", "path to rover config")
	flag.Parse()

	sys, err := core.NewSystem(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg := sys.Config()

	// status surface (read-only)
	var status *app.Server
	if cfg.StatusAddr != "" {
		status = app.NewServer(cfg.StatusAddr)
		sys.Rover.OnStatus(status.Publish)
		go func() {
			if err := status.Start(); err != nil {
				log.Printf("status server: %v", err)
			}
		}()
	}

	sys.Start()
	log.Printf("rover %s control loop started", cfg.Rover.ID)

	// manual command link (RC receiver over serial)
	if cfg.Control.Device != "" {
		link, err := device.NewSerialDevice(cfg.Control.Device, cfg.Control.Baud)
		if err != nil {
			log.Printf("control link open: %v -- manual commands unavailable", err)
		} else {
			defer func() {
				if cerr := link.Close(); cerr != nil {
					log.Printf("warning: close control link err: %v", cerr)
				}
			}()
			go readControlLink(link, sys.Rover)
		}
	}

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("rover stopping")

	sys.Stop()
	if status != nil {
		status.Stop()
	}
}

// readControlLink feeds RC link lines into the rover's entry points until
// the port dies. Malformed lines are logged and skipped; the staleness
// failsafe covers a silent link.
func readControlLink(link *device.SerialDevice, rover *core.Rover) {
	for {
		line, err := link.ReadLine(0)
		if err != nil {
			time.Sleep(100 * time.Millisecond)
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		switch fields[0] {
		case "CMD":
			cmd, err := parser.ParseCommandCSV(line)
			if err != nil {
				log.Printf("control link: bad command %q: %v", line, err)
				continue
			}
			rover.SubmitManualCommand(cmd.Surge, cmd.Lateral, cmd.Yaw)
		case "WPT":
			if lat, lon, ok := parseLatLon(fields); ok {
				rover.EnqueueWaypoint(lat, lon)
			} else {
				log.Printf("control link: bad waypoint %q", line)
			}
		case "AUTO":
			if lat, lon, ok := parseLatLon(fields); ok {
				rover.SetAutoTarget(lat, lon)
			} else {
				log.Printf("control link: bad auto target %q", line)
			}
		case "NEXT":
			rover.AdvanceToNextWaypoint()
		case "HALT":
			rover.DisableAuto()
		case "HOLD":
			rover.ForceDisableAuto(len(fields) > 1 && fields[1] == "1")
		default:
			log.Printf("control link: unknown line %q", line)
		}
	}
}

func parseLatLon(fields []string) (lat, lon float64, ok bool) {
	if len(fields) != 3 {
		return 0, 0, false
	}
	lat, err1 := strconv.ParseFloat(fields[1], 64)
	lon, err2 := strconv.ParseFloat(fields[2], 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return lat, lon, true
}
