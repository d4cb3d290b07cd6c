// CSV manual command wire format (RC link -> rover):
//
//	CMD,SURGE,LATERAL,YAW
//
// Gains are normalized to [-1,1]; out-of-range values are accepted here and
// clamped downstream by the mixer.
package parser

import (
	"AquaRover/internal/model"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseCommandCSV parses a CSV manual command line into model.Command.
// The stamp is left zero; the control loop stamps commands on submission.
func ParseCommandCSV(line string) (model.Command, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != 4 {
		return model.Command{}, fmt.Errorf("expected 4 fields, got %d", len(fields))
	}
	if fields[0] != "CMD" {
		return model.Command{}, fmt.Errorf("expected CMD line, got %q", fields[0])
	}

	surge, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return model.Command{}, errors.New("invalid surge")
	}
	lateral, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return model.Command{}, errors.New("invalid lateral")
	}
	yaw, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return model.Command{}, errors.New("invalid yaw")
	}

	return model.Command{Surge: surge, Lateral: lateral, Yaw: yaw}, nil
}

// CommandToCSV converts a Command into its CSV wire line.
func CommandToCSV(c model.Command) string {
	return fmt.Sprintf("CMD,%.3f,%.3f,%.3f", c.Surge, c.Lateral, c.Yaw)
}
